package cyclemenu

import "math"

// Unset marks an optional radius that was not configured.
const Unset = -1

// collapsedShadowCoefficient scales the shadow while the circle is collapsed.
const collapsedShadowCoefficient = 0.25

// GeometryInput is everything the radius computation depends on.
type GeometryInput struct {
	Width, Height int
	Scaling       ScalingPolicy
	// ItemCount is the real number of items.
	ItemCount       int
	ItemSize        int
	ShadowSize      float64
	CircleMinRadius int
	// AutoMinRadius, AutoMaxRadius and FixedRadius may be Unset.
	AutoMinRadius int
	AutoMaxRadius int
	FixedRadius   int
}

// Geometry is the result of one layout pass.
type Geometry struct {
	ItemSize int
	// Available is the shorter container side minus the shadow allowance.
	Available int
	// AutoMinRadius and AutoMaxRadius are the resolved clamp bounds.
	AutoMinRadius int
	AutoMaxRadius int
	// FixedRadius is the clamped fixed radius under Fixed scaling, and the
	// configured value otherwise.
	FixedRadius int
	// RingRadius is the side of the square the item arc is laid out in.
	RingRadius int
	// OuterRadius is the radius of the fully expanded circle. It bounds
	// outside taps and is the open animation target.
	OuterRadius         int
	ShadowSize          float64
	CollapsedShadowSize float64
	// VisibleItems is how many items fit on the quarter arc.
	VisibleItems int
}

// Resolve computes the menu geometry. It never fails: degenerate inputs
// collapse radii toward zero instead.
func Resolve(in GeometryInput) Geometry {
	available := min(in.Width, in.Height) - int(in.ShadowSize)

	autoMax := in.AutoMaxRadius
	if (in.Scaling == Fixed || autoMax < 0 || autoMax > available) && available > 0 {
		autoMax = available
	}
	if autoMax < 0 {
		autoMax = 0
	}

	autoMin := max(in.AutoMinRadius, in.CircleMinRadius+in.ItemSize)
	if autoMin > autoMax {
		autoMin = autoMax
	}

	fixed := in.FixedRadius
	var ring int
	if in.Scaling == Fixed {
		if available > 0 {
			fixed = min(max(fixed, autoMin), autoMax)
			ring = fixed
		} else {
			ring = max(available, 0)
		}
	} else {
		n := max(in.ItemCount, 0)
		ring = int(float64(in.ItemSize)*(float64(n)*4/(2*math.Pi))) + in.ItemSize*5/8
		ring = min(max(ring, autoMin), autoMax)
	}

	g := Geometry{
		ItemSize:            in.ItemSize,
		Available:           available,
		AutoMinRadius:       autoMin,
		AutoMaxRadius:       autoMax,
		FixedRadius:         fixed,
		RingRadius:          ring,
		OuterRadius:         max(ring-int(in.ShadowSize), 0),
		ShadowSize:          in.ShadowSize,
		CollapsedShadowSize: in.ShadowSize * collapsedShadowCoefficient,
	}
	if in.ItemSize > 0 {
		g.VisibleItems = int(float64(ring) * math.Pi / 2 / float64(in.ItemSize))
	}
	return g
}
