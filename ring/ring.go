package ring

import (
	"math"
	"time"

	"github.com/gogpu/cyclemenu"
	"github.com/gogpu/cyclemenu/anim"
)

// Ring lays items out on the widget's quarter arc.
//
// Positions are raw adapter positions: position is the item in slot 0, the
// slot nearest the start of the arc. offset shifts every slot toward the
// end of the arc by up to one step, in degrees.
type Ring struct {
	opts   options
	layout cyclemenu.ArcLayout
	ready  bool

	radius float64 // item center distance from the anchor
	step   float64 // degrees between neighbouring items
	slots  int

	position int
	offset   float64
	scroll   bool

	reveal float64
	roll   *anim.Animation

	press press
}

type press struct {
	active   bool
	dragging bool
	start    time.Time
	x, y     float64
	angle    float64
}

var (
	_ cyclemenu.Arc            = (*Ring)(nil)
	_ cyclemenu.PointerHandler = (*Ring)(nil)
	_ cyclemenu.Configurer     = (*Ring)(nil)
	_ cyclemenu.Drawer         = (*Ring)(nil)
	_ cyclemenu.Revealer       = (*Ring)(nil)
)

// New returns an unconfigured ring with its items hidden.
func New(opts ...Option) *Ring {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Ring{opts: o, scroll: true}
	if r.opts.drawer == nil {
		r.opts.drawer = r.drawDisc
	}
	return r
}

// Configure implements cyclemenu.Configurer.
func (r *Ring) Configure(l cyclemenu.ArcLayout) {
	r.layout = l
	r.ready = true

	size := float64(l.ItemSize)
	r.radius = max(float64(l.OuterRadius)-size/2-size/8, float64(l.CircleMinRadius)+size/2)
	r.slots = max(l.VisibleItems, 0)
	r.step = 90 / float64(max(r.slots, 1))
	r.normalize()

	cyclemenu.Logger().Debug("ring: configured",
		"radius", r.radius, "step", r.step, "slots", r.slots, "items", l.Items)
}

// RollInItemsWithAnimation implements cyclemenu.Arc.
func (r *Ring) RollInItemsWithAnimation(done func()) {
	r.animateReveal(1, done)
}

// RollOutItemsWithAnimation implements cyclemenu.Arc.
func (r *Ring) RollOutItemsWithAnimation(done func()) {
	r.animateReveal(0, done)
}

func (r *Ring) animateReveal(to float64, done func()) {
	r.roll.Cancel()
	tl := r.layout.Timeline
	if tl == nil || r.opts.rollDuration <= 0 {
		r.reveal = to
		r.invalidate()
		done()
		return
	}
	r.roll = anim.Tween(anim.Property[float64]{
		Get: func() float64 { return r.reveal },
		Set: func(v float64) {
			r.reveal = v
			r.invalidate()
		},
	}, r.reveal, to, r.opts.rollDuration).WithInterpolator(anim.Linear).OnEnd(done)
	tl.Start(r.roll)
}

// SetItemsRevealed implements cyclemenu.Revealer.
func (r *Ring) SetItemsRevealed(revealed bool) {
	r.roll.Cancel()
	r.roll = nil
	if revealed {
		r.reveal = 1
	} else {
		r.reveal = 0
	}
	r.invalidate()
}

// ScrollToPosition implements cyclemenu.Arc.
func (r *Ring) ScrollToPosition(raw int) {
	r.position = raw
	r.normalize()
	r.invalidate()
}

// SetAdditionalAngleOffset implements cyclemenu.Arc.
func (r *Ring) SetAdditionalAngleOffset(deg float64) {
	r.offset = deg
	r.normalize()
	r.invalidate()
}

// CurrentPosition implements cyclemenu.Arc.
func (r *Ring) CurrentPosition() int { return r.position }

// CurrentItemsAngleOffset implements cyclemenu.Arc.
func (r *Ring) CurrentItemsAngleOffset() float64 { return r.offset }

// IsCountOfItemsAvailableToScroll implements cyclemenu.Arc.
func (r *Ring) IsCountOfItemsAvailableToScroll() bool {
	n, bounded := r.layout.Items.Len()
	return !bounded || n > r.slots
}

// SetScrollEnabled implements cyclemenu.Arc.
func (r *Ring) SetScrollEnabled(enabled bool) {
	r.scroll = enabled
	if !enabled {
		r.press = press{}
	}
}

// Reveal returns the roll progress in [0, 1].
func (r *Ring) Reveal() float64 { return r.reveal }

// Slots returns how many items fit on the arc.
func (r *Ring) Slots() int { return r.slots }

// scrollBy rotates the items by delta degrees.
func (r *Ring) scrollBy(delta float64) {
	r.offset += delta
	r.normalize()
	r.invalidate()
}

// normalize folds offset into [0, step) by moving position, then clamps
// bounded item lists.
func (r *Ring) normalize() {
	if !r.ready || r.step <= 0 {
		return
	}
	if shift := math.Floor(r.offset / r.step); shift != 0 {
		r.position -= int(shift)
		r.offset -= shift * r.step
	}
	n, bounded := r.layout.Items.Len()
	if !bounded {
		return
	}
	last := max(n-r.slots, 0)
	switch {
	case r.position <= 0:
		r.position, r.offset = 0, 0
	case r.position >= last:
		r.position, r.offset = last, 0
	}
}

// slotAngle is the arc angle of slot j's center.
func (r *Ring) slotAngle(j int) float64 {
	return r.step*(float64(j)+0.5) + r.offset
}

// center converts an arc angle to a point on the item circle.
func (r *Ring) center(arcAngle float64) (float64, float64) {
	a := (r.layout.Corner.BaseAngle() + arcAngle) * math.Pi / 180
	return float64(r.layout.Anchor.X) + r.radius*math.Cos(a),
		float64(r.layout.Anchor.Y) + r.radius*math.Sin(a)
}

// arcAngle maps a point to its angle along the arc, in (-180, 180].
func (r *Ring) arcAngle(x, y float64) float64 {
	a := math.Atan2(y-float64(r.layout.Anchor.Y), x-float64(r.layout.Anchor.X)) * 180 / math.Pi
	return wrapDegrees(a - r.layout.Corner.BaseAngle())
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	switch {
	case a > 180:
		a -= 360
	case a <= -180:
		a += 360
	}
	return a
}

// progress is the roll progress of slot j; slots reveal one after another.
func (r *Ring) progress(j int) float64 {
	n := float64(r.slots + 2)
	return min(max(r.reveal*n-float64(j+1), 0), 1)
}

// visible calls fn for every slot whose item is at least partly on the arc.
func (r *Ring) visible(fn func(j, raw int, angle float64)) {
	if !r.ready {
		return
	}
	for j := -1; j <= r.slots; j++ {
		a := r.slotAngle(j)
		if a <= -r.step/2 || a >= 90+r.step/2 {
			continue
		}
		raw := r.position + j
		if !r.layout.Items.Contains(raw) {
			continue
		}
		fn(j, raw, a)
	}
}

func (r *Ring) invalidate() {
	if r.layout.Invalidate != nil {
		r.layout.Invalidate()
	}
}

func (r *Ring) now() time.Time {
	if r.layout.Timeline == nil {
		return time.Now()
	}
	return r.layout.Timeline.Clock().Now()
}
