package cyclemenu

import (
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/cyclemenu/anim"
)

// Arc is the subsystem that lays out, scrolls and animates the menu items
// along the quarter ring. The widget drives it and waits for the roll
// callbacks before advancing its own state.
type Arc interface {
	// RollInItemsWithAnimation reveals the items and calls done afterwards.
	RollInItemsWithAnimation(done func())
	// RollOutItemsWithAnimation hides the items and calls done afterwards.
	RollOutItemsWithAnimation(done func())
	ScrollToPosition(raw int)
	// SetAdditionalAngleOffset sets the angular phase of the first item in
	// degrees.
	SetAdditionalAngleOffset(deg float64)
	CurrentPosition() int
	CurrentItemsAngleOffset() float64
	// IsCountOfItemsAvailableToScroll reports whether there are more items
	// than fit on the arc.
	IsCountOfItemsAvailableToScroll() bool
	SetScrollEnabled(enabled bool)
}

// PointerHandler is implemented by arcs that take pointer input.
// canScroll is the arc's own IsCountOfItemsAvailableToScroll at dispatch.
type PointerHandler interface {
	HandlePointer(ev PointerEvent, canScroll bool) bool
}

// Configurer is implemented by arcs that need the widget geometry.
// Configure is called after every layout pass.
type Configurer interface {
	Configure(ArcLayout)
}

// Drawer is implemented by arcs that draw themselves with gg.
type Drawer interface {
	Draw(dc *gg.Context) error
}

// Revealer is implemented by arcs that keep item visibility across
// transitions. Immediate open and close call it instead of the roll
// animations.
type Revealer interface {
	SetItemsRevealed(revealed bool)
}

// ArcLayout is the geometry handed to a Configurer.
type ArcLayout struct {
	Corner Corner
	// Bounds is the RingRadius×RingRadius square at the corner.
	Bounds image.Rectangle
	// Anchor is the corner point the ring is centered on.
	Anchor      image.Point
	RingRadius  int
	OuterRadius int
	ItemSize    int
	// CircleMinRadius is the radius of the collapsed circle; items are not
	// placed inside it.
	CircleMinRadius int
	VisibleItems    int
	Items           ItemCount
	RealItems       int
	// Adapter is nil until one is set on the widget.
	Adapter Adapter
	// Timeline drives the arc's own animations; the widget ticks it.
	Timeline *anim.Timeline
	// Invalidate requests a redraw.
	Invalidate func()
}
