package cyclemenu

import (
	"fmt"
	"image"
	"math"
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerDown PointerAction = iota + 1
	PointerMove
	PointerUp
	// PointerCancel aborts the current press. The gesture treats it as a
	// release that left the trigger.
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	}
	return fmt.Sprintf("PointerAction(%d)", int(a))
}

// PointerEvent is a single pointer sample in widget coordinates.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
}

// Point returns the event position truncated to pixel coordinates.
func (e PointerEvent) Point() image.Point {
	return image.Pt(int(e.X), int(e.Y))
}

// In reports whether the event lies inside r.
func (e PointerEvent) In(r image.Rectangle) bool {
	return e.Point().In(r)
}

// DistanceTo returns the Euclidean distance from the event to (x, y).
func (e PointerEvent) DistanceTo(x, y float64) float64 {
	return math.Hypot(e.X-x, e.Y-y)
}
