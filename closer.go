package cyclemenu

// closeTarget is the part of the widget the outside-tap closer drives.
type closeTarget interface {
	State() State
	Close(animated bool)
}

// outsideTapCloser closes an open menu when a release lands outside the
// expanded circle.
type outsideTapCloser struct {
	target closeTarget
}

// handle reports whether ev was consumed. (cx, cy) is the trigger center.
func (c outsideTapCloser) handle(ev PointerEvent, cx, cy float64, outer int) bool {
	if ev.Action != PointerUp || c.target.State() != Open {
		return false
	}
	d := ev.DistanceTo(cx, cy)
	if d <= float64(outer) {
		return false
	}
	c.target.Close(true)
	return true
}
