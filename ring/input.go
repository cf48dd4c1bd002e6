package ring

import (
	"math"

	"github.com/gogpu/cyclemenu"
)

// HandlePointer implements cyclemenu.PointerHandler. A press inside the
// ring band either drags the items around the arc or, when released
// without moving past the touch slop, clicks the item under it.
func (r *Ring) HandlePointer(ev cyclemenu.PointerEvent, canScroll bool) bool {
	switch ev.Action {
	case cyclemenu.PointerDown:
		if !r.scroll || !r.inBand(ev.X, ev.Y) {
			return false
		}
		r.press = press{
			active: true,
			start:  r.now(),
			x:      ev.X,
			y:      ev.Y,
			angle:  r.arcAngle(ev.X, ev.Y),
		}
		return true

	case cyclemenu.PointerMove:
		if !r.press.active {
			return false
		}
		if !r.press.dragging {
			if !canScroll || math.Hypot(ev.X-r.press.x, ev.Y-r.press.y) < r.opts.touchSlop {
				return true
			}
			r.press.dragging = true
		}
		a := r.arcAngle(ev.X, ev.Y)
		r.scrollBy(wrapDegrees(a - r.press.angle))
		r.press.angle = a
		return true

	case cyclemenu.PointerUp:
		if !r.press.active {
			return false
		}
		p := r.press
		r.press = press{}
		if !p.dragging {
			r.click(p)
		}
		return true

	case cyclemenu.PointerCancel:
		active := r.press.active
		r.press = press{}
		return active
	}
	return false
}

func (r *Ring) click(p press) {
	raw, ok := r.ItemAt(p.x, p.y)
	if !ok || r.layout.Adapter == nil {
		return
	}
	if r.now().Sub(p.start) >= r.opts.longPress {
		cyclemenu.Logger().Debug("ring: item long click", "raw", raw)
		r.layout.Adapter.OnItemLongClick(raw)
		return
	}
	cyclemenu.Logger().Debug("ring: item click", "raw", raw)
	r.layout.Adapter.OnItemClick(raw)
}

// ItemAt returns the raw position of the revealed item under (x, y).
func (r *Ring) ItemAt(x, y float64) (int, bool) {
	hit, found := 0, false
	half := float64(r.layout.ItemSize) / 2
	r.visible(func(j, raw int, angle float64) {
		if found || r.progress(j) <= 0 {
			return
		}
		cx, cy := r.center(angle)
		if math.Hypot(x-cx, y-cy) <= half {
			hit, found = raw, true
		}
	})
	return hit, found
}

// ItemCenter returns where the item in slot j is drawn.
func (r *Ring) ItemCenter(j int) (x, y float64) {
	return r.center(r.slotAngle(j))
}

// inBand reports whether (x, y) is between the collapsed circle and the
// outer radius, inside the quarter the arc covers.
func (r *Ring) inBand(x, y float64) bool {
	if !r.ready {
		return false
	}
	d := math.Hypot(x-float64(r.layout.Anchor.X), y-float64(r.layout.Anchor.Y))
	if d < float64(r.layout.CircleMinRadius) || d > float64(r.layout.OuterRadius) {
		return false
	}
	a := r.arcAngle(x, y)
	return a >= 0 && a <= 90
}
