package cyclemenu

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Draw paints the widget: the shadow, circle and ripple anchored at the
// corner, then the arc, then the trigger on top. The shadow and circle
// are only drawn while the menu is not Closed.
func (w *Widget) Draw(dc *gg.Context) error {
	ax, ay := float64(w.anchor.X), float64(w.anchor.Y)
	circle := float64(w.visual.circleRadius)

	if w.state != Closed {
		if err := w.drawShadow(dc, ax, ay, circle); err != nil {
			return fmt.Errorf("cyclemenu: draw shadow: %w", err)
		}
		dc.SetFillBrush(gg.Solid(w.opts.circleColor))
		dc.DrawCircle(ax, ay, circle)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("cyclemenu: draw circle: %w", err)
		}
	}

	if r := min(w.visual.circleRadius, w.ripple.Radius); r > 0 && w.ripple.Alpha > 0 {
		c := w.opts.rippleColor
		c.A = float64(w.ripple.Alpha) / 255
		dc.SetFillBrush(gg.Solid(c))
		dc.DrawCircle(ax, ay, float64(r))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("cyclemenu: draw ripple: %w", err)
		}
	}

	if w.visual.arcShown {
		if d, ok := w.arc.(Drawer); ok {
			if err := d.Draw(dc); err != nil {
				return fmt.Errorf("cyclemenu: draw arc: %w", err)
			}
		}
	}

	return w.drawTrigger(dc)
}

// drawShadow fills the annulus between the circle and circle+shadow with
// a radial gradient fading outwards.
func (w *Widget) drawShadow(dc *gg.Context, ax, ay, circle float64) error {
	outer := circle + w.visual.shadow
	if w.visual.shadow <= 0 || outer <= 0 {
		return nil
	}
	start := circle / outer
	mid := start + (1-start)/2
	grad := gg.NewRadialGradientBrush(ax, ay, 0, outer).
		AddColorStop(0, gg.Transparent).
		AddColorStop(start, w.opts.shadowStart).
		AddColorStop(mid, w.opts.shadowMid).
		AddColorStop(1, w.opts.shadowEnd)

	dc.SetFillBrush(grad)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	defer dc.SetFillRule(gg.FillRuleNonZero)
	dc.DrawCircle(ax, ay, outer)
	dc.DrawCircle(ax, ay, circle)
	return dc.Fill()
}

func (w *Widget) drawTrigger(dc *gg.Context) error {
	b := w.triggerBounds
	if b.Empty() {
		return nil
	}
	cx, cy := w.triggerCenter()
	size := float64(b.Dx())

	dc.SetFillBrush(gg.Solid(w.visual.tint))
	dc.DrawCircle(cx, cy, size/2)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("cyclemenu: draw trigger: %w", err)
	}

	icon := w.opts.iconClosed
	if w.visual.openedIcon && w.opts.iconOpened != nil {
		icon = w.opts.iconOpened
	}
	if icon == nil {
		return nil
	}
	if err := icon.Draw(dc, cx, cy, size, w.visual.rotation); err != nil {
		return fmt.Errorf("cyclemenu: draw icon: %w", err)
	}
	return nil
}
