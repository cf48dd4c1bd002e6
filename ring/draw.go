package ring

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/cyclemenu"
)

// Draw implements cyclemenu.Drawer.
func (r *Ring) Draw(dc *gg.Context) error {
	n := r.layout.RealItems
	if n == 0 || r.reveal <= 0 {
		return nil
	}
	size := float64(r.layout.ItemSize)
	var err error
	r.visible(func(j, raw int, angle float64) {
		p := r.progress(j)
		if err != nil || p <= 0 {
			return
		}
		cx, cy := r.center(angle)
		index := cyclemenu.RealPosition(raw, n)
		if e := r.opts.drawer(dc, index, cx, cy, size, p); e != nil {
			err = fmt.Errorf("ring: draw item %d: %w", index, e)
		}
	})
	return err
}

func (r *Ring) drawDisc(dc *gg.Context, index int, cx, cy, size, scale float64) error {
	dc.SetFillBrush(gg.Solid(r.opts.palette[index%len(r.opts.palette)]))
	dc.DrawCircle(cx, cy, size*0.4*scale)
	if err := dc.Fill(); err != nil {
		return err
	}
	// Labels appear once the item has fully rolled in.
	if scale < 1 || r.opts.face == nil {
		return nil
	}
	l, ok := r.layout.Adapter.(cyclemenu.Labeler)
	if !ok {
		return nil
	}
	dc.SetFont(r.opts.face)
	label := fitLabel(dc, l.Label(index), size*0.8)
	if label == "" {
		return nil
	}
	dc.SetFillBrush(gg.Solid(r.opts.labelColor))
	dc.DrawStringAnchored(label, cx, cy, 0.5, 0.5)
	return nil
}

// fitLabel drops trailing runes from s until it measures at most width.
func fitLabel(dc *gg.Context, s string, width float64) string {
	runes := []rune(s)
	for len(runes) > 0 {
		if w, _ := dc.MeasureString(string(runes)); w <= width {
			return string(runes)
		}
		runes = runes[:len(runes)-1]
	}
	return ""
}
