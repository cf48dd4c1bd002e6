package cyclemenu

import (
	"math"

	"github.com/gogpu/gg"
)

// Icon draws the trigger glyph centered at (cx, cy) inside a size×size box,
// rotated by rotation degrees.
type Icon interface {
	Draw(dc *gg.Context, cx, cy, size, rotation float64) error
}

// PlusIcon is the default trigger glyph. Rotated by -45° it reads as a
// close cross.
type PlusIcon struct {
	Color gg.RGBA
	// Thickness is the bar width as a fraction of size; 0 means 1/12.
	Thickness float64
}

// Draw implements Icon.
func (p PlusIcon) Draw(dc *gg.Context, cx, cy, size, rotation float64) error {
	thick := p.Thickness
	if thick <= 0 {
		thick = 1.0 / 12
	}
	half := size * 0.2
	bar := size * thick

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(rotation*math.Pi/180, cx, cy)
	dc.SetFillBrush(gg.Solid(p.Color))
	dc.DrawRectangle(cx-half, cy-bar/2, 2*half, bar)
	dc.DrawRectangle(cx-bar/2, cy-half, bar, 2*half)
	return dc.Fill()
}
