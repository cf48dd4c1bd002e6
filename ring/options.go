package ring

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ItemDrawer draws the item at real position index centered at (cx, cy).
// size is the nominal item size; scale in (0, 1] is the roll progress.
type ItemDrawer func(dc *gg.Context, index int, cx, cy, size, scale float64) error

// Option configures a Ring.
type Option func(*options)

type options struct {
	drawer       ItemDrawer
	palette      []gg.RGBA
	face         text.Face
	labelColor   gg.RGBA
	rollDuration time.Duration
	longPress    time.Duration
	touchSlop    float64
}

func defaultOptions() options {
	return options{
		palette: []gg.RGBA{
			gg.Hex("#FFC107"),
			gg.Hex("#4CAF50"),
			gg.Hex("#03A9F4"),
			gg.Hex("#E91E63"),
			gg.Hex("#9C27B0"),
		},
		labelColor:   gg.White,
		rollDuration: 300 * time.Millisecond,
		longPress:    500 * time.Millisecond,
		touchSlop:    8,
	}
}

// WithItemDrawer replaces the default colored-disc item drawing.
func WithItemDrawer(d ItemDrawer) Option {
	return func(o *options) { o.drawer = d }
}

// WithPalette sets the colors the default drawer cycles through.
func WithPalette(colors ...gg.RGBA) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = colors
		}
	}
}

// WithFont makes the default drawer write the adapter's label on each item
// when the adapter implements cyclemenu.Labeler. Labels wider than the
// disc are cut short.
func WithFont(face text.Face) Option {
	return func(o *options) { o.face = face }
}

// WithLabelColor sets the color of item labels.
func WithLabelColor(c gg.RGBA) Option {
	return func(o *options) { o.labelColor = c }
}

// WithRollDuration sets how long the roll-in and roll-out animations take.
func WithRollDuration(d time.Duration) Option {
	return func(o *options) { o.rollDuration = d }
}

// WithLongPress sets the press duration reported as a long click.
func WithLongPress(d time.Duration) Option {
	return func(o *options) { o.longPress = d }
}

// WithTouchSlop sets the distance a press may travel before it becomes a
// drag.
func WithTouchSlop(px float64) Option {
	return func(o *options) { o.touchSlop = px }
}
