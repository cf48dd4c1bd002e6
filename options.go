package cyclemenu

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/cyclemenu/anim"
)

// Option configures a Widget during creation.
//
// Example:
//
//	w := cyclemenu.New(arc,
//	    cyclemenu.WithCorner(cyclemenu.LeftBottom),
//	    cyclemenu.WithScrollPolicy(cyclemenu.Endless),
//	)
type Option func(*options)

// options holds the construction-time configuration of a Widget.
type options struct {
	corner  Corner
	scaling ScalingPolicy
	scroll  ScrollPolicy

	autoMinRadius int
	autoMaxRadius int
	fixedRadius   int

	itemSize        int
	circleMinRadius int
	shadowSize      float64

	rippleColor gg.RGBA
	circleColor gg.RGBA
	shadowStart gg.RGBA
	shadowMid   gg.RGBA
	shadowEnd   gg.RGBA

	triggerMargin int
	triggerSize   int
	triggerClosed gg.RGBA
	triggerOpened gg.RGBA
	iconClosed    Icon
	iconOpened    Icon

	clock  anim.Clock
	redraw func()
	logger *slog.Logger
}

// defaultOptions returns the default widget options.
func defaultOptions() options {
	return options{
		corner:          RightBottom,
		scaling:         Auto,
		scroll:          Basic,
		autoMinRadius:   Unset,
		autoMaxRadius:   Unset,
		fixedRadius:     Unset,
		itemSize:        48,
		circleMinRadius: 80,
		shadowSize:      40,
		rippleColor:     gg.RGBA{R: 1, G: 1, B: 1, A: 0.4},
		circleColor:     gg.Hex("#3F51B5"),
		shadowStart:     gg.RGBA{A: 0x37 / 255.0},
		shadowMid:       gg.RGBA{A: 0x14 / 255.0},
		shadowEnd:       gg.RGBA{A: 0x03 / 255.0},
		triggerMargin:   16,
		triggerSize:     56,
		triggerClosed:   gg.Hex("#FF4081"),
		triggerOpened:   gg.Hex("#C51162"),
		iconClosed:      PlusIcon{Color: gg.White},
		clock:           anim.SystemClock{},
	}
}

// WithCorner sets the anchoring corner. Invalid corners are ignored.
func WithCorner(c Corner) Option {
	return func(o *options) {
		if c.Valid() {
			o.corner = c
		}
	}
}

// WithScalingPolicy sets Auto or Fixed scaling. Invalid values are ignored.
func WithScalingPolicy(p ScalingPolicy) Option {
	return func(o *options) {
		if p.Valid() {
			o.scaling = p
		}
	}
}

// WithScrollPolicy sets Basic or Endless scrolling. Invalid values are ignored.
func WithScrollPolicy(p ScrollPolicy) Option {
	return func(o *options) {
		if p.Valid() {
			o.scroll = p
		}
	}
}

// WithAutoMinRadius sets the lower ring bound. It is always raised to at
// least the circle minimum radius plus one item size.
func WithAutoMinRadius(r int) Option {
	return func(o *options) { o.autoMinRadius = r }
}

// WithAutoMaxRadius sets the upper ring bound. Unset or values above the
// available space mean "as large as fits".
func WithAutoMaxRadius(r int) Option {
	return func(o *options) { o.autoMaxRadius = r }
}

// WithFixedRadius sets the ring radius used by Fixed scaling.
func WithFixedRadius(r int) Option {
	return func(o *options) { o.fixedRadius = r }
}

// WithItemSize sets the size of one arc item in pixels.
func WithItemSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.itemSize = size
		}
	}
}

// WithCircleMinRadius sets the radius of the collapsed circle.
func WithCircleMinRadius(r int) Option {
	return func(o *options) {
		if r >= 0 {
			o.circleMinRadius = r
		}
	}
}

// WithShadowSize sets the full shadow thickness around the expanded circle.
func WithShadowSize(size float64) Option {
	return func(o *options) {
		if size >= 0 {
			o.shadowSize = size
		}
	}
}

// WithShadowColors sets the shadow gradient from the circle edge outwards.
func WithShadowColors(start, mid, end gg.RGBA) Option {
	return func(o *options) {
		o.shadowStart, o.shadowMid, o.shadowEnd = start, mid, end
	}
}

// WithRippleColor sets the press ripple color. Its alpha is the ripple's
// starting opacity.
func WithRippleColor(c gg.RGBA) Option {
	return func(o *options) { o.rippleColor = c }
}

// WithCircleColor sets the fill of the expanding circle.
func WithCircleColor(c gg.RGBA) Option {
	return func(o *options) { o.circleColor = c }
}

// WithTriggerMargin sets the trigger's distance from both container edges.
func WithTriggerMargin(margin int) Option {
	return func(o *options) { o.triggerMargin = margin }
}

// WithTriggerSize sets the trigger's diameter.
func WithTriggerSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.triggerSize = size
		}
	}
}

// WithTriggerColors sets the trigger background for the closed and opened
// states.
func WithTriggerColors(closed, opened gg.RGBA) Option {
	return func(o *options) {
		o.triggerClosed, o.triggerOpened = closed, opened
	}
}

// WithTriggerIcons sets the trigger icons. A nil opened icon makes the
// widget rotate the closed icon by -45° instead of swapping icons.
func WithTriggerIcons(closed, opened Icon) Option {
	return func(o *options) {
		if closed != nil {
			o.iconClosed = closed
		}
		o.iconOpened = opened
	}
}

// WithClock sets the time source driving animations.
// Tests and headless renderers pass an *anim.ManualClock.
func WithClock(c anim.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger of one widget. Without it the widget logs
// through the package logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRedrawHandler sets a callback invoked whenever the widget's
// appearance changes.
func WithRedrawHandler(fn func()) Option {
	return func(o *options) { o.redraw = fn }
}
