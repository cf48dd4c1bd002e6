package tcellview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/cyclemenu"
)

const frameInterval = 16 * time.Millisecond

// View runs a widget on a tcell screen.
type View struct {
	screen tcell.Screen
	widget *cyclemenu.Widget
	canvas *Canvas
	mouse  mouse
	keys   map[rune]func()
	logger *slog.Logger
}

// Option configures a View.
type Option func(*View)

// WithBackground sets the color behind the widget.
func WithBackground(bg gg.RGBA) Option {
	return func(v *View) { v.canvas.SetBackground(bg) }
}

// WithKey binds a rune key to fn. q and Escape always quit.
func WithKey(r rune, fn func()) Option {
	return func(v *View) { v.keys[r] = fn }
}

// WithLogger sets the logger for host-side events.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// New prepares screen, which must not be initialized yet, and lays the
// widget out to fill it.
func New(screen tcell.Screen, w *cyclemenu.Widget, opts ...Option) (*View, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellview: init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	canvas, err := NewCanvas(max(cols, 1), max(rows, 1))
	if err != nil {
		screen.Fini()
		return nil, err
	}
	v := &View{
		screen: screen,
		widget: w,
		canvas: canvas,
		keys:   make(map[rune]func()),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.layout()
	return v, nil
}

// Canvas returns the canvas the view renders into.
func (v *View) Canvas() *Canvas { return v.canvas }

// Run handles events and redraws until ctx is canceled or the user quits.
// It restores the terminal before returning.
func (v *View) Run(ctx context.Context) error {
	defer v.screen.Fini()
	defer v.canvas.Close()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	if err := v.render(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if v.widget.Advance() || v.canvas.IsDirty() {
				if err := v.render(); err != nil {
					return err
				}
			}
		}
	}
}

// handle processes one event and reports whether to keep running.
func (v *View) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			if ev.Rune() == 'q' {
				return false
			}
			if fn, ok := v.keys[ev.Rune()]; ok {
				fn()
			}
		}

	case *tcell.EventMouse:
		if action, col, row, ok := v.mouse.translate(ev); ok {
			v.dispatch(action, col, row)
		}

	case *tcell.EventResize:
		if action, col, row, ok := v.mouse.cancel(); ok {
			v.dispatch(action, col, row)
		}
		v.screen.Sync()
		v.layout()
	}
	return true
}

func (v *View) dispatch(action cyclemenu.PointerAction, col, row int) {
	x, y := v.canvas.PointAt(col, row)
	consumed := v.widget.HandlePointer(cyclemenu.PointerEvent{Action: action, X: x, Y: y})
	v.logger.Debug("pointer", "action", action, "x", x, "y", y, "consumed", consumed)
}

func (v *View) layout() {
	cols, rows := v.screen.Size()
	if err := v.canvas.Resize(max(cols, 1), max(rows, 1)); err != nil {
		v.logger.Warn("canvas resize failed", "error", err)
		return
	}
	w, h := v.canvas.PixelSize()
	v.widget.Layout(w, h)
}

func (v *View) render() error {
	if err := v.canvas.Draw(v.widget.Draw); err != nil {
		return fmt.Errorf("tcellview: draw: %w", err)
	}
	if err := v.canvas.Flush(v.screen); err != nil {
		return err
	}
	v.screen.Show()
	return nil
}
