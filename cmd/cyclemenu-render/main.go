// Command cyclemenu-render plays a scripted session against a cycle menu
// and writes every frame as a PNG.
//
// The script presses and holds the trigger until the arc opens, drags the
// items along the arc, taps an item and lets the menu close.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/cyclemenu"
	"github.com/gogpu/cyclemenu/anim"
	"github.com/gogpu/cyclemenu/config"
	"github.com/gogpu/cyclemenu/ring"
)

const frameStep = 40 * time.Millisecond

func main() {
	var (
		width      = flag.Int("width", 480, "frame width")
		height     = flag.Int("height", 640, "frame height")
		outDir     = flag.String("out", "frames", "output directory")
		configPath = flag.String("config", "", "YAML config file")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	text.SetShaper(cfg.TextShaper())
	ringOpts, err := cfg.RingOptions()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	caption, err := cfg.FontFace()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	clock := anim.NewManualClock(time.Unix(0, 0))
	r := ring.New(ringOpts...)
	w := cyclemenu.New(r, append(cfg.Options(), cyclemenu.WithClock(clock))...)
	w.SetAdapter(cyclemenu.NewItemAdapter(cfg.Items.Labels...))

	rec := &recorder{
		dc:    gg.NewContext(*width, *height),
		face:  caption,
		w:     w,
		clock: clock,
		dir:   *outDir,
	}
	w.SetItemClickListener(cyclemenu.ItemClickFuncs{
		Click: func(p int) { rec.caption = "picked " + cfg.Items.Labels[p] },
	})
	w.SetStateListener(cyclemenu.StateListenerFuncs{
		StateChanged: func(s cyclemenu.State) { rec.caption = s.String() },
	})
	w.Layout(*width, *height)
	defer rec.dc.Close()

	b := w.TriggerBounds()
	tx, ty := float64(b.Min.X+b.Dx()/2), float64(b.Min.Y+b.Dy()/2)

	steps := []func() error{
		func() error { return rec.frames(5) },
		func() error { return rec.pointer(cyclemenu.PointerDown, tx, ty) },
		func() error { return rec.frames(10) },
		func() error { return rec.pointer(cyclemenu.PointerUp, tx, ty) },
		func() error { return rec.settle() },
		func() error { return rec.drag(r, 2, 5, 8) },
		func() error { return rec.settle() },
		func() error {
			x, y := r.ItemCenter(r.Slots() / 2)
			if err := rec.pointer(cyclemenu.PointerDown, x, y); err != nil {
				return err
			}
			return rec.pointer(cyclemenu.PointerUp, x, y)
		},
		func() error { return rec.settle() },
		func() error { return rec.frames(5) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
	}

	log.Printf("Wrote %d frames to %s (%dx%d)\n", rec.n, *outDir, *width, *height)
}

type recorder struct {
	dc      *gg.Context
	face    text.Face
	w       *cyclemenu.Widget
	clock   *anim.ManualClock
	dir     string
	caption string
	n       int
}

func (rec *recorder) pointer(action cyclemenu.PointerAction, x, y float64) error {
	rec.w.HandlePointer(cyclemenu.PointerEvent{Action: action, X: x, Y: y})
	return rec.frames(1)
}

// drag scrolls from slot from to slot to of the ring in n moves.
func (rec *recorder) drag(r *ring.Ring, from, to, n int) error {
	x0, y0 := r.ItemCenter(from)
	x1, y1 := r.ItemCenter(to)
	if err := rec.pointer(cyclemenu.PointerDown, x0, y0); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n)
		if err := rec.pointer(cyclemenu.PointerMove, x0+(x1-x0)*f, y0+(y1-y0)*f); err != nil {
			return err
		}
	}
	return rec.pointer(cyclemenu.PointerUp, x1, y1)
}

// settle records frames until no animation is running.
func (rec *recorder) settle() error {
	for i := 0; i < 200 && rec.w.Animating(); i++ {
		if err := rec.frames(1); err != nil {
			return err
		}
	}
	return nil
}

// frames advances the clock by n frame steps and writes each frame.
func (rec *recorder) frames(n int) error {
	for range n {
		rec.clock.Advance(frameStep)
		rec.w.Advance()
		if err := rec.write(); err != nil {
			return err
		}
	}
	return nil
}

func (rec *recorder) write() error {
	rec.dc.ClearWithColor(gg.Hex("#FAFAFA"))
	if err := rec.w.Draw(rec.dc); err != nil {
		return err
	}

	rec.dc.SetFont(rec.face)
	rec.dc.SetFillBrush(gg.Solid(gg.Black))
	rec.dc.DrawString(fmt.Sprintf("%04d %s", rec.n, rec.caption), 8, 18)

	name := filepath.Join(rec.dir, fmt.Sprintf("frame-%04d.png", rec.n))
	if err := rec.dc.SavePNG(name); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	rec.n++
	return nil
}
