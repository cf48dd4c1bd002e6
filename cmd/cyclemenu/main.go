// Command cyclemenu runs a cycle menu in the terminal.
//
// Click the trigger in the corner to open the arc, drag along it to
// scroll, and click an item to pick it. Press o to open, c to close and
// q to quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/cyclemenu"
	"github.com/gogpu/cyclemenu/config"
	"github.com/gogpu/cyclemenu/inspect"
	"github.com/gogpu/cyclemenu/integration/tcellview"
	"github.com/gogpu/cyclemenu/internal/feedback"
	"github.com/gogpu/cyclemenu/ring"
	"github.com/gogpu/cyclemenu/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cyclemenu: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "YAML config file")
		logFile     = flag.String("log-file", "", "Write logs to this file (the terminal is busy with the UI)")
		corner      = flag.String("corner", "", "Corner: left-top, right-top, left-bottom, right-bottom")
		scaling     = flag.String("scaling", "", "Scaling policy: auto or fixed")
		scroll      = flag.String("scroll", "", "Scroll policy: basic or endless")
		storePath   = flag.String("store", "", "SQLite file for the saved arc position")
		widgetID    = flag.String("id", "", "Widget id in the store")
		inspectAddr = flag.String("inspect-addr", "", "Serve state frames over WebSocket on this address")
		sound       = flag.Bool("sound", false, "Play a chime when a transition completes")
		logLevel    = flag.String("log-level", "", "Log level: error, warn, info, debug")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}

	// Only flags given on the command line override the file.
	var o config.FlagOverrides
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corner":
			o.Corner = corner
		case "scaling":
			o.Scaling = scaling
		case "scroll":
			o.Scroll = scroll
		case "store":
			o.StorePath = storePath
		case "id":
			o.WidgetID = widgetID
		case "inspect-addr":
			o.InspectAddr = inspectAddr
		case "sound":
			o.Sound = sound
		case "log-level":
			o.LogLevel = logLevel
		}
	})
	o.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := newLogger(*logFile, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer closeLog()
	cyclemenu.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	text.SetShaper(cfg.TextShaper())
	ringOpts, err := cfg.RingOptions()
	if err != nil {
		return err
	}
	w := cyclemenu.New(ring.New(ringOpts...), cfg.Options()...)
	w.SetDisableOpening(cfg.Widget.DisableOpening)
	w.SetAdapter(cyclemenu.NewItemAdapter(cfg.Items.Labels...))
	w.SetItemClickListener(cyclemenu.ItemClickFuncs{
		Click: func(p int) {
			logger.Info("item selected", "position", p, "label", cfg.Items.Labels[p])
		},
		LongClick: func(p int) {
			logger.Info("item held", "position", p, "label", cfg.Items.Labels[p])
		},
	})

	var (
		stateListeners []cyclemenu.StateListener
		saveListeners  []cyclemenu.StateSaveListener
	)

	if cfg.Store.Path != "" {
		st, err := store.Open(config.ExpandPath(cfg.Store.Path))
		if err != nil {
			return err
		}
		defer st.Close()
		restored, err := st.Restore(w, cfg.Store.WidgetID)
		if err != nil {
			return err
		}
		logger.Info("store opened", "path", cfg.Store.Path, "widget_id", cfg.Store.WidgetID, "restored", restored)
		saveListeners = append(saveListeners, st.Listener(cfg.Store.WidgetID, func(err error) {
			logger.Error("save position failed", "error", err)
		}))
	}

	if cfg.Feedback.Enabled {
		player := feedback.New(cfg.Feedback.Volume, time.Duration(cfg.Feedback.ToneMS)*time.Millisecond)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, feedback disabled", "error", err)
		} else {
			defer player.Close()
			stateListeners = append(stateListeners, player)
		}
	}

	if cfg.Inspect.Addr != "" {
		hub := inspect.NewHub(logger, inspect.HubConfig{})
		pub := inspect.NewPublisher(hub)
		stateListeners = append(stateListeners, pub)
		saveListeners = append(saveListeners, pub)

		go hub.Run(ctx)
		srv := inspect.NewServer(logger, hub)
		go func() {
			err := inspect.ListenAndServe(ctx, cfg.Inspect.Addr, cfg.Inspect.Path, srv)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("inspect server stopped", "error", err)
			}
		}()
	}

	w.SetStateListener(fanOutState(stateListeners))
	w.SetStateSaveListener(fanOutSave(saveListeners))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	w.Attach()
	view, err := tcellview.New(screen, w,
		tcellview.WithBackground(gg.Hex("#202124")),
		tcellview.WithKey('o', func() { w.Open(true) }),
		tcellview.WithKey('c', func() { w.Close(true) }),
		tcellview.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Info("cyclemenu started", "corner", cfg.Widget.Corner, "items", len(cfg.Items.Labels))
	err = view.Run(ctx)
	w.Detach()
	logger.Info("cyclemenu stopped", "position", w.Persisted().Position)
	return err
}

// newLogger returns a text logger writing to path, or a silent one when
// path is empty.
func newLogger(path, level string) (*slog.Logger, func(), error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}
	var out io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(config.ExpandPath(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}

func fanOutState(ls []cyclemenu.StateListener) cyclemenu.StateListener {
	if len(ls) == 0 {
		return nil
	}
	return cyclemenu.StateListenerFuncs{
		StateChanged: func(s cyclemenu.State) {
			for _, l := range ls {
				l.OnStateChanged(s)
			}
		},
		OpenComplete: func() {
			for _, l := range ls {
				l.OnOpenComplete()
			}
		},
		CloseComplete: func() {
			for _, l := range ls {
				l.OnCloseComplete()
			}
		},
	}
}

func fanOutSave(ls []cyclemenu.StateSaveListener) cyclemenu.StateSaveListener {
	if len(ls) == 0 {
		return nil
	}
	return cyclemenu.StateSaveFunc(func(position int, angleOffset float64) {
		for _, l := range ls {
			l.SaveState(position, angleOffset)
		}
	})
}
