// Package config loads the YAML configuration of the cyclemenu commands and
// maps it onto widget and ring options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/cyclemenu"
	"github.com/gogpu/cyclemenu/ring"
)

// Config is the top-level YAML configuration.
//
// Defaults and validation live here so callers can assume a well-formed
// config once Validate returns nil.
type Config struct {
	Widget   WidgetConfig   `yaml:"widget"`
	Items    ItemsConfig    `yaml:"items"`
	Store    StoreConfig    `yaml:"store"`
	Inspect  InspectConfig  `yaml:"inspect"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WidgetConfig mirrors the widget options. Radii of -1 are unset.
type WidgetConfig struct {
	Corner  string `yaml:"corner"`  // left-top|right-top|left-bottom|right-bottom
	Scaling string `yaml:"scaling"` // auto|fixed
	Scroll  string `yaml:"scroll"`  // basic|endless

	AutoMinRadius   int     `yaml:"auto_min_radius"`
	AutoMaxRadius   int     `yaml:"auto_max_radius"`
	FixedRadius     int     `yaml:"fixed_radius"`
	ItemSize        int     `yaml:"item_size"`
	CircleMinRadius int     `yaml:"circle_min_radius"`
	ShadowSize      float64 `yaml:"shadow_size"`

	TriggerSize   int `yaml:"trigger_size"`
	TriggerMargin int `yaml:"trigger_margin"`

	// Colors are hex strings: #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
	CircleColor        string `yaml:"circle_color"`
	RippleColor        string `yaml:"ripple_color"`
	TriggerClosedColor string `yaml:"trigger_closed_color"`
	TriggerOpenedColor string `yaml:"trigger_opened_color"`

	DisableOpening bool `yaml:"disable_opening,omitempty"`
}

// ItemsConfig describes the demo items shown on the ring.
type ItemsConfig struct {
	Labels      []string `yaml:"labels"`
	Palette     []string `yaml:"palette,omitempty"`
	RollMS      int      `yaml:"roll_ms"`
	LongPressMS int      `yaml:"long_press_ms"`

	// Font is a TrueType file for item labels; empty uses Go Regular.
	Font     string  `yaml:"font,omitempty"`
	FontSize float64 `yaml:"font_size"`
	// Shaper is builtin or harfbuzz.
	Shaper string `yaml:"shaper"`
	// Language is a BCP 47 tag passed to the shaper.
	Language string `yaml:"language,omitempty"`
}

// StoreConfig configures position persistence. An empty path disables it.
type StoreConfig struct {
	Path     string `yaml:"path"`
	WidgetID string `yaml:"widget_id"`
}

// InspectConfig configures the state WebSocket feed. An empty addr
// disables it.
type InspectConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}

// FeedbackConfig configures the open/close tones.
type FeedbackConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
	ToneMS  int     `yaml:"tone_ms"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a fully-populated Config matching the widget
// defaults.
func DefaultConfig() Config {
	return Config{
		Widget: WidgetConfig{
			Corner:             cyclemenu.RightBottom.String(),
			Scaling:            cyclemenu.Auto.String(),
			Scroll:             cyclemenu.Basic.String(),
			AutoMinRadius:      cyclemenu.Unset,
			AutoMaxRadius:      cyclemenu.Unset,
			FixedRadius:        cyclemenu.Unset,
			ItemSize:           48,
			CircleMinRadius:    80,
			ShadowSize:         40,
			TriggerSize:        56,
			TriggerMargin:      16,
			CircleColor:        "#3F51B5",
			RippleColor:        "#FFFFFF66",
			TriggerClosedColor: "#FF4081",
			TriggerOpenedColor: "#C51162",
		},
		Items: ItemsConfig{
			Labels:      []string{"mail", "call", "camera", "music", "maps", "notes", "clock", "files"},
			RollMS:      300,
			LongPressMS: 500,
			FontSize:    12,
			Shaper:      "builtin",
		},
		Store: StoreConfig{
			WidgetID: "main",
		},
		Inspect: InspectConfig{
			Path: "/ws/state",
		},
		Feedback: FeedbackConfig{
			Volume: 0.3,
			ToneMS: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFile reads and parses a YAML config file on top of DefaultConfig.
// Unknown fields and trailing documents are rejected.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config path is empty")
	}
	b, err := os.ReadFile(ExpandPath(path))
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, errors.New("decode config yaml: unexpected trailing document")
	}

	return cfg, nil
}

// FlagOverrides holds command-line overrides. Nil pointers are ignored;
// non-nil ones are applied even when they hold the zero value.
type FlagOverrides struct {
	Corner  *string
	Scaling *string
	Scroll  *string

	StorePath *string
	WidgetID  *string

	InspectAddr *string

	Sound *bool

	LogLevel *string
}

// Apply merges the overrides into cfg.
func (o FlagOverrides) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if o.Corner != nil {
		cfg.Widget.Corner = *o.Corner
	}
	if o.Scaling != nil {
		cfg.Widget.Scaling = *o.Scaling
	}
	if o.Scroll != nil {
		cfg.Widget.Scroll = *o.Scroll
	}
	if o.StorePath != nil {
		cfg.Store.Path = *o.StorePath
	}
	if o.WidgetID != nil {
		cfg.Store.WidgetID = *o.WidgetID
	}
	if o.InspectAddr != nil {
		cfg.Inspect.Addr = *o.InspectAddr
	}
	if o.Sound != nil {
		cfg.Feedback.Enabled = *o.Sound
	}
	if o.LogLevel != nil {
		cfg.Logging.Level = *o.LogLevel
	}
}

// Validate checks config invariants and returns a user-friendly error.
// Call it after defaults, file and overrides are applied.
func (c *Config) Validate() error {
	w := c.Widget
	if _, err := cyclemenu.ParseCorner(w.Corner); err != nil {
		return fmt.Errorf("widget.corner: %w", err)
	}
	if _, err := cyclemenu.ParseScalingPolicy(w.Scaling); err != nil {
		return fmt.Errorf("widget.scaling: %w", err)
	}
	if _, err := cyclemenu.ParseScrollPolicy(w.Scroll); err != nil {
		return fmt.Errorf("widget.scroll: %w", err)
	}
	if w.ItemSize <= 0 {
		return errors.New("widget.item_size must be > 0")
	}
	if w.CircleMinRadius < 0 {
		return errors.New("widget.circle_min_radius must be >= 0")
	}
	if w.ShadowSize < 0 {
		return errors.New("widget.shadow_size must be >= 0")
	}
	if w.TriggerSize <= 0 {
		return errors.New("widget.trigger_size must be > 0")
	}
	if w.AutoMinRadius != cyclemenu.Unset && w.AutoMaxRadius != cyclemenu.Unset &&
		w.AutoMinRadius > w.AutoMaxRadius {
		return errors.New("widget.auto_min_radius must be <= widget.auto_max_radius")
	}
	for name, v := range map[string]string{
		"widget.circle_color":         w.CircleColor,
		"widget.ripple_color":         w.RippleColor,
		"widget.trigger_closed_color": w.TriggerClosedColor,
		"widget.trigger_opened_color": w.TriggerOpenedColor,
	} {
		if !validHex(v) {
			return fmt.Errorf("%s: invalid color %q", name, v)
		}
	}

	if len(c.Items.Labels) == 0 {
		return errors.New("items.labels must not be empty")
	}
	for i, v := range c.Items.Palette {
		if !validHex(v) {
			return fmt.Errorf("items.palette[%d]: invalid color %q", i, v)
		}
	}
	if c.Items.RollMS < 0 {
		return errors.New("items.roll_ms must be >= 0")
	}
	if c.Items.LongPressMS <= 0 {
		return errors.New("items.long_press_ms must be > 0")
	}
	if c.Items.FontSize <= 0 {
		return errors.New("items.font_size must be > 0")
	}
	if c.Items.Shaper != "builtin" && c.Items.Shaper != "harfbuzz" {
		return fmt.Errorf("items.shaper: invalid shaper %q (want builtin or harfbuzz)", c.Items.Shaper)
	}
	if c.Items.Language != "" {
		if _, err := language.Parse(c.Items.Language); err != nil {
			return fmt.Errorf("items.language: %w", err)
		}
	}

	if c.Store.Path != "" && c.Store.WidgetID == "" {
		return errors.New("store.path is set but store.widget_id is empty")
	}
	if c.Inspect.Addr != "" && !strings.HasPrefix(c.Inspect.Path, "/") {
		return errors.New("inspect.path must start with /")
	}

	if c.Feedback.Volume < 0 || c.Feedback.Volume > 1 {
		return errors.New("feedback.volume must be between 0 and 1")
	}
	if c.Feedback.Enabled && c.Feedback.ToneMS <= 0 {
		return errors.New("feedback.tone_ms must be > 0")
	}

	if _, err := ParseLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// Options converts the widget section to widget options. The config must
// have passed Validate.
func (c *Config) Options() []cyclemenu.Option {
	w := c.Widget
	corner, _ := cyclemenu.ParseCorner(w.Corner)
	scaling, _ := cyclemenu.ParseScalingPolicy(w.Scaling)
	scroll, _ := cyclemenu.ParseScrollPolicy(w.Scroll)
	return []cyclemenu.Option{
		cyclemenu.WithCorner(corner),
		cyclemenu.WithScalingPolicy(scaling),
		cyclemenu.WithScrollPolicy(scroll),
		cyclemenu.WithAutoMinRadius(w.AutoMinRadius),
		cyclemenu.WithAutoMaxRadius(w.AutoMaxRadius),
		cyclemenu.WithFixedRadius(w.FixedRadius),
		cyclemenu.WithItemSize(w.ItemSize),
		cyclemenu.WithCircleMinRadius(w.CircleMinRadius),
		cyclemenu.WithShadowSize(w.ShadowSize),
		cyclemenu.WithTriggerSize(w.TriggerSize),
		cyclemenu.WithTriggerMargin(w.TriggerMargin),
		cyclemenu.WithCircleColor(gg.Hex(w.CircleColor)),
		cyclemenu.WithRippleColor(gg.Hex(w.RippleColor)),
		cyclemenu.WithTriggerColors(gg.Hex(w.TriggerClosedColor), gg.Hex(w.TriggerOpenedColor)),
	}
}

// RingOptions converts the items section to ring options. It fails when
// the label font cannot be loaded.
func (c *Config) RingOptions() ([]ring.Option, error) {
	face, err := c.FontFace()
	if err != nil {
		return nil, err
	}
	opts := []ring.Option{
		ring.WithRollDuration(time.Duration(c.Items.RollMS) * time.Millisecond),
		ring.WithLongPress(time.Duration(c.Items.LongPressMS) * time.Millisecond),
		ring.WithFont(face),
	}
	if len(c.Items.Palette) > 0 {
		palette := make([]gg.RGBA, len(c.Items.Palette))
		for i, v := range c.Items.Palette {
			palette[i] = gg.Hex(v)
		}
		opts = append(opts, ring.WithPalette(palette...))
	}
	return opts, nil
}

// FontFace loads the label face described by the items section.
func (c *Config) FontFace() (text.Face, error) {
	var (
		src *text.FontSource
		err error
	)
	if c.Items.Font == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(ExpandPath(c.Items.Font))
	}
	if err != nil {
		return nil, fmt.Errorf("items.font: %w", err)
	}
	var opts []text.FaceOption
	if c.Items.Language != "" {
		tag, err := language.Parse(c.Items.Language)
		if err != nil {
			return nil, fmt.Errorf("items.language: %w", err)
		}
		opts = append(opts, text.WithLanguage(tag.String()))
	}
	return src.Face(c.Items.FontSize, opts...), nil
}

// TextShaper returns the shaper selected by items.shaper. Nil means the
// builtin one; pass the result to text.SetShaper.
func (c *Config) TextShaper() text.Shaper {
	if c.Items.Shaper == "harfbuzz" {
		return text.NewGoTextShaper()
	}
	return nil
}

// ParseLogLevel maps error|warn|info|debug to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("logging.level: invalid level %q (want error, warn, info or debug)", s)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	if len(p) >= 2 && (p[1] == '/' || p[1] == '\\') {
		return filepath.Join(home, p[2:])
	}
	return p
}

func validHex(s string) bool {
	s, ok := strings.CutPrefix(s, "#")
	if !ok {
		return false
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
