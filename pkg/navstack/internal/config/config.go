// Package config loads the navstack TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navstack/pkg/navstack/bar"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/transition"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level TOML structure.
type Config struct {
	Language    string `toml:"language"`     // BCP 47 tag for the back label, e.g. "de"
	LogLevel    string `toml:"log_level"`    // debug, info, warn or error
	TouchDevice string `toml:"touch_device"` // evdev path; empty uses SDL touch events only

	Gesture GestureConfig `toml:"gesture"`
	Bar     BarConfig     `toml:"bar"`
	Theme   ThemeConfig   `toml:"theme"`
}

type GestureConfig struct {
	EdgeWidth           float64 `toml:"edge_width"`
	CompletionThreshold float64 `toml:"completion_threshold"`
	TransitionMS        int     `toml:"transition_ms"`
}

type BarConfig struct {
	Height        float64 `toml:"height"`
	ShowBackLabel bool    `toml:"show_back_label"`
}

// ThemeConfig holds hex color overrides. Empty strings keep the theme value.
type ThemeConfig struct {
	Accent  string `toml:"accent"`
	Surface string `toml:"surface"`
	Text    string `toml:"text"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Gesture: GestureConfig{
			EdgeWidth:           constants.DefaultEdgeWidth,
			CompletionThreshold: constants.DefaultCompletionThreshold,
			TransitionMS:        int(constants.DefaultTransitionDuration / time.Millisecond),
		},
		Bar: BarConfig{
			Height:        constants.DefaultBarHeight,
			ShowBackLabel: true,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if err := c.Transition().Validate(); err != nil {
		return fmt.Errorf("%w: gesture: %w", ErrInvalidConfig, err)
	}
	if c.Bar.Height <= 0 {
		return fmt.Errorf("%w: bar height %v must be positive", ErrInvalidConfig, c.Bar.Height)
	}
	if _, err := c.Theme.Colors(); err != nil {
		return err
	}
	return nil
}

// Transition returns the gesture tuning.
func (c Config) Transition() transition.Config {
	return transition.Config{
		EdgeWidth:           c.Gesture.EdgeWidth,
		CompletionThreshold: c.Gesture.CompletionThreshold,
		Duration:            time.Duration(c.Gesture.TransitionMS) * time.Millisecond,
	}
}

// Metrics returns the bar dimensions.
func (c Config) Metrics() bar.Metrics {
	m := bar.DefaultMetrics()
	m.Height = c.Bar.Height
	return m
}

// Colors holds the theme overrides a file sets; nil means unset.
type Colors struct {
	Accent  *color.RGBA
	Surface *color.RGBA
	Text    *color.RGBA
}

// Colors parses the hex overrides.
func (t ThemeConfig) Colors() (Colors, error) {
	var out Colors
	for _, f := range []struct {
		name string
		raw  string
		dst  **color.RGBA
	}{
		{"accent", t.Accent, &out.Accent},
		{"surface", t.Surface, &out.Surface},
		{"text", t.Text, &out.Text},
	} {
		if f.raw == "" {
			continue
		}
		c, err := ParseHexColor(f.raw)
		if err != nil {
			return Colors{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = &c
	}
	return out, nil
}
