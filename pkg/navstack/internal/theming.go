package internal

import (
	"image/color"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navstack/pkg/navstack/bar"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
)

// Theme defines the visual appearance of the navigation view.
type Theme struct {
	AccentColor     color.RGBA // Back control tint when a screen declares none
	SurfaceColor    color.RGBA // Bar background when a screen declares none
	TextColor       color.RGBA // Title text
	BackgroundColor color.RGBA // Window clear color behind the screens
	FontPath        string     // TTF used for every font size
}

// DefaultTheme is light with a teal accent.
func DefaultTheme() Theme {
	return Theme{
		AccentColor:     config.HexToColor(0x008080),
		SurfaceColor:    config.HexToColor(0xF7F7F7),
		TextColor:       config.HexToColor(0x000000),
		BackgroundColor: config.HexToColor(0xFFFFFF),
	}
}

// BarTheme returns the colors the bar falls back to.
func (t Theme) BarTheme() bar.Theme {
	return bar.Theme{Surface: t.SurfaceColor, Accent: t.AccentColor}
}

// WithColors applies the overrides from a config file.
func (t Theme) WithColors(c config.Colors) Theme {
	if c.Accent != nil {
		t.AccentColor = *c.Accent
	}
	if c.Surface != nil {
		t.SurfaceColor = *c.Surface
	}
	if c.Text != nil {
		t.TextColor = *c.Text
	}
	return t
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

func toSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
