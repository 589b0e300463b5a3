// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
)

// FontPath is where Cannoli installs its system font.
const FontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		AccentColor:     config.HexToColor(0x008080),
		SurfaceColor:    config.HexToColor(0xFFFFFF),
		TextColor:       config.HexToColor(0x000000),
		BackgroundColor: config.HexToColor(0xFFFFFF),
		FontPath:        fontPath,
	}
}
