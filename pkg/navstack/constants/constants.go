// Package constants defines shared constants and configuration defaults
// used throughout navstack.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"     // Set to DEV for a windowed, bordered SDL window
	WindowWidthEnvVar  = "WINDOW_WIDTH"    // Dev mode window width
	WindowHeightEnvVar = "WINDOW_HEIGHT"   // Dev mode window height
	ConfigPathEnvVar   = "NAVSTACK_CONFIG" // Path to a TOML config file
	TouchDeviceEnvVar  = "TOUCH_DEVICE"    // evdev touchscreen path, e.g. /dev/input/event3
	LanguageEnvVar     = "LANG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Gesture and animation defaults.
const (
	DefaultEdgeWidth           = 32.0                   // Leading band a back-swipe must start in
	DefaultCompletionThreshold = 0.3                    // Fraction of the width a swipe must cross to pop
	DefaultTransitionDuration  = 300 * time.Millisecond // Settle animation length
)

// Navigation bar defaults.
const (
	DefaultBarHeight        = 44.0 // Bar height excluding vertical padding
	DefaultBarPaddingX      = 16.0 // Horizontal inset of the leading and trailing slots
	DefaultBarPaddingY      = 10.0 // Vertical padding above and below the bar content
	DefaultBarButtonSize    = 25.0 // Back chevron and accessory minimum size
	DefaultBackLabelSpacing = 4.0  // Gap between the chevron and the back label
)

// Dev mode window size when WINDOW_WIDTH / WINDOW_HEIGHT are unset.
const (
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768
)

// Run loop timing.
const (
	FrameDelay = 16 * time.Millisecond // ~60fps when the renderer has no vsync
	IdleDelay  = 50 * time.Millisecond // Poll interval when nothing is animating
)
