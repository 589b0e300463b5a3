// Package navstack provides stack navigation for SDL applications on
// embedded Linux devices, particularly handheld consoles running custom
// firmware like Cannoli, and on the desktop in dev mode.
//
// A navigation view shows the top screen of a route stack under a bar with
// a back control. Screens declare the bar's title, accessories, background
// and back tint; pushes and pops slide horizontally, and an edge swipe pops
// interactively. The building blocks live in subpackages (router, chrome,
// transition, bar, container) and run without SDL; this package binds them
// to a window.
//
// # Basic Usage
//
//	if err := navstack.Init(navstack.Options{WindowTitle: "Library"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer navstack.Close()
//
//	view := navstack.NewContainer(Route{Kind: "home"}, func(r Route, decl *chrome.Scope) render.Drawable {
//	    decl.TitleText(r.Title())
//	    return screenFor(r)
//	})
//	defer view.Close()
//
//	if err := navstack.Run(view); err != nil {
//	    log.Fatal(err)
//	}
package navstack

import (
	"cmp"
	"context"
	"image"
	"log/slog"
	"os"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/container"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/icons"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/locale"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/touch"
	"github.com/BrandonKowalski/navstack/pkg/navstack/platform/cannoli"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

// Options configures navstack initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	ConfigPath           string                 // TOML config file; NAVSTACK_CONFIG is used when empty
	WatchConfig          bool                   // Reload the config file when it changes
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	Language             string                 // Overrides the config file language and LANG
	TouchDevice          string                 // evdev touchscreen; overrides the config file and TOUCH_DEVICE
	PrimaryThemeColorHex uint32                 // Custom accent color, 0xRRGGBB
	FontPath             string                 // TTF used for all text; system fonts are tried when empty
	IsCannoli            bool                   // Use Cannoli CFW theming and font
}

type runtimeState struct {
	cfg       config.Config
	options   Options
	baseTheme internal.Theme // theme before config file overrides
	locale    *locale.Localizer
	backIcon  image.Image
	touch     *touch.Reader
	reloads   <-chan config.Config
	stopWatch context.CancelFunc
}

var (
	rt      runtimeState
	running atomic.Bool
)

// Init loads configuration, sets up theming and localization, and opens the
// SDL window. Must be called before Run.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	logger := internal.GetInternalLogger()

	configPath := cmp.Or(options.ConfigPath, os.Getenv(constants.ConfigPathEnvVar))
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	internal.SetRawLogLevel(cfg.LogLevel)

	base := internal.DefaultTheme()
	if options.IsCannoli {
		base = cannoli.InitCannoliTheme(cannoli.FontPath)
	}
	if options.FontPath != "" {
		base.FontPath = options.FontPath
	}
	if options.PrimaryThemeColorHex != 0 {
		base.AccentColor = config.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(themeFor(base, cfg))

	loc, err := locale.New(languageFor(options, cfg))
	if err != nil {
		return err
	}

	// rasterized at twice the button size so it stays sharp on high-DPI renderers
	backIcon, err := icons.Get(constants.IconChevronLeft, int(2*constants.DefaultBarButtonSize))
	if err != nil {
		logger.Warn("Back icon unavailable; using a text chevron", "error", err)
	}

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return err
	}

	rt = runtimeState{
		cfg:       cfg,
		options:   options,
		baseTheme: base,
		locale:    loc,
	}
	if backIcon != nil {
		rt.backIcon = backIcon
	}

	if device := cmp.Or(options.TouchDevice, cfg.TouchDevice, os.Getenv(constants.TouchDeviceEnvVar)); device != "" {
		rt.touch = openTouch(device, logger)
	}

	if options.WatchConfig && configPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		reloads, err := config.Watch(ctx, configPath, logger)
		if err != nil {
			cancel()
			logger.Warn("Config hot reload disabled", "path", configPath, "error", err)
		} else {
			rt.reloads, rt.stopWatch = reloads, cancel
		}
	}

	logger.Debug("navstack initialized",
		"config", configPath,
		"language", rt.locale.Language().String(),
		"touch_device", rt.touch != nil,
	)
	return nil
}

func openTouch(device string, logger *slog.Logger) *touch.Reader {
	reader, err := touch.Open(device, logger)
	if err != nil {
		logger.Warn("Touch device unavailable; using SDL touch events", "device", device, "error", err)
		return nil
	}
	vp := internal.GetWindow().Viewport()
	reader.SetSurface(vp.W, vp.H)
	reader.Start()
	return reader
}

func themeFor(base internal.Theme, cfg config.Config) internal.Theme {
	// Load and the watcher only hand out validated configs
	colors, _ := cfg.Theme.Colors()
	return base.WithColors(colors)
}

func languageFor(options Options, cfg config.Config) string {
	return cmp.Or(options.Language, cfg.Language, os.Getenv(constants.LanguageEnvVar))
}

func backLabel() string {
	if rt.locale == nil || !rt.cfg.Bar.ShowBackLabel {
		return ""
	}
	return rt.locale.BackLabel()
}

// Settings returns container settings built from the active configuration,
// theme and language.
func Settings() container.Settings {
	theme := internal.GetTheme()
	s := container.Settings{
		Theme:      theme.BarTheme(),
		TitleColor: theme.TextColor,
		BackLabel:  backLabel(),
		Logger:     internal.GetInternalLogger(),
	}
	if rt.cfg != (config.Config{}) {
		s.Transition = rt.cfg.Transition()
		s.Metrics = rt.cfg.Metrics()
	}
	if rt.backIcon != nil {
		s.BackIcon = rt.backIcon
	}
	return s
}

// NewContainer creates a navigation view rooted at root with Settings.
func NewContainer[R router.Route](root R, screen container.ScreenFunc[R]) *container.Container[R] {
	return container.New(root, screen, Settings())
}

// Close releases SDL, fonts, the touch device, the config watcher and the
// log file. Must be called before program exit to prevent resource leaks.
func Close() {
	if rt.stopWatch != nil {
		rt.stopWatch()
	}
	if rt.touch != nil {
		rt.touch.Close()
	}
	rt = runtimeState{}
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
