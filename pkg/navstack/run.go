package navstack

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/container"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/locale"
	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
)

// EventHandler sees every SDL event before navstack translates it. Returning
// true consumes the event. Hosts use it for keys and buttons the navigation
// view does not handle, and may navigate from it.
type EventHandler func(ev sdl.Event) bool

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	onEvent EventHandler
}

// WithEventHandler installs h ahead of the navigation view's own handling.
func WithEventHandler(h EventHandler) RunOption {
	return func(rc *runConfig) {
		rc.onEvent = h
	}
}

// Run drives c until the window is closed or Stop is called. It must be
// called from the goroutine that called Init; everything that touches the
// container, including navigation from screen code, happens on it.
func Run[R router.Route](c *container.Container[R], opts ...RunOption) error {
	window := internal.GetWindow()
	if window == nil {
		return ErrNoWindow
	}
	if !running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer running.Store(false)

	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}

	loop := &eventLoop[R]{
		c:       c,
		onEvent: rc.onEvent,
		logger:  internal.GetInternalLogger(),
	}
	loop.resize = func() {
		loop.viewport = window.Viewport()
		loop.scaleX, loop.scaleY = window.PointerScale()
		if rt.touch != nil {
			rt.touch.SetSurface(loop.viewport.W, loop.viewport.H)
		}
	}
	loop.resize()
	c.Invalidate()

	for running.Load() {
		if !c.NeedsRedraw() {
			// nothing on screen is changing, sleep until input arrives
			if ev := sdl.WaitEventTimeout(int(constants.IdleDelay.Milliseconds())); ev != nil {
				loop.handle(ev)
			}
		}
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			loop.handle(ev)
		}
		drainTouch(c)
		drainReloads(c)

		if running.Load() && c.NeedsRedraw() {
			window.Canvas.Clear(internal.GetTheme().BackgroundColor)
			c.Render(window.Canvas, loop.viewport)
			window.Present()
		}
	}
	return nil
}

// Stop makes Run return after the current frame. Safe from any goroutine.
func Stop() {
	running.Store(false)
}

type eventLoop[R router.Route] struct {
	c       *container.Container[R]
	onEvent EventHandler
	logger  *slog.Logger
	input   internal.InputTranslator

	viewport       render.Rect
	scaleX, scaleY float64
	resize         func()
}

func (l *eventLoop[R]) handle(ev sdl.Event) {
	if l.onEvent != nil && l.onEvent(ev) {
		return
	}
	in := l.input.Translate(ev, l.viewport, l.scaleX, l.scaleY)
	switch in.Kind {
	case internal.InputQuit:
		l.logger.Debug("Quit requested")
		running.Store(false)
	case internal.InputResize:
		l.resize()
		l.c.Invalidate()
	case internal.InputPointer:
		l.c.HandlePointer(in.Pointer)
	case internal.InputBack:
		l.c.Back()
	}
}

func drainTouch[R router.Route](c *container.Container[R]) {
	if rt.touch == nil {
		return
	}
	events := rt.touch.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				internal.GetInternalLogger().Warn("Touch device closed")
				rt.touch = nil
				return
			}
			c.HandlePointer(ev)
		default:
			return
		}
	}
}

func drainReloads[R router.Route](c *container.Container[R]) {
	select {
	case cfg, ok := <-rt.reloads:
		if !ok {
			rt.reloads = nil
			return
		}
		applyConfig(c, cfg)
	default:
	}
}

func applyConfig[R router.Route](c *container.Container[R], cfg config.Config) {
	logger := internal.GetInternalLogger()
	prev := rt.cfg
	rt.cfg = cfg

	internal.SetRawLogLevel(cfg.LogLevel)

	theme := themeFor(rt.baseTheme, cfg)
	internal.SetTheme(theme)
	c.SetTheme(theme.BarTheme())
	c.SetTransitionConfig(cfg.Transition())
	c.SetMetrics(cfg.Metrics())

	if rt.locale == nil || languageFor(rt.options, cfg) != languageFor(rt.options, prev) {
		loc, err := locale.New(languageFor(rt.options, cfg))
		if err != nil {
			logger.Error("Failed to reload translations", "error", err)
		} else {
			rt.locale = loc
		}
	}
	c.SetBackLabel(backLabel())

	logger.Info("Configuration reloaded",
		"edge_width", cfg.Gesture.EdgeWidth,
		"language", languageFor(rt.options, cfg),
	)
}
