// Package container composes the navigation stack, the chrome aggregator,
// the transition controller and the navigation bar into one navigation view.
//
// Every entry on the stack stays mounted: each render pass calls the screen
// function once per entry, root first, and lays the results out left to right
// in a strip that is shifted by the transition offset. Screens are unmounted,
// and their bar declarations cleared, only when they leave the stack.
package container

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/bar"
	"github.com/BrandonKowalski/navstack/pkg/navstack/chrome"
	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
	"github.com/BrandonKowalski/navstack/pkg/navstack/router"
	"github.com/BrandonKowalski/navstack/pkg/navstack/transition"
)

// ScreenFunc renders the content for one stack entry. It is called once per
// entry per render pass and may declare bar content through decl.
type ScreenFunc[R router.Route] func(route R, decl *chrome.Scope) render.Drawable

// Settings configures a Container. Zero values fall back to defaults.
type Settings struct {
	Transition transition.Config
	Theme      bar.Theme
	Metrics    bar.Metrics
	TitleSize  render.FontSize
	TitleColor color.RGBA
	BackLabel  string      // Text next to the back chevron, empty for none
	BackIcon   image.Image // Rasterized back chevron, nil for a text glyph
	Logger     *slog.Logger
	Clock      func() time.Time
}

// pointerState is the interaction started by the last PointerDown.
type pointerState struct {
	onBack         bool
	gesture        bool // the transition controller is tracking this pointer
	handler        render.PointerHandler
	bounds         render.Rect
	startX, startY float64
}

// Container is a stack navigation view. Like the rest of navstack it is
// driven from a single UI goroutine.
type Container[R router.Route] struct {
	nav    router.Navigator[R]
	owned  bool
	screen ScreenFunc[R]

	agg    *chrome.Aggregator
	trans  *transition.Controller
	logger *slog.Logger

	theme     bar.Theme
	metrics   bar.Metrics
	backLabel string
	backIcon  image.Image

	viewport render.Rect
	frame    bar.Frame
	mounted  []string
	pointer  pointerState

	// frontmost screen as of the last Render, nil once the stack changes
	front      render.Drawable
	frontFrame render.Rect

	dirty          bool
	lastGeneration uint64
	unsubscribe    func()
}

// New creates a container that owns a fresh stack rooted at root.
func New[R router.Route](root R, screen ScreenFunc[R], settings Settings) *Container[R] {
	c := newContainer(router.New(root), screen, settings)
	c.owned = true
	return c
}

// NewWithNavigator creates a container around a navigator the host owns.
func NewWithNavigator[R router.Route](nav router.Navigator[R], screen ScreenFunc[R], settings Settings) *Container[R] {
	return newContainer(nav, screen, settings)
}

func newContainer[R router.Route](nav router.Navigator[R], screen ScreenFunc[R], settings Settings) *Container[R] {
	if settings.Transition == (transition.Config{}) {
		settings.Transition = transition.DefaultConfig()
	}
	if settings.Metrics == (bar.Metrics{}) {
		settings.Metrics = bar.DefaultMetrics()
	}
	if settings.Logger == nil {
		settings.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if settings.TitleColor == (color.RGBA{}) {
		settings.TitleColor = color.RGBA{A: 255}
	}
	if settings.TitleSize == 0 {
		settings.TitleSize = render.FontMedium
	}

	opts := []transition.Option{transition.WithLogger(settings.Logger)}
	if settings.Clock != nil {
		opts = append(opts, transition.WithClock(settings.Clock))
	}

	c := &Container[R]{
		nav:       nav,
		screen:    screen,
		agg:       chrome.NewAggregator(chrome.WithTitleStyle(settings.TitleSize, settings.TitleColor)),
		trans:     transition.New(nav, settings.Transition, opts...),
		logger:    settings.Logger,
		theme:     settings.Theme,
		metrics:   settings.Metrics,
		backLabel: settings.BackLabel,
		backIcon:  settings.BackIcon,
		dirty:     true,
	}
	c.mounted = mountKeys(nav.Entries())
	c.unsubscribe = nav.Subscribe(c.stackChanged)
	return c
}

// Navigator returns the stack this container renders.
func (c *Container[R]) Navigator() router.Navigator[R] {
	return c.nav
}

// OwnsNavigator reports whether the container created its own stack.
func (c *Container[R]) OwnsNavigator() bool {
	return c.owned
}

// Chrome returns the aggregator screens declare into.
func (c *Container[R]) Chrome() *chrome.Aggregator {
	return c.agg
}

// Transition returns the gesture and animation controller.
func (c *Container[R]) Transition() *transition.Controller {
	return c.trans
}

// Frame returns the bar laid out by the last Render.
func (c *Container[R]) Frame() bar.Frame {
	return c.frame
}

// SetTransitionConfig swaps the gesture tuning, for config reloads.
func (c *Container[R]) SetTransitionConfig(cfg transition.Config) {
	c.trans.SetConfig(cfg)
}

// SetTheme swaps the bar defaults.
func (c *Container[R]) SetTheme(theme bar.Theme) {
	c.theme = theme
	c.dirty = true
}

// SetMetrics swaps the bar dimensions.
func (c *Container[R]) SetMetrics(m bar.Metrics) {
	c.metrics = m
	c.dirty = true
}

// SetBackLabel swaps the back control label.
func (c *Container[R]) SetBackLabel(label string) {
	c.backLabel = label
	c.dirty = true
}

// Back pops the stack, for hardware back buttons and keyboard shortcuts.
func (c *Container[R]) Back() {
	c.nav.Pop()
}

// NeedsRedraw reports whether the next Render would draw something new.
func (c *Container[R]) NeedsRedraw() bool {
	return c.dirty || c.trans.Animating() || c.trans.Phase() == transition.PhaseEngaged ||
		c.agg.Generation() != c.lastGeneration
}

// Invalidate forces the next NeedsRedraw to report true.
func (c *Container[R]) Invalidate() {
	c.dirty = true
}

// Close detaches the container from its navigator.
func (c *Container[R]) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// ContentRect is the area below the bar the screen strip is shown in.
func (c *Container[R]) ContentRect() render.Rect {
	barH := c.metrics.TotalHeight()
	return render.Rect{
		X: c.viewport.X,
		Y: c.viewport.Y + barH,
		W: c.viewport.W,
		H: max(0, c.viewport.H-barH),
	}
}

// Render runs one render pass into canvas over viewport.
func (c *Container[R]) Render(canvas render.Canvas, viewport render.Rect) {
	if viewport != c.viewport {
		c.viewport = viewport
		c.trans.SetWidth(viewport.W)
	}
	content := c.ContentRect()

	entries := c.nav.Entries()
	drawables := make([]render.Drawable, len(entries))

	c.agg.BeginPass()
	for i, route := range entries {
		drawables[i] = c.screen(route, c.agg.Scope(mountKey(i, route)))
	}
	c.agg.Commit()

	offset := c.trans.RenderOffset()
	c.front = nil
	canvas.PushClip(content)
	for i, d := range drawables {
		if d == nil {
			continue
		}
		frame := render.Rect{
			X: content.X + float64(i)*content.W + offset,
			Y: content.Y,
			W: content.W,
			H: content.H,
		}
		if i == len(drawables)-1 {
			c.front, c.frontFrame = d, frame
		}
		if !frame.Intersects(content) {
			continue
		}
		d.Draw(canvas, frame)
	}
	canvas.PopClip()

	c.frame = bar.Layout(bar.Input{
		Chrome:    c.agg.State(),
		CanGoBack: c.nav.CanGoBack(),
		Width:     viewport.W,
		Theme:     c.theme,
		Metrics:   c.metrics,
		BackLabel: c.backLabel,
		BackIcon:  c.backIcon,
	}, canvas).Translate(viewport.X, viewport.Y)
	c.frame.Paint(canvas)

	c.dirty = false
	c.lastGeneration = c.agg.Generation()
}

// HandlePointer routes a pointer event. Coordinates are in the same space as
// the Render viewport.
//
// A press in the bar goes to the back control or to the leading or trailing
// accessory under it. A press in the content area starts the back-swipe
// gesture and is also offered to the frontmost screen when its drawable is a
// render.PointerHandler. Once the swipe engages the screen gets PointerCancel
// and no further events.
func (c *Container[R]) HandlePointer(ev render.PointerEvent) {
	switch ev.Phase {
	case render.PointerDown:
		c.cancelPointer(ev)
		c.pointer = pointerState{startX: ev.X, startY: ev.Y}
		if c.frame.Contains(ev.X, ev.Y) {
			c.pressBar(ev)
			return
		}
		content := c.ContentRect()
		if !content.Contains(ev.X, ev.Y) {
			return
		}
		c.pointer.gesture = c.trans.Begin(ev.X-content.X, ev.Y-content.Y)
		if h, ok := c.front.(render.PointerHandler); ok {
			c.capture(h, c.frontFrame, ev)
		}

	case render.PointerMove:
		p := &c.pointer
		if p.gesture {
			c.trans.Move(ev.X-p.startX, ev.Y-p.startY)
			if p.handler != nil && c.trans.Phase() == transition.PhaseEngaged {
				p.handler.HandlePointer(render.PointerEvent{Phase: render.PointerCancel, X: ev.X, Y: ev.Y}, p.bounds)
				p.handler = nil
			}
		}
		if p.handler != nil {
			p.handler.HandlePointer(ev, p.bounds)
		}

	case render.PointerUp:
		p := c.pointer
		c.pointer = pointerState{}
		if p.onBack {
			if c.frame.HitBack(ev.X, ev.Y) {
				c.logger.Debug("back control activated")
				c.nav.Pop()
			}
			return
		}
		if p.gesture {
			out := c.trans.End()
			if out.Engaged {
				c.logger.Debug("back swipe released", "offset", out.Offset, "popped", out.Popped)
				return
			}
		}
		if p.handler != nil {
			p.handler.HandlePointer(ev, p.bounds)
		}

	case render.PointerCancel:
		c.cancelPointer(ev)
	}
}

func (c *Container[R]) pressBar(ev render.PointerEvent) {
	f := c.frame
	switch {
	case f.HitBack(ev.X, ev.Y):
		c.pointer.onBack = true
	case f.LeadingContent != nil && f.LeadingRect.Contains(ev.X, ev.Y):
		c.capture(f.LeadingContent, f.LeadingRect, ev)
	case f.Trailing != nil && f.TrailingRect.Contains(ev.X, ev.Y):
		c.capture(f.Trailing, f.TrailingRect, ev)
	}
}

// capture offers a press to h and keeps it as the target of the rest of the
// interaction when it accepts.
func (c *Container[R]) capture(h render.PointerHandler, bounds render.Rect, ev render.PointerEvent) {
	if h.HandlePointer(ev, bounds) {
		c.pointer.handler, c.pointer.bounds = h, bounds
	}
}

func (c *Container[R]) cancelPointer(ev render.PointerEvent) {
	p := c.pointer
	c.pointer = pointerState{}
	if p.gesture {
		c.trans.Cancel()
	}
	if p.handler != nil {
		p.handler.HandlePointer(render.PointerEvent{Phase: render.PointerCancel, X: ev.X, Y: ev.Y}, p.bounds)
	}
}

func (c *Container[R]) stackChanged(change router.Change[R]) {
	c.trans.StackChanged(len(change.Before))

	next := mountKeys(change.After)
	for _, key := range c.mounted {
		if !slices.Contains(next, key) {
			c.agg.Unmount(key)
		}
	}
	c.mounted = next
	c.front = nil
	c.dirty = true

	if len(change.After) == 0 {
		c.logger.Warn("navigator reported an empty stack", "action", change.Action.String())
		return
	}
	c.logger.Debug("navigation stack changed",
		"action", change.Action.String(),
		"depth", len(change.After),
		"current", change.After[len(change.After)-1].RouteID(),
	)
}

func mountKey[R router.Route](index int, route R) string {
	return fmt.Sprintf("%d:%s", index, route.RouteID())
}

func mountKeys[R router.Route](entries []R) []string {
	keys := make([]string, len(entries))
	for i, r := range entries {
		keys[i] = mountKey(i, r)
	}
	return keys
}
