// Package transition drives the horizontal slide between stacked screens.
//
// The Controller owns two things: the edge back-swipe gesture state machine
// and the settle animation that moves the screen strip to its resting
// position after a push, a pop or a released swipe.
//
// Gesture events arrive as Begin, any number of Move, then End (or Cancel).
// A gesture only engages when it starts inside the leading edge band and moves
// more horizontally than vertically. Everything else is ignored.
package transition

import (
	"io"
	"log/slog"
	"math"
	"time"
)

// Phase is the gesture state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseEngaged
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseEngaged:
		return "engaged"
	default:
		return "unknown"
	}
}

// Stack is what the controller needs from the navigation stack.
type Stack interface {
	Len() int
	CanGoBack() bool
	Pop()
}

// Outcome reports how a gesture resolved.
type Outcome struct {
	Engaged bool    // The gesture was a confirmed back-swipe
	Popped  bool    // The swipe crossed the threshold and popped the stack
	Offset  float64 // Drag offset at release
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger used for gesture outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller is single threaded: call it from the UI loop only.
type Controller struct {
	cfg    Config
	stack  Stack
	now    func() time.Time
	logger *slog.Logger

	width float64

	phase          Phase
	startX, startY float64
	drag           float64

	anim settle
}

// New creates an idle controller for stack.
func New(stack Stack, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		stack:  stack,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig swaps the tuning. A gesture in flight keeps going under the new values.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// SetWidth sets the container width. Any running animation snaps to its end
// because its endpoints were computed for the old width.
func (c *Controller) SetWidth(width float64) {
	if width < 0 {
		width = 0
	}
	if width == c.width {
		return
	}
	c.width = width
	c.anim.active = false
	c.drag = clamp(c.drag, 0, c.width)
}

// Width returns the container width.
func (c *Controller) Width() float64 {
	return c.width
}

// Phase returns the gesture state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// DragOffset returns the active drag offset, 0 unless engaged.
func (c *Controller) DragOffset() float64 {
	return c.drag
}

// Begin starts tracking a pointer that went down at x, y, relative to the
// content area. It returns false and does nothing when the stack cannot go
// back or while a settle animation is still moving the strip.
func (c *Controller) Begin(x, y float64) bool {
	if !c.stack.CanGoBack() || c.Animating() {
		return false
	}
	if c.phase != PhaseIdle {
		c.resolve(false)
	}
	c.phase = PhaseTracking
	c.startX, c.startY = x, y
	c.drag = 0
	return true
}

// Move reports the pointer translation since Begin.
func (c *Controller) Move(dx, dy float64) {
	switch c.phase {
	case PhaseTracking:
		if !c.qualifies(dx, dy) {
			return
		}
		c.phase = PhaseEngaged
		c.logger.Debug("back swipe engaged", "start_x", c.startX, "dx", dx)
		c.drag = clamp(dx, 0, c.width)
	case PhaseEngaged:
		c.drag = clamp(dx, 0, c.width)
	}
}

// End resolves the gesture. An engaged swipe past the completion threshold
// pops the stack; every exit from an engaged swipe settles the strip.
func (c *Controller) End() Outcome {
	return c.resolve(true)
}

// Cancel resolves the gesture without any stack effect.
func (c *Controller) Cancel() {
	c.resolve(false)
}

func (c *Controller) resolve(allowPop bool) Outcome {
	out := Outcome{Engaged: c.phase == PhaseEngaged, Offset: c.drag}
	if c.phase != PhaseEngaged {
		c.reset()
		return out
	}

	out.Popped = allowPop && c.drag > c.width*c.cfg.CompletionThreshold
	released := c.RenderOffset()
	c.reset()
	c.startSettle(released)

	if out.Popped {
		c.logger.Debug("back swipe completed", "offset", out.Offset, "width", c.width)
		// the stack observer calls StackChanged, which continues the settle
		// from the released position toward the new resting offset
		c.stack.Pop()
	}
	return out
}

// StackChanged must be called after every stack mutation with the length the
// stack had before it. It drops any gesture in flight and animates from the
// offset that was on screen to the new resting one.
func (c *Controller) StackChanged(prevLen int) {
	from := c.offsetFor(prevLen)
	c.reset()
	c.startSettle(from)
}

// RenderOffset is the horizontal translation applied to the whole strip.
// At rest it is -(len-1)*width, which puts the current screen at x = 0.
func (c *Controller) RenderOffset() float64 {
	return c.offsetFor(c.stack.Len())
}

func (c *Controller) offsetFor(length int) float64 {
	resting := -float64(length-1) * c.width
	if c.phase == PhaseEngaged {
		return resting + c.drag
	}
	if v, running := c.anim.valueAt(c.now()); running {
		return v
	}
	return resting
}

// Animating reports whether a settle animation is still running.
func (c *Controller) Animating() bool {
	_, running := c.anim.valueAt(c.now())
	return running
}

func (c *Controller) qualifies(dx, dy float64) bool {
	return c.startX >= 0 && c.startX <= c.cfg.EdgeWidth && math.Abs(dx) > math.Abs(dy)
}

func (c *Controller) restingOffset() float64 {
	return -float64(c.stack.Len()-1) * c.width
}

func (c *Controller) startSettle(from float64) {
	to := c.restingOffset()
	if from == to {
		c.anim.active = false
		return
	}
	c.anim = settle{
		from:     from,
		to:       to,
		start:    c.now(),
		duration: c.cfg.Duration,
		active:   true,
	}
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.drag = 0
	c.startX, c.startY = 0, 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
