package render

import (
	"image/color"

	"github.com/google/uuid"
)

// Content is an opaque handle to user supplied drawable content.
// Two handles are equal only if they came from the same NewContent call, so
// re-supplying the same handle on every render is not a change while a freshly
// built one is.
type Content struct {
	id       uuid.UUID
	drawable Drawable
}

// NewContent wraps d in a new handle with a fresh identity.
func NewContent(d Drawable) *Content {
	return &Content{id: uuid.New(), drawable: d}
}

// ID returns the identity token.
func (c *Content) ID() uuid.UUID {
	return c.id
}

// Equal compares identities. Two nil handles are equal.
func (c *Content) Equal(o *Content) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.id == o.id
}

// Draw paints the wrapped content. A nil handle draws nothing.
func (c *Content) Draw(canvas Canvas, bounds Rect) {
	if c == nil || c.drawable == nil {
		return
	}
	c.drawable.Draw(canvas, bounds)
}

// HandlePointer forwards ev to the wrapped drawable when it is a
// PointerHandler.
func (c *Content) HandlePointer(ev PointerEvent, bounds Rect) bool {
	if c == nil {
		return false
	}
	h, ok := c.drawable.(PointerHandler)
	return ok && h.HandlePointer(ev, bounds)
}

// Text is a single line of text drawn vertically centered in its bounds.
type Text struct {
	Value string
	Size  FontSize
	Color color.RGBA
	// Center draws the text horizontally centered instead of left aligned.
	Center bool
}

func (t Text) Draw(c Canvas, bounds Rect) {
	w, h := c.MeasureText(t.Value, t.Size)
	x := bounds.X
	if t.Center {
		x = bounds.X + (bounds.W-w)/2
	}
	c.DrawText(t.Value, x, bounds.Y+(bounds.H-h)/2, t.Size, t.Color)
}

// Fill paints its whole bounds with one color.
type Fill color.RGBA

func (f Fill) Draw(c Canvas, bounds Rect) {
	c.FillRect(bounds, color.RGBA(f))
}

// Button is text that calls OnTap when a press is released inside its bounds.
// Wrapped in a Content it works as a bar accessory.
type Button struct {
	Label Text
	OnTap func()
}

func (b Button) Draw(c Canvas, bounds Rect) {
	b.Label.Draw(c, bounds)
}

func (b Button) HandlePointer(ev PointerEvent, bounds Rect) bool {
	switch ev.Phase {
	case PointerDown:
		return bounds.Contains(ev.X, ev.Y)
	case PointerUp:
		if bounds.Contains(ev.X, ev.Y) && b.OnTap != nil {
			b.OnTap()
		}
	}
	return true
}
