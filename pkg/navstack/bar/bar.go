// Package bar lays out and paints the navigation bar.
//
// Layout is a pure function of the aggregated chrome, whether the stack can go
// back and the bar width. The resulting Frame knows how to paint itself and
// where its back control is, so the container can route taps to Pop.
package bar

import (
	"image"
	"image/color"
	"math"

	"github.com/BrandonKowalski/navstack/pkg/navstack/chrome"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Theme supplies the colors used when a channel has no declaration.
type Theme struct {
	Surface color.RGBA // Default bar background
	Accent  color.RGBA // Default back control tint
}

// Metrics sizes the bar.
type Metrics struct {
	Height       float64 // Content height, excluding vertical padding
	PaddingX     float64
	PaddingY     float64
	ButtonSize   float64
	LabelSpacing float64
}

// DefaultMetrics returns the stock bar dimensions.
func DefaultMetrics() Metrics {
	return Metrics{
		Height:       constants.DefaultBarHeight,
		PaddingX:     constants.DefaultBarPaddingX,
		PaddingY:     constants.DefaultBarPaddingY,
		ButtonSize:   constants.DefaultBarButtonSize,
		LabelSpacing: constants.DefaultBackLabelSpacing,
	}
}

// TotalHeight is the bar height including padding.
func (m Metrics) TotalHeight() float64 {
	return m.Height + 2*m.PaddingY
}

// Input is everything Layout depends on.
type Input struct {
	Chrome    chrome.State
	CanGoBack bool
	Width     float64
	Theme     Theme
	Metrics   Metrics

	// BackLabel is drawn next to the chevron when non-empty.
	BackLabel string
	// BackIcon is the rasterized chevron. When nil a text chevron is drawn.
	BackIcon image.Image
}

// SlotKind says what occupies the leading slot.
type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotBack
	SlotContent
)

func (k SlotKind) String() string {
	switch k {
	case SlotEmpty:
		return "empty"
	case SlotBack:
		return "back"
	case SlotContent:
		return "content"
	default:
		return "unknown"
	}
}

// Measurer measures text for layout. render.Canvas satisfies it.
type Measurer interface {
	MeasureText(text string, size render.FontSize) (w, h float64)
}

// Frame is a laid out bar.
type Frame struct {
	Bounds render.Rect

	Background      *render.Content
	BackgroundColor color.RGBA

	Leading        SlotKind
	LeadingContent *render.Content
	LeadingRect    render.Rect

	BackTint      color.RGBA
	BackIconRect  render.Rect
	BackLabel     string
	BackLabelRect render.Rect

	Title     *render.Content
	TitleRect render.Rect

	Trailing     *render.Content
	TrailingRect render.Rect

	backIcon image.Image
}

// Layout computes the bar frame. The bar occupies the top of the window at
// y = 0 and spans width.
func Layout(in Input, m Measurer) Frame {
	metrics := in.Metrics
	f := Frame{
		Bounds:          render.Rect{W: in.Width, H: metrics.TotalHeight()},
		Background:      in.Chrome.Background,
		BackgroundColor: in.Theme.Surface,
		BackTint:        in.Theme.Accent,
		Title:           in.Chrome.Title,
		Trailing:        in.Chrome.Trailing,
		backIcon:        in.BackIcon,
	}
	if in.Chrome.BackTint != nil {
		f.BackTint = *in.Chrome.BackTint
	}

	top := metrics.PaddingY
	slotW := accessoryWidth(in.Width, metrics)

	switch {
	case in.CanGoBack:
		f.Leading = SlotBack
		size := metrics.ButtonSize
		f.BackIconRect = render.Rect{X: metrics.PaddingX, Y: top + (metrics.Height-size)/2, W: size, H: size}
		w := size
		if in.BackLabel != "" {
			lw, lh := m.MeasureText(in.BackLabel, render.FontMedium)
			f.BackLabel = in.BackLabel
			f.BackLabelRect = render.Rect{
				X: f.BackIconRect.X + size + metrics.LabelSpacing,
				Y: top + (metrics.Height-lh)/2,
				W: lw,
				H: lh,
			}
			w += metrics.LabelSpacing + lw
		}
		f.LeadingRect = render.Rect{X: metrics.PaddingX, Y: top, W: math.Max(w, metrics.ButtonSize), H: metrics.Height}
	case in.Chrome.Leading != nil:
		f.Leading = SlotContent
		f.LeadingContent = in.Chrome.Leading
		f.LeadingRect = render.Rect{X: metrics.PaddingX, Y: top, W: slotW, H: metrics.Height}
	default:
		f.Leading = SlotEmpty
		f.LeadingRect = render.Rect{X: metrics.PaddingX, Y: top, W: 0, H: metrics.Height}
	}

	if f.Trailing != nil {
		f.TrailingRect = render.Rect{X: in.Width - metrics.PaddingX - slotW, Y: top, W: slotW, H: metrics.Height}
	}

	// the title is centered on the bar, between equal side slots
	side := metrics.PaddingX + math.Max(slotW, f.LeadingRect.W)
	f.TitleRect = render.Rect{X: side, Y: top, W: math.Max(0, in.Width-2*side), H: metrics.Height}

	return f
}

func accessoryWidth(width float64, m Metrics) float64 {
	return math.Max(m.ButtonSize, width/4-m.PaddingX)
}

// HitBack reports whether x, y lands on the back control.
func (f Frame) HitBack(x, y float64) bool {
	if f.Leading != SlotBack {
		return false
	}
	// the whole bar height is tappable, not just the glyph
	hit := render.Rect{X: f.Bounds.X, Y: f.Bounds.Y, W: f.LeadingRect.X + f.LeadingRect.W - f.Bounds.X, H: f.Bounds.H}
	return hit.Contains(x, y)
}

// Translate moves the whole frame by dx, dy.
func (f Frame) Translate(dx, dy float64) Frame {
	f.Bounds = f.Bounds.Translate(dx, dy)
	f.LeadingRect = f.LeadingRect.Translate(dx, dy)
	f.BackIconRect = f.BackIconRect.Translate(dx, dy)
	f.BackLabelRect = f.BackLabelRect.Translate(dx, dy)
	f.TitleRect = f.TitleRect.Translate(dx, dy)
	f.TrailingRect = f.TrailingRect.Translate(dx, dy)
	return f
}

// Contains reports whether x, y is inside the bar.
func (f Frame) Contains(x, y float64) bool {
	return f.Bounds.Contains(x, y)
}

// Paint draws the frame.
func (f Frame) Paint(c render.Canvas) {
	c.PushClip(f.Bounds)
	defer c.PopClip()

	if f.Background != nil {
		f.Background.Draw(c, f.Bounds)
	} else {
		c.FillRect(f.Bounds, f.BackgroundColor)
	}

	switch f.Leading {
	case SlotBack:
		f.paintBack(c)
	case SlotContent:
		f.LeadingContent.Draw(c, f.LeadingRect)
	}

	if f.Title != nil {
		f.Title.Draw(c, f.TitleRect)
	}
	if f.Trailing != nil {
		f.Trailing.Draw(c, f.TrailingRect)
	}
}

func (f Frame) paintBack(c render.Canvas) {
	if f.backIcon != nil {
		c.DrawImage(constants.IconChevronLeft, f.backIcon, f.BackIconRect, f.BackTint)
	} else {
		render.Text{Value: "<", Size: render.FontLarge, Color: f.BackTint, Center: true}.Draw(c, f.BackIconRect)
	}
	if f.BackLabel != "" {
		c.DrawText(f.BackLabel, f.BackLabelRect.X, f.BackLabelRect.Y, render.FontMedium, f.BackTint)
	}
}
