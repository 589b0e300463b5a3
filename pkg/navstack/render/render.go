// Package render defines the drawing surface navstack paints onto and the
// opaque content handle screens hand to the navigation bar.
//
// Nothing in this package depends on SDL. The SDL backed Canvas lives in the
// internal package; tests use Recorder.
package render

import (
	"image"
	"image/color"
)

// Rect is a rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// FontSize selects one of the theme fonts.
type FontSize int

const (
	FontSmall FontSize = iota
	FontMedium
	FontLarge
)

// Canvas is the minimal drawing API the container and bar need.
type Canvas interface {
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c color.RGBA)
	// DrawText draws a single line of text with its top left corner at x, y.
	DrawText(text string, x, y float64, size FontSize, c color.RGBA)
	// MeasureText returns the width and height DrawText would use.
	MeasureText(text string, size FontSize) (w, h float64)
	// DrawImage draws img scaled into r. A non-zero tint replaces the image colors
	// while keeping its alpha.
	DrawImage(key string, img image.Image, r Rect, tint color.RGBA)
	// PushClip restricts drawing to r until the matching PopClip.
	PushClip(r Rect)
	PopClip()
}

// Drawable is anything that can paint itself into a rectangle.
type Drawable interface {
	Draw(c Canvas, bounds Rect)
}

// DrawFunc adapts a plain function to Drawable.
type DrawFunc func(c Canvas, bounds Rect)

func (f DrawFunc) Draw(c Canvas, bounds Rect) { f(c, bounds) }
