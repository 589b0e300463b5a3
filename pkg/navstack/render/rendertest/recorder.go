// Package rendertest provides a render.Canvas that records draw calls.
package rendertest

import (
	"image"
	"image/color"
	"strings"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string // "fill", "text", "image", "clip", "unclip"
	Rect  render.Rect
	Text  string
	Key   string
	Size  render.FontSize
	Color color.RGBA
}

// Recorder is a render.Canvas for tests. Text is measured as 8 units per rune
// and 16 units tall.
type Recorder struct {
	Ops []Op
}

var _ render.Canvas = (*Recorder)(nil)

func (r *Recorder) FillRect(rect render.Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *Recorder) DrawText(text string, x, y float64, size render.FontSize, c color.RGBA) {
	w, h := r.MeasureText(text, size)
	r.Ops = append(r.Ops, Op{Kind: "text", Text: text, Rect: render.Rect{X: x, Y: y, W: w, H: h}, Size: size, Color: c})
}

func (r *Recorder) MeasureText(text string, _ render.FontSize) (float64, float64) {
	return float64(len([]rune(text)) * 8), 16
}

func (r *Recorder) DrawImage(key string, _ image.Image, rect render.Rect, tint color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "image", Key: key, Rect: rect, Color: tint})
}

func (r *Recorder) PushClip(rect render.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "clip", Rect: rect})
}

func (r *Recorder) PopClip() {
	r.Ops = append(r.Ops, Op{Kind: "unclip"})
}

// Texts returns every drawn string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the first text op whose text contains s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == "text" && strings.Contains(op.Text, s) {
			return op, true
		}
	}
	return Op{}, false
}

// Images returns every image op.
func (r *Recorder) Images() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == "image" {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
