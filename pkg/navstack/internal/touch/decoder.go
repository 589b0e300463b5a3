// Package touch reads a Linux touchscreen through evdev and turns its raw
// event stream into pointer events for the navigation view. It is used on
// handhelds where SDL is built without touch support.
package touch

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Range is the raw value range of one absolute axis.
type Range struct {
	Min, Max int32
}

func (r Range) scale(v int32, size float64) float64 {
	if r.Max <= r.Min {
		return float64(v)
	}
	return float64(v-r.Min) * size / float64(r.Max-r.Min)
}

// Decoder accumulates evdev events between SYN_REPORTs and emits at most one
// pointer event per report. Only the first contact (slot 0) is followed.
type Decoder struct {
	X, Y Range

	width, height float64

	slot         int32
	rawX, rawY   int32
	down         bool
	wasDown      bool
	moved        bool
	lastX, lastY float64
}

// NewDecoder creates a decoder for the given axis ranges.
func NewDecoder(x, y Range) *Decoder {
	return &Decoder{X: x, Y: y}
}

// SetSurface sets the size raw coordinates are scaled to.
func (d *Decoder) SetSurface(width, height float64) {
	d.width, d.height = width, height
}

// Feed consumes one raw event.
func (d *Decoder) Feed(ev *evdev.InputEvent) (render.PointerEvent, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		d.abs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.down = ev.Value != 0
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.report()
		}
	}
	return render.PointerEvent{}, false
}

func (d *Decoder) abs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
	case evdev.ABS_MT_TRACKING_ID:
		if d.slot == 0 {
			d.down = value >= 0
		}
	case evdev.ABS_MT_POSITION_X:
		if d.slot == 0 {
			d.rawX, d.moved = value, true
		}
	case evdev.ABS_MT_POSITION_Y:
		if d.slot == 0 {
			d.rawY, d.moved = value, true
		}
	case evdev.ABS_X:
		d.rawX, d.moved = value, true
	case evdev.ABS_Y:
		d.rawY, d.moved = value, true
	}
}

func (d *Decoder) report() (render.PointerEvent, bool) {
	x := d.X.scale(d.rawX, d.width)
	y := d.Y.scale(d.rawY, d.height)
	moved := d.moved
	d.moved = false

	switch {
	case d.down && !d.wasDown:
		d.wasDown = true
		d.lastX, d.lastY = x, y
		return render.PointerEvent{Phase: render.PointerDown, X: x, Y: y}, true
	case d.down && moved && (x != d.lastX || y != d.lastY):
		d.lastX, d.lastY = x, y
		return render.PointerEvent{Phase: render.PointerMove, X: x, Y: y}, true
	case !d.down && d.wasDown:
		d.wasDown = false
		// the lift report usually carries no coordinates
		return render.PointerEvent{Phase: render.PointerUp, X: d.lastX, Y: d.lastY}, true
	}
	return render.PointerEvent{}, false
}

// Reset forgets any contact in progress, for example after a device error.
func (d *Decoder) Reset() (render.PointerEvent, bool) {
	wasDown := d.wasDown
	d.slot, d.down, d.wasDown, d.moved = 0, false, false, false
	if wasDown {
		return render.PointerEvent{Phase: render.PointerCancel, X: d.lastX, Y: d.lastY}, true
	}
	return render.PointerEvent{}, false
}
