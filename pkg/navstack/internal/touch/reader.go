package touch

import (
	"fmt"
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Reader decodes one evdev touchscreen on its own goroutine and delivers
// pointer events on a channel the UI loop drains.
type Reader struct {
	dev     *evdev.InputDevice
	decoder *Decoder
	logger  *slog.Logger

	width   atomic.Float64
	height  atomic.Float64
	running atomic.Bool

	events chan render.PointerEvent
	done   chan struct{}
}

// Open opens the device at path. Call Start to begin reading.
func Open(path string, logger *slog.Logger) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("touch: open %s: %w", path, err)
	}

	x, y, err := axisRanges(dev)
	if err != nil {
		dev.Close()
		return nil, fmt.Errorf("touch: %s: %w", path, err)
	}

	name, _ := dev.Name()
	logger.Debug("touch device opened", "path", path, "name", name,
		"x_min", x.Min, "x_max", x.Max, "y_min", y.Min, "y_max", y.Max)

	return &Reader{
		dev:     dev,
		decoder: NewDecoder(x, y),
		logger:  logger,
		events:  make(chan render.PointerEvent, 64),
		done:    make(chan struct{}),
	}, nil
}

// axisRanges prefers the multitouch axes and falls back to the single touch ones.
func axisRanges(dev *evdev.InputDevice) (Range, Range, error) {
	infos, err := dev.AbsInfos()
	if err != nil {
		return Range{}, Range{}, err
	}
	pick := func(mt, st evdev.EvCode) (Range, bool) {
		if info, ok := infos[mt]; ok {
			return Range{Min: info.Minimum, Max: info.Maximum}, true
		}
		if info, ok := infos[st]; ok {
			return Range{Min: info.Minimum, Max: info.Maximum}, true
		}
		return Range{}, false
	}
	x, okX := pick(evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	y, okY := pick(evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	if !okX || !okY {
		return Range{}, Range{}, fmt.Errorf("not an absolute pointing device")
	}
	return x, y, nil
}

// SetSurface sets the window size raw coordinates are scaled to. Safe to call
// from any goroutine.
func (r *Reader) SetSurface(width, height float64) {
	r.width.Store(width)
	r.height.Store(height)
}

// Events delivers decoded pointer events. It is closed when the reader stops.
func (r *Reader) Events() <-chan render.PointerEvent {
	return r.events
}

// Start begins reading. Calling it twice is a no-op.
func (r *Reader) Start() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	go r.loop()
}

func (r *Reader) loop() {
	defer close(r.events)

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.running.Load() {
				r.logger.Error("touch device read failed", "error", err)
			}
			if cancel, ok := r.decoder.Reset(); ok {
				r.send(cancel)
			}
			return
		}

		r.decoder.SetSurface(r.width.Load(), r.height.Load())
		if pe, ok := r.decoder.Feed(ev); ok {
			if !r.send(pe) {
				return
			}
		}
	}
}

func (r *Reader) send(ev render.PointerEvent) bool {
	select {
	case r.events <- ev:
		return true
	case <-r.done:
		return false
	}
}

// Close stops the reader and releases the device.
func (r *Reader) Close() error {
	if r.running.Swap(false) {
		close(r.done)
	} else {
		// never started: nothing will close events
		select {
		case <-r.done:
		default:
			close(r.done)
			close(r.events)
		}
	}
	return r.dev.Close()
}
