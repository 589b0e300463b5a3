package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// InputKind classifies a translated SDL event.
type InputKind int

const (
	InputNone InputKind = iota
	InputPointer
	InputBack
	InputResize
	InputQuit
)

// Input is an SDL event reduced to what the navigation view consumes.
type Input struct {
	Kind    InputKind
	Pointer render.PointerEvent
}

const (
	leftButtonMask uint32 = 1 << (sdl.BUTTON_LEFT - 1)
	touchMouseID          = ^uint32(0) // SDL_TOUCH_MOUSEID
)

// InputTranslator turns SDL events into navigation input. It follows one
// finger at a time; other fingers are ignored until it lifts.
type InputTranslator struct {
	fingerID sdl.FingerID
	tracking bool
}

// Translate converts ev. Mouse coordinates are in window units and are
// multiplied by scaleX, scaleY; finger coordinates are normalized and are
// multiplied by the viewport size.
func (t *InputTranslator) Translate(ev sdl.Event, viewport render.Rect, scaleX, scaleY float64) Input {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Input{Kind: InputQuit}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return Input{Kind: InputResize}
		}

	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != uint8(sdl.BUTTON_LEFT) {
			return Input{}
		}
		phase := render.PointerDown
		if e.Type == sdl.MOUSEBUTTONUP {
			phase = render.PointerUp
		}
		return pointer(phase, float64(e.X)*scaleX, float64(e.Y)*scaleY)

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID || e.State&leftButtonMask == 0 {
			return Input{}
		}
		return pointer(render.PointerMove, float64(e.X)*scaleX, float64(e.Y)*scaleY)

	case *sdl.TouchFingerEvent:
		return t.translateFinger(e, viewport)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Input{}
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
			return Input{Kind: InputBack}
		}

	case *sdl.ControllerButtonEvent:
		if e.Type == sdl.CONTROLLERBUTTONDOWN && e.Button == uint8(sdl.CONTROLLER_BUTTON_B) {
			return Input{Kind: InputBack}
		}
	}
	return Input{}
}

func (t *InputTranslator) translateFinger(e *sdl.TouchFingerEvent, viewport render.Rect) Input {
	x := viewport.X + float64(e.X)*viewport.W
	y := viewport.Y + float64(e.Y)*viewport.H

	switch e.Type {
	case sdl.FINGERDOWN:
		if t.tracking {
			return Input{}
		}
		t.fingerID, t.tracking = e.FingerID, true
		return pointer(render.PointerDown, x, y)
	case sdl.FINGERMOTION:
		if !t.tracking || e.FingerID != t.fingerID {
			return Input{}
		}
		return pointer(render.PointerMove, x, y)
	case sdl.FINGERUP:
		if !t.tracking || e.FingerID != t.fingerID {
			return Input{}
		}
		t.tracking = false
		return pointer(render.PointerUp, x, y)
	}
	return Input{}
}

func pointer(phase render.PointerPhase, x, y float64) Input {
	return Input{Kind: InputPointer, Pointer: render.PointerEvent{Phase: phase, X: x, Y: y}}
}
