package internal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

var vp = render.Rect{W: 400, H: 300}

func TestTranslate_Fingers(t *testing.T) {
	var tr InputTranslator

	down := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 1, X: 0.01, Y: 0.5}, vp, 1, 1)
	assert.Equal(t, InputPointer, down.Kind)
	assert.Equal(t, render.PointerDown, down.Pointer.Phase)
	assert.InDelta(t, 4, down.Pointer.X, 0.001)
	assert.InDelta(t, 150, down.Pointer.Y, 0.001)

	// a second finger is ignored while the first is down
	assert.Equal(t, InputNone, tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 2, X: 0.9}, vp, 1, 1).Kind)
	assert.Equal(t, InputNone, tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, FingerID: 2, X: 0.9}, vp, 1, 1).Kind)

	move := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, FingerID: 1, X: 0.5, Y: 0.5}, vp, 1, 1)
	assert.Equal(t, render.PointerMove, move.Pointer.Phase)
	assert.InDelta(t, 200, move.Pointer.X, 0.001)

	up := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERUP, FingerID: 1, X: 0.5, Y: 0.5}, vp, 1, 1)
	assert.Equal(t, render.PointerUp, up.Pointer.Phase)

	again := tr.Translate(&sdl.TouchFingerEvent{Type: sdl.FINGERDOWN, FingerID: 2, X: 0.1}, vp, 1, 1)
	assert.Equal(t, render.PointerDown, again.Pointer.Phase)
}

func TestTranslate_Mouse(t *testing.T) {
	var tr InputTranslator

	down := tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: uint8(sdl.BUTTON_LEFT), X: 10, Y: 20}, vp, 2, 2)
	assert.Equal(t, render.PointerEvent{Phase: render.PointerDown, X: 20, Y: 40}, down.Pointer)

	hover := tr.Translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 30, Y: 20}, vp, 1, 1)
	assert.Equal(t, InputNone, hover.Kind, "motion without a held button")

	drag := tr.Translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, State: leftButtonMask, X: 30, Y: 20}, vp, 1, 1)
	assert.Equal(t, render.PointerMove, drag.Pointer.Phase)

	right := tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: uint8(sdl.BUTTON_RIGHT)}, vp, 1, 1)
	assert.Equal(t, InputNone, right.Kind)

	synthetic := tr.Translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Which: touchMouseID, Button: uint8(sdl.BUTTON_LEFT)}, vp, 1, 1)
	assert.Equal(t, InputNone, synthetic.Kind)
}

func TestTranslate_BackAndWindow(t *testing.T) {
	var tr InputTranslator

	assert.Equal(t, InputBack, tr.Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, vp, 1, 1).Kind)
	assert.Equal(t, InputNone, tr.Translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, vp, 1, 1).Kind)
	assert.Equal(t, InputNone, tr.Translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, vp, 1, 1).Kind)
	assert.Equal(t, InputBack, tr.Translate(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Button: uint8(sdl.CONTROLLER_BUTTON_B)}, vp, 1, 1).Kind)
	assert.Equal(t, InputResize, tr.Translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED}, vp, 1, 1).Kind)
	assert.Equal(t, InputQuit, tr.Translate(&sdl.QuitEvent{Type: sdl.QUIT}, vp, 1, 1).Kind)
}

func TestTheme_WithColors(t *testing.T) {
	red := config.HexToColor(0xFF0000)
	theme := DefaultTheme().WithColors(config.Colors{Accent: &red})

	assert.Equal(t, red, theme.AccentColor)
	assert.Equal(t, DefaultTheme().SurfaceColor, theme.SurfaceColor)
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, theme.BarTheme().Accent)
}

func TestToSDLRect_RoundsEdges(t *testing.T) {
	r := toSDLRect(render.Rect{X: 0.4, Y: 1.6, W: 10.2, H: 5})

	assert.Equal(t, sdl.Rect{X: 0, Y: 2, W: 11, H: 5}, r)
}

func TestIntersect(t *testing.T) {
	got := intersect(render.Rect{W: 100, H: 100}, render.Rect{X: 50, Y: -10, W: 100, H: 30})

	assert.Equal(t, render.Rect{X: 50, Y: 0, W: 50, H: 20}, got)
	assert.Equal(t, 0.0, intersect(render.Rect{W: 10, H: 10}, render.Rect{X: 20, W: 5, H: 5}).W)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLogLevel(" Debug ").String())
	assert.Equal(t, "WARN", ParseLogLevel("warning").String())
	assert.Equal(t, "INFO", ParseLogLevel("loud").String())
}
