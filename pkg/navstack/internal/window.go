package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Window wraps the SDL window, its renderer and the canvas drawing into it.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Canvas   *Canvas
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
		displayMode.W, displayMode.H = constants.DefaultWindowWidth, constants.DefaultWindowHeight
	}
	return initWindowWithSize(title, displayMode.W, displayMode.H, winOpts)
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func initWindowWithSize(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen, winOpts.FullscreenDesktop = false, false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, constants.DefaultWindowWidth)
		height = envSize(constants.WindowHeightEnvVar, constants.DefaultWindowHeight)
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, NewInfrastructureError("create_renderer", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	canvas, err := NewCanvas(renderer, GetTheme().FontPath, DefaultFontSizes)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &Window{
		Window:   window,
		Renderer: renderer,
		Canvas:   canvas,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Canvas.Destroy()
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Viewport is the drawable area in renderer coordinates.
func (window *Window) Viewport() render.Rect {
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		w, h = window.Window.GetSize()
	}
	return render.Rect{W: float64(w), H: float64(h)}
}

// PointerScale converts window coordinates, which SDL reports events in, to
// renderer coordinates. They differ on high-DPI displays.
func (window *Window) PointerScale() (float64, float64) {
	ww, wh := window.Window.GetSize()
	vp := window.Viewport()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return vp.W / float64(ww), vp.H / float64(wh)
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.FrameDelay.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
