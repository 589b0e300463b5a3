package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

var (
	window      *Window
	controllers []*sdl.GameController
)

// Init starts SDL and opens the window. Synthetic mouse events for touches
// are disabled because fingers are handled directly.
func Init(title string, winOpts WindowOptions) error {
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return NewInfrastructureError("ttf_init", err)
	}

	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions(constants.IsDevMode())
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	openControllers()
	return nil
}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			controllers = append(controllers, c)
		}
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
