package internal

import "github.com/veandco/go-sdl2/sdl"

type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing; the navigation view relayouts on resize
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AllowHighDPI      bool // Request a high-DPI backbuffer where supported
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// DefaultWindowOptions is a bordered resizable window in dev mode and a
// borderless fullscreen one on device.
func DefaultWindowOptions(dev bool) WindowOptions {
	if dev {
		return WindowOptions{Resizable: true, AllowHighDPI: true}
	}
	return WindowOptions{Borderless: true, FullscreenDesktop: true}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AllowHighDPI {
		flags |= sdl.WINDOW_ALLOW_HIGHDPI
	}

	return flags
}
