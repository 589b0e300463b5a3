package render

// PointerPhase is the stage of a single pointer interaction.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
	// PointerCancel means the platform lost the pointer (window focus loss,
	// touch device reset). It resolves a gesture without any stack effect.
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return ""
	}
}

// PointerEvent is a mouse or touch event in window coordinates.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  float64
}

// PointerHandler is implemented by drawables that react to pointer input.
// bounds is the rectangle the drawable was last drawn into, in the same
// coordinate space as ev. It reports whether the event was consumed; a
// handler that consumes PointerDown receives the rest of that interaction.
type PointerHandler interface {
	HandlePointer(ev PointerEvent, bounds Rect) bool
}
