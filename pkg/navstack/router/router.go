package router

// Route is the capability contract for anything stored on a Stack.
// Equality comes from comparable, identity from RouteID.
//
// Example:
//
//	type Screen int
//
//	const (
//	    ScreenHome Screen = iota
//	    ScreenSettings
//	)
//
//	func (s Screen) RouteID() string { return strconv.Itoa(int(s)) }
type Route interface {
	comparable
	RouteID() string
}

// Action identifies which mutation produced a Change.
type Action int

const (
	ActionPush Action = iota
	ActionPop
	ActionPopToRoot
	ActionReplaceRoot
	ActionReplaceStack
)

func (a Action) String() string {
	switch a {
	case ActionPush:
		return "push"
	case ActionPop:
		return "pop"
	case ActionPopToRoot:
		return "pop_to_root"
	case ActionReplaceRoot:
		return "replace_root"
	case ActionReplaceStack:
		return "replace_stack"
	default:
		return "unknown"
	}
}

// Change describes one effective stack mutation.
// Before and After are private copies and safe to retain.
type Change[R Route] struct {
	Action Action
	Before []R
	After  []R
}

// Navigator is the API a container and its screens navigate through.
// *Stack implements it; hosts that want to own navigation state can inject
// their own implementation into a container.
type Navigator[R Route] interface {
	Push(route R)
	Pop()
	PopToRoot()
	ReplaceRoot(route R)
	ReplaceStack(routes []R)

	Entries() []R
	Current() R
	Len() int
	CanGoBack() bool

	Subscribe(fn func(Change[R])) (unsubscribe func())
}
