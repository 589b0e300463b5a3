// Package router provides the navigation stack behind a navstack container.
//
// A Stack holds an ordered, never empty sequence of routes. The first entry is
// the root and the last entry is the current screen. Every mutation is total:
// popping a root-only stack or replacing the stack with nothing is silently
// ignored rather than reported.
//
// # Basic Usage
//
//	// Routes are any comparable type with a stable identity
//	type Route struct {
//	    Kind string
//	    Arg  string
//	}
//
//	func (r Route) RouteID() string { return r.Kind + "/" + r.Arg }
//
//	nav := router.New(Route{Kind: "home"})
//	nav.Push(Route{Kind: "detail", Arg: "x"})
//	nav.CanGoBack() // true
//	nav.Pop()
//
// # Change Notification
//
// Observers registered with Subscribe are called after each effective
// mutation with a complete before and after snapshot. They never observe a
// half-applied change, and calls that turn out to be no-ops notify nobody.
//
//	unsubscribe := nav.Subscribe(func(c router.Change[Route]) {
//	    log.Printf("%s: %d -> %d entries", c.Action, len(c.Before), len(c.After))
//	})
//	defer unsubscribe()
package router
