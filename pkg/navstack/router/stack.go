package router

import (
	"slices"
	"sync"

	"go.uber.org/atomic"
)

type subscriber[R Route] struct {
	id uint64
	fn func(Change[R])
}

// Stack manages the ordered list of mounted routes.
// It always holds at least one entry.
type Stack[R Route] struct {
	mu      sync.RWMutex
	entries []R

	nextID      atomic.Uint64
	subMu       sync.Mutex
	subscribers []subscriber[R]
}

// New creates a stack holding only root.
func New[R Route](root R) *Stack[R] {
	return &Stack[R]{
		entries: []R{root},
	}
}

// Push appends route and makes it current.
func (s *Stack[R]) Push(route R) {
	s.mutate(ActionPush, func(entries []R) ([]R, bool) {
		return append(entries, route), true
	})
}

// Pop removes the current route. A root-only stack is left untouched.
func (s *Stack[R]) Pop() {
	s.mutate(ActionPop, func(entries []R) ([]R, bool) {
		if len(entries) <= 1 {
			return entries, false
		}
		return entries[:len(entries)-1], true
	})
}

// PopToRoot truncates the stack to its root entry.
func (s *Stack[R]) PopToRoot() {
	s.mutate(ActionPopToRoot, func(entries []R) ([]R, bool) {
		if len(entries) <= 1 {
			return entries, false
		}
		return entries[:1], true
	})
}

// PopTo pops until the entry identified by id is current.
// Returns false when no entry has that identity or it is already current.
func (s *Stack[R]) PopTo(id string) bool {
	popped := false
	s.mutate(ActionPop, func(entries []R) ([]R, bool) {
		idx := indexOf(entries, id)
		if idx < 0 || idx == len(entries)-1 {
			return entries, false
		}
		popped = true
		return entries[:idx+1], true
	})
	return popped
}

// ReplaceRoot discards all history and makes route the only entry.
func (s *Stack[R]) ReplaceRoot(route R) {
	s.mutate(ActionReplaceRoot, func([]R) ([]R, bool) {
		return []R{route}, true
	})
}

// ReplaceStack replaces every entry with routes, verbatim.
// An empty routes slice is ignored and the existing stack is kept.
func (s *Stack[R]) ReplaceStack(routes []R) {
	if len(routes) == 0 {
		return
	}
	s.mutate(ActionReplaceStack, func([]R) ([]R, bool) {
		return slices.Clone(routes), true
	})
}

// Entries returns a copy of the stack, root first.
func (s *Stack[R]) Entries() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Current returns the last entry.
func (s *Stack[R]) Current() R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[len(s.entries)-1]
}

// Root returns the first entry.
func (s *Stack[R]) Root() R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[0]
}

// Len returns the number of entries, always at least one.
func (s *Stack[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// CanGoBack reports whether Pop would remove anything.
func (s *Stack[R]) CanGoBack() bool {
	return s.Len() > 1
}

// Index returns the position of the topmost entry with the given identity,
// or -1 if none matches.
func (s *Stack[R]) Index(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.entries, id)
}

// Contains reports whether any entry equals route.
func (s *Stack[R]) Contains(route R) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.entries, route)
}

// Subscribe registers fn to be called after every effective mutation.
// Observers run in registration order on the goroutine that mutated the stack.
func (s *Stack[R]) Subscribe(fn func(Change[R])) (unsubscribe func()) {
	id := s.nextID.Inc()

	s.subMu.Lock()
	s.subscribers = append(s.subscribers, subscriber[R]{id: id, fn: fn})
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber[R]) bool {
			return sub.id == id
		})
	}
}

// mutate applies fn under the write lock and notifies observers once the new
// state is fully in place. fn reports false for a no-op.
func (s *Stack[R]) mutate(action Action, fn func(entries []R) ([]R, bool)) {
	s.mu.Lock()
	before := slices.Clone(s.entries)
	next, changed := fn(slices.Clone(s.entries))
	if !changed || len(next) == 0 {
		s.mu.Unlock()
		return
	}
	s.entries = next
	after := slices.Clone(next)
	s.mu.Unlock()

	s.notify(Change[R]{Action: action, Before: before, After: after})
}

func (s *Stack[R]) notify(change Change[R]) {
	s.subMu.Lock()
	subs := slices.Clone(s.subscribers)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(change)
	}
}

func indexOf[R Route](entries []R, id string) int {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].RouteID() == id {
			return i
		}
	}
	return -1
}
