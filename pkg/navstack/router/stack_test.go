package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoute struct {
	kind string
	arg  string
}

func (r testRoute) RouteID() string { return r.kind + "/" + r.arg }

var (
	home     = testRoute{kind: "home"}
	settings = testRoute{kind: "settings"}
)

func detail(arg string) testRoute { return testRoute{kind: "detail", arg: arg} }

var _ Navigator[testRoute] = (*Stack[testRoute])(nil)

func TestNew_StartsWithRoot(t *testing.T) {
	s := New(home)

	assert.Equal(t, []testRoute{home}, s.Entries())
	assert.Equal(t, home, s.Current())
	assert.Equal(t, home, s.Root())
	assert.False(t, s.CanGoBack())
}

func TestPush_GrowsByOne(t *testing.T) {
	s := New(home)
	pushed := []testRoute{detail("1"), settings, detail("2"), detail("2")}

	for i, r := range pushed {
		s.Push(r)
		assert.Equal(t, i+2, s.Len())
		assert.Equal(t, r, s.Current())
		assert.True(t, s.CanGoBack())
	}
}

func TestPop(t *testing.T) {
	s := New(home)
	s.Push(detail("one"))
	s.Push(settings)

	s.Pop()

	assert.Equal(t, []testRoute{home, detail("one")}, s.Entries())
	assert.Equal(t, detail("one"), s.Current())
}

func TestPop_AtRootIsNoOp(t *testing.T) {
	s := New(home)
	notified := 0
	s.Subscribe(func(Change[testRoute]) { notified++ })

	s.Pop()

	assert.Equal(t, []testRoute{home}, s.Entries())
	assert.False(t, s.CanGoBack())
	assert.Zero(t, notified)
}

func TestPopToRoot(t *testing.T) {
	tests := []struct {
		name  string
		stack []testRoute
	}{
		{"root only", []testRoute{home}},
		{"two", []testRoute{home, detail("a")}},
		{"deep", []testRoute{settings, detail("a"), detail("b"), home}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.stack[0])
			s.ReplaceStack(tt.stack)

			s.PopToRoot()

			assert.Equal(t, []testRoute{tt.stack[0]}, s.Entries())
			assert.False(t, s.CanGoBack())
		})
	}
}

func TestReplaceRoot(t *testing.T) {
	s := New(home)
	s.Push(detail("one"))

	s.ReplaceRoot(settings)

	assert.Equal(t, []testRoute{settings}, s.Entries())
	assert.Equal(t, settings, s.Current())
	assert.False(t, s.CanGoBack())
}

func TestReplaceStack_RejectsEmpty(t *testing.T) {
	s := New(home)
	s.Push(detail("one"))
	before := s.Entries()

	s.ReplaceStack(nil)
	s.ReplaceStack([]testRoute{})

	assert.Equal(t, before, s.Entries())
}

func TestReplaceStack_Verbatim(t *testing.T) {
	s := New(home)
	routes := []testRoute{settings, detail("two"), detail("two")}

	s.ReplaceStack(routes)
	routes[0] = home // caller keeps ownership of its slice

	assert.Equal(t, []testRoute{settings, detail("two"), detail("two")}, s.Entries())
	assert.Equal(t, detail("two"), s.Current())
	assert.True(t, s.CanGoBack())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	s := New(home)
	entries := s.Entries()
	entries[0] = settings

	assert.Equal(t, home, s.Current())
}

func TestIndexAndContains(t *testing.T) {
	s := New(home)
	s.ReplaceStack([]testRoute{home, detail("a"), settings, detail("a")})

	assert.Equal(t, 3, s.Index(detail("a").RouteID()))
	assert.Equal(t, 0, s.Index(home.RouteID()))
	assert.Equal(t, -1, s.Index("missing"))
	assert.True(t, s.Contains(settings))
	assert.False(t, s.Contains(detail("b")))
}

func TestPopTo(t *testing.T) {
	s := New(home)
	s.ReplaceStack([]testRoute{home, detail("a"), settings, detail("b")})

	assert.True(t, s.PopTo(detail("a").RouteID()))
	assert.Equal(t, []testRoute{home, detail("a")}, s.Entries())

	assert.False(t, s.PopTo(detail("a").RouteID()), "already current")
	assert.False(t, s.PopTo("missing"))
	assert.Equal(t, 2, s.Len())
}

func TestSubscribe_ReceivesCompleteSnapshots(t *testing.T) {
	s := New(home)
	var changes []Change[testRoute]
	unsubscribe := s.Subscribe(func(c Change[testRoute]) {
		// the stack is already in its final state when observers run
		assert.Equal(t, c.After, s.Entries())
		changes = append(changes, c)
	})

	s.Push(detail("x"))
	s.Pop()
	s.ReplaceStack(nil)
	s.ReplaceRoot(settings)

	require.Len(t, changes, 3)
	assert.Equal(t, ActionPush, changes[0].Action)
	assert.Equal(t, []testRoute{home}, changes[0].Before)
	assert.Equal(t, []testRoute{home, detail("x")}, changes[0].After)
	assert.Equal(t, ActionPop, changes[1].Action)
	assert.Equal(t, ActionReplaceRoot, changes[2].Action)

	unsubscribe()
	s.Push(home)
	assert.Len(t, changes, 3)
}

func TestSubscribe_MultipleObserversInOrder(t *testing.T) {
	s := New(home)
	var order []string
	s.Subscribe(func(Change[testRoute]) { order = append(order, "first") })
	unsubscribeSecond := s.Subscribe(func(Change[testRoute]) { order = append(order, "second") })
	s.Subscribe(func(Change[testRoute]) { order = append(order, "third") })

	s.Push(settings)
	unsubscribeSecond()
	s.Pop()

	assert.Equal(t, []string{"first", "second", "third", "first", "third"}, order)
}

func TestEndToEnd_PushPop(t *testing.T) {
	s := New(home)

	s.Push(detail("x"))
	assert.Equal(t, []testRoute{home, detail("x")}, s.Entries())
	assert.True(t, s.CanGoBack())

	s.Pop()
	assert.Equal(t, []testRoute{home}, s.Entries())
	assert.False(t, s.CanGoBack())
}

func TestEndToEnd_PopToRoot(t *testing.T) {
	s := New(home)
	s.Push(detail("a"))
	s.Push(detail("b"))

	s.PopToRoot()

	assert.Equal(t, []testRoute{home}, s.Entries())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "push", ActionPush.String())
	assert.Equal(t, "replace_stack", ActionReplaceStack.String())
	assert.Equal(t, "unknown", Action(99).String())
}
