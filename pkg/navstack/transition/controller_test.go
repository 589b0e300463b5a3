package transition

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const width = 400.0

type fakeStack struct {
	n     int
	pops  int
	onPop func(prevLen int)
}

func (f *fakeStack) Len() int        { return f.n }
func (f *fakeStack) CanGoBack() bool { return f.n > 1 }
func (f *fakeStack) Pop() {
	if f.n <= 1 {
		return
	}
	prev := f.n
	f.n--
	f.pops++
	if f.onPop != nil {
		f.onPop(prev)
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newController(t *testing.T, n int) (*Controller, *fakeStack, *fakeClock) {
	t.Helper()
	stack := &fakeStack{n: n}
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := New(stack, DefaultConfig(), WithClock(clock.now))
	c.SetWidth(width)
	stack.onPop = c.StackChanged
	return c, stack, clock
}

func TestBegin_IgnoredWhenCannotGoBack(t *testing.T) {
	c, _, _ := newController(t, 1)

	assert.False(t, c.Begin(5, 100))
	c.Move(200, 0)
	out := c.End()

	assert.Equal(t, PhaseIdle, c.Phase())
	assert.False(t, out.Engaged)
	assert.Zero(t, c.DragOffset())
}

func TestGesture_EngagesFromEdgeWhenHorizontal(t *testing.T) {
	c, _, _ := newController(t, 2)

	require.True(t, c.Begin(10, 100))
	assert.Equal(t, PhaseTracking, c.Phase())

	c.Move(2, 8) // mostly vertical, keep tracking
	assert.Equal(t, PhaseTracking, c.Phase())
	assert.Zero(t, c.DragOffset())

	c.Move(30, 8)
	assert.Equal(t, PhaseEngaged, c.Phase())
	assert.Equal(t, 30.0, c.DragOffset())
}

func TestGesture_NeverEngagesOutsideEdge(t *testing.T) {
	c, stack, _ := newController(t, 3)

	for _, startX := range []float64{32.5, 33, 100, width - 1} {
		require.True(t, c.Begin(startX, 50))
		for dx := 0.0; dx <= width; dx += 25 {
			c.Move(dx, 0)
			assert.NotEqual(t, PhaseEngaged, c.Phase(), "start x %v", startX)
		}
		out := c.End()
		assert.False(t, out.Engaged)
		assert.Equal(t, PhaseIdle, c.Phase())
	}
	assert.Zero(t, stack.pops)
}

func TestGesture_EdgeBoundaryIsInclusive(t *testing.T) {
	c, _, _ := newController(t, 2)

	c.Begin(DefaultConfig().EdgeWidth, 0)
	c.Move(10, 0)

	assert.Equal(t, PhaseEngaged, c.Phase())
}

func TestGesture_OffsetIsClamped(t *testing.T) {
	c, _, _ := newController(t, 2)
	c.Begin(0, 0)

	c.Move(50, 0)
	assert.Equal(t, 50.0, c.DragOffset())

	c.Move(-80, 10) // swiping forward during a back swipe has no effect
	assert.Zero(t, c.DragOffset())
	assert.Equal(t, PhaseEngaged, c.Phase())

	c.Move(width*3, 0)
	assert.Equal(t, width, c.DragOffset())
}

func TestGesture_OffsetStaysInRangeForRandomMoves(t *testing.T) {
	c, _, clock := newController(t, 4)
	rng := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 50; round++ {
		clock.advance(DefaultConfig().Duration)
		c.Begin(rng.Float64()*32, rng.Float64()*300)
		moves := rng.IntN(20)
		for i := 0; i < moves; i++ {
			c.Move(rng.Float64()*3*width-width, rng.Float64()*100-50)
			assert.GreaterOrEqual(t, c.DragOffset(), 0.0)
			assert.LessOrEqual(t, c.DragOffset(), width)
		}
		if rng.IntN(2) == 0 {
			c.Cancel()
		} else {
			c.End()
		}
		assert.Zero(t, c.DragOffset())
		assert.Equal(t, PhaseIdle, c.Phase())
	}
}

func TestEnd_PastThresholdPopsOnce(t *testing.T) {
	c, stack, _ := newController(t, 3)

	c.Begin(4, 200)
	c.Move(0.4*width, 3)
	out := c.End()

	assert.True(t, out.Engaged)
	assert.True(t, out.Popped)
	assert.Equal(t, 0.4*width, out.Offset)
	assert.Equal(t, 1, stack.pops)
	assert.Equal(t, 2, stack.Len())
	assert.Zero(t, c.DragOffset())
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestEnd_BelowThresholdDoesNotPop(t *testing.T) {
	c, stack, _ := newController(t, 2)

	c.Begin(4, 200)
	c.Move(0.2*width, 3)
	out := c.End()

	assert.True(t, out.Engaged)
	assert.False(t, out.Popped)
	assert.Zero(t, stack.pops)
	assert.Zero(t, c.DragOffset())
}

func TestEnd_ExactlyAtThresholdDoesNotPop(t *testing.T) {
	c, stack, _ := newController(t, 2)

	c.Begin(4, 0)
	c.Move(0.3*width, 0)
	c.End()

	assert.Zero(t, stack.pops)
}

func TestCancel_NeverPops(t *testing.T) {
	c, stack, _ := newController(t, 2)

	c.Begin(4, 0)
	c.Move(0.9*width, 0)
	c.Cancel()

	assert.Zero(t, stack.pops)
	assert.Equal(t, PhaseIdle, c.Phase())
}

func TestBegin_WhileTrackingRestarts(t *testing.T) {
	c, stack, _ := newController(t, 2)

	c.Begin(4, 0)
	c.Move(0.9*width, 0)
	c.Begin(200, 0) // a lost end event is dropped, not completed

	assert.Zero(t, stack.pops)
	assert.Equal(t, PhaseTracking, c.Phase())
	assert.Zero(t, c.DragOffset())
}

func TestBegin_IgnoredWhileSettling(t *testing.T) {
	c, stack, clock := newController(t, 1)
	stack.n = 2
	c.StackChanged(1)
	clock.advance(DefaultConfig().Duration / 2)
	mid := c.RenderOffset()

	assert.False(t, c.Begin(4, 0), "edge grabbed mid-push")
	c.Move(150, 0)

	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, mid, c.RenderOffset(), "strip keeps following the animation")

	clock.advance(DefaultConfig().Duration)
	assert.True(t, c.Begin(4, 0))
	c.Move(150, 0)
	assert.Equal(t, -width+150, c.RenderOffset())
}

func TestRenderOffset_AtRest(t *testing.T) {
	c, _, _ := newController(t, 3)

	assert.Equal(t, -2*width, c.RenderOffset())
	assert.False(t, c.Animating())
}

func TestRenderOffset_TracksEngagedDrag(t *testing.T) {
	c, _, _ := newController(t, 3)

	c.Begin(1, 0)
	c.Move(120, 0)

	assert.Equal(t, -2*width+120, c.RenderOffset())
}

func TestRenderOffset_SettlesAfterRelease(t *testing.T) {
	c, _, clock := newController(t, 2)

	c.Begin(1, 0)
	c.Move(100, 0)
	c.End()

	assert.True(t, c.Animating())
	assert.Equal(t, -width+100, c.RenderOffset(), "starts where the finger let go")

	clock.advance(150 * time.Millisecond)
	mid := c.RenderOffset()
	assert.Less(t, mid, -width+100)
	assert.Greater(t, mid, -width)

	clock.advance(200 * time.Millisecond)
	assert.False(t, c.Animating())
	assert.Equal(t, -width, c.RenderOffset())
}

func TestRenderOffset_SettlesToPoppedPosition(t *testing.T) {
	c, _, clock := newController(t, 2)

	c.Begin(1, 0)
	c.Move(300, 0)
	c.End()

	assert.Equal(t, -width+300, c.RenderOffset())
	clock.advance(DefaultConfig().Duration)
	assert.Equal(t, 0.0, c.RenderOffset())
}

func TestStackChanged_AnimatesProgrammaticPush(t *testing.T) {
	c, stack, clock := newController(t, 1)

	stack.n = 2
	c.StackChanged(1)

	assert.True(t, c.Animating())
	assert.Equal(t, 0.0, c.RenderOffset())

	clock.advance(DefaultConfig().Duration / 2)
	assert.InDelta(t, -width/2, c.RenderOffset(), 0.001)

	clock.advance(DefaultConfig().Duration)
	assert.Equal(t, -width, c.RenderOffset())
}

func TestStackChanged_ResetsEngagedGesture(t *testing.T) {
	c, stack, _ := newController(t, 2)
	c.Begin(1, 0)
	c.Move(150, 0)

	stack.n = 3
	c.StackChanged(2)

	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Zero(t, c.DragOffset())
	assert.Equal(t, -width+150, c.RenderOffset())
	c.End()
	assert.Zero(t, stack.pops)
}

func TestSetWidth_SnapsAnimation(t *testing.T) {
	c, stack, _ := newController(t, 1)
	stack.n = 2
	c.StackChanged(1)

	c.SetWidth(200)

	assert.False(t, c.Animating())
	assert.Equal(t, -200.0, c.RenderOffset())
}

func TestZeroDuration_JumpsImmediately(t *testing.T) {
	stack := &fakeStack{n: 1}
	cfg := DefaultConfig()
	cfg.Duration = 0
	c := New(stack, cfg)
	c.SetWidth(width)

	stack.n = 2
	c.StackChanged(1)

	assert.False(t, c.Animating())
	assert.Equal(t, -width, c.RenderOffset())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"negative edge", func(c *Config) { c.EdgeWidth = -1 }, true},
		{"zero threshold", func(c *Config) { c.CompletionThreshold = 0 }, true},
		{"full threshold", func(c *Config) { c.CompletionThreshold = 1 }, true},
		{"negative duration", func(c *Config) { c.Duration = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, easeInOut(0))
	assert.Equal(t, 0.5, easeInOut(0.5))
	assert.Equal(t, 1.0, easeInOut(1))
	assert.Less(t, easeInOut(0.1), 0.1)
	assert.Greater(t, easeInOut(0.9), 0.9)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "engaged", PhaseEngaged.String())
	assert.Equal(t, "unknown", Phase(7).String())
}
