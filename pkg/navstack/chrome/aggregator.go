// Package chrome collects the navigation bar content that mounted screens
// declare and exposes the aggregated result to the bar.
//
// Each mounted screen gets a Scope. Declaring a value on a channel replaces
// whatever is there and makes the scope its owner; declaring nil clears the
// channel back to the bar default. When a screen is unmounted its scope is
// dropped and every channel it still owns is cleared.
//
// There is no priority between screens. During a slide transition both the
// outgoing and incoming screen are mounted and the one that declares last
// wins, which the container arranges to be the frontmost.
package chrome

import (
	"image/color"
	"slices"
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Channel names one of the five declarable bar slots.
type Channel int

const (
	ChannelTitle Channel = iota
	ChannelLeading
	ChannelTrailing
	ChannelBackground
	ChannelBackTint
)

func (c Channel) String() string {
	switch c {
	case ChannelTitle:
		return "title"
	case ChannelLeading:
		return "leading"
	case ChannelTrailing:
		return "trailing"
	case ChannelBackground:
		return "background"
	case ChannelBackTint:
		return "back_tint"
	default:
		return "unknown"
	}
}

// State is the aggregated bar content. Nil fields mean "use the default".
type State struct {
	Title      *render.Content
	Leading    *render.Content
	Trailing   *render.Content
	Background *render.Content
	BackTint   *color.RGBA
}

// Equal compares content by identity and tint by value.
func (s State) Equal(o State) bool {
	return s.Title.Equal(o.Title) &&
		s.Leading.Equal(o.Leading) &&
		s.Trailing.Equal(o.Trailing) &&
		s.Background.Equal(o.Background) &&
		tintEqual(s.BackTint, o.BackTint)
}

func tintEqual(a, b *color.RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type slot struct {
	content *render.Content
	tint    *color.RGBA
	owner   string
}

// cacheKey holds one convenience handle per scope and kind, so a screen that
// declares the same text every render keeps the same identity.
type cacheKey struct {
	owner string
	kind  int
}

type cacheEntry struct {
	text    string
	fill    color.RGBA
	content *render.Content
}

const (
	cacheText = iota
	cacheFill
)

// pending collects one channel's declarations during a render pass.
type pending struct {
	content *render.Content
	tint    *color.RGBA
	owner   string
	set     bool
	cleared bool
}

type subscriber struct {
	id uint64
	fn func(State)
}

// Aggregator keeps the latest declaration per channel.
type Aggregator struct {
	mu        sync.Mutex
	slots     [ChannelBackTint + 1]slot
	cache     map[cacheKey]cacheEntry
	textStyle render.Text
	pass      *[ChannelBackTint + 1]pending

	generation atomic.Uint64
	nextID     atomic.Uint64

	subMu       sync.Mutex
	subscribers []subscriber
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTitleStyle sets the font and color used by Scope.TitleText.
func WithTitleStyle(size render.FontSize, c color.RGBA) Option {
	return func(a *Aggregator) {
		a.textStyle.Size = size
		a.textStyle.Color = c
	}
}

// NewAggregator creates an aggregator with every channel at its default.
func NewAggregator(opts ...Option) *Aggregator {
	a := &Aggregator{
		cache:     make(map[cacheKey]cacheEntry),
		textStyle: render.Text{Size: render.FontMedium, Color: color.RGBA{A: 255}, Center: true},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Scope returns the declarer for the screen mounted under key.
// Scopes are cheap; calling Scope twice with the same key yields declarers
// that share ownership.
func (a *Aggregator) Scope(key string) *Scope {
	return &Scope{agg: a, key: key}
}

// State returns a snapshot of the aggregated content.
func (a *Aggregator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateLocked()
}

// Generation increments on every effective change.
func (a *Aggregator) Generation() uint64 {
	return a.generation.Load()
}

// Owner returns the key of the scope whose declaration is active on ch, or
// "" when the channel is at its default.
func (a *Aggregator) Owner(ch Channel) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.slots[ch].owner
}

// Unmount clears every channel still owned by key.
func (a *Aggregator) Unmount(key string) {
	a.update(func(slots *[ChannelBackTint + 1]slot) {
		for i := range slots {
			if slots[i].owner == key {
				slots[i] = slot{}
			}
		}
		for k := range a.cache {
			if k.owner == key {
				delete(a.cache, k)
			}
		}
	})
}

// Reset clears every channel.
func (a *Aggregator) Reset() {
	a.update(func(slots *[ChannelBackTint + 1]slot) {
		*slots = [ChannelBackTint + 1]slot{}
		clear(a.cache)
	})
}

// BeginPass starts batching declarations for one render pass. Until Commit,
// declarations are only recorded; Commit then applies, per channel, the last
// non-nil value declared during the pass. A channel that only saw nil
// declarations is cleared, and a channel nobody mentioned keeps its value.
func (a *Aggregator) BeginPass() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pass = &[ChannelBackTint + 1]pending{}
}

// Commit ends the render pass started by BeginPass.
func (a *Aggregator) Commit() {
	a.mu.Lock()
	pass := a.pass
	a.pass = nil
	a.mu.Unlock()
	if pass == nil {
		return
	}

	a.update(func(slots *[ChannelBackTint + 1]slot) {
		for ch, p := range pass {
			switch {
			case p.set:
				if slots[ch].owner == p.owner && slots[ch].content.Equal(p.content) && tintEqual(slots[ch].tint, p.tint) {
					continue
				}
				slots[ch] = slot{content: p.content, tint: p.tint, owner: p.owner}
			case p.cleared:
				slots[ch] = slot{}
			}
		}
	})
}

// Subscribe registers fn to be called with the new state after each change.
func (a *Aggregator) Subscribe(fn func(State)) (unsubscribe func()) {
	id := a.nextID.Inc()

	a.subMu.Lock()
	a.subscribers = append(a.subscribers, subscriber{id: id, fn: fn})
	a.subMu.Unlock()

	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		a.subscribers = slices.DeleteFunc(a.subscribers, func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (a *Aggregator) declareContent(ch Channel, key string, c *render.Content) {
	if a.record(ch, key, c, nil) {
		return
	}
	a.update(func(slots *[ChannelBackTint + 1]slot) {
		if c == nil {
			slots[ch] = slot{}
			return
		}
		if slots[ch].content.Equal(c) && slots[ch].owner == key {
			return
		}
		slots[ch] = slot{content: c, owner: key}
	})
}

func (a *Aggregator) textContent(owner, text string) *render.Content {
	return a.cached(cacheKey{owner: owner, kind: cacheText}, cacheEntry{text: text}, func() render.Drawable {
		t := a.textStyle
		t.Value = text
		return t
	})
}

func (a *Aggregator) fillContent(owner string, c color.RGBA) *render.Content {
	return a.cached(cacheKey{owner: owner, kind: cacheFill}, cacheEntry{fill: c}, func() render.Drawable {
		return render.Fill(c)
	})
}

func (a *Aggregator) cached(k cacheKey, want cacheEntry, build func() render.Drawable) *render.Content {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.cache[k]; ok && e.text == want.text && e.fill == want.fill {
		return e.content
	}
	want.content = render.NewContent(build())
	a.cache[k] = want
	return want.content
}

func (a *Aggregator) declareTint(key string, tint *color.RGBA) {
	if tint != nil {
		t := *tint
		tint = &t
	}
	if a.record(ChannelBackTint, key, nil, tint) {
		return
	}
	a.update(func(slots *[ChannelBackTint + 1]slot) {
		if tint == nil {
			slots[ChannelBackTint] = slot{}
			return
		}
		slots[ChannelBackTint] = slot{tint: tint, owner: key}
	})
}

// record stores a declaration in the open render pass, if any.
func (a *Aggregator) record(ch Channel, key string, c *render.Content, tint *color.RGBA) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pass == nil {
		return false
	}
	p := &a.pass[ch]
	if c == nil && tint == nil {
		p.cleared = true
		return true
	}
	*p = pending{content: c, tint: tint, owner: key, set: true, cleared: p.cleared}
	return true
}

// update applies fn and notifies subscribers when the visible state changed.
// Ownership moves without a visible change do not notify.
func (a *Aggregator) update(fn func(slots *[ChannelBackTint + 1]slot)) {
	a.mu.Lock()
	before := a.stateLocked()
	fn(&a.slots)
	after := a.stateLocked()
	a.mu.Unlock()

	if before.Equal(after) {
		return
	}
	a.generation.Inc()

	a.subMu.Lock()
	subs := slices.Clone(a.subscribers)
	a.subMu.Unlock()

	for _, s := range subs {
		s.fn(after)
	}
}

func (a *Aggregator) stateLocked() State {
	var s State
	s.Title = a.slots[ChannelTitle].content
	s.Leading = a.slots[ChannelLeading].content
	s.Trailing = a.slots[ChannelTrailing].content
	s.Background = a.slots[ChannelBackground].content
	if t := a.slots[ChannelBackTint].tint; t != nil {
		tint := *t
		s.BackTint = &tint
	}
	return s
}
