package chrome

import (
	"image/color"

	"github.com/BrandonKowalski/navstack/pkg/navstack/render"
)

// Scope is the declaration API handed to one mounted screen.
// A nil argument clears the channel.
type Scope struct {
	agg *Aggregator
	key string
}

// Key returns the mount key this scope declares under.
func (s *Scope) Key() string {
	return s.key
}

// Title declares the bar title.
func (s *Scope) Title(c *render.Content) {
	s.agg.declareContent(ChannelTitle, s.key, c)
}

// TitleText declares a plain text title. The handle is cached per scope, so
// declaring the same string on every render is not treated as a change.
func (s *Scope) TitleText(title string) {
	s.Title(s.agg.textContent(s.key, title))
}

// Leading declares the leading accessory. It is only shown while the stack
// cannot go back; otherwise the back control takes the slot.
func (s *Scope) Leading(c *render.Content) {
	s.agg.declareContent(ChannelLeading, s.key, c)
}

// Trailing declares the trailing accessory.
func (s *Scope) Trailing(c *render.Content) {
	s.agg.declareContent(ChannelTrailing, s.key, c)
}

// Background declares the bar background.
func (s *Scope) Background(c *render.Content) {
	s.agg.declareContent(ChannelBackground, s.key, c)
}

// BackgroundColor declares a solid bar background.
func (s *Scope) BackgroundColor(c color.RGBA) {
	s.Background(s.agg.fillContent(s.key, c))
}

// BackTint declares the back control color.
func (s *Scope) BackTint(tint *color.RGBA) {
	s.agg.declareTint(s.key, tint)
}
