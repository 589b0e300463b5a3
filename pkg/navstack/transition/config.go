package transition

import (
	"errors"
	"fmt"
	"time"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid transition config")

// Config tunes the back-swipe gesture and the settle animation.
type Config struct {
	EdgeWidth           float64       // Width of the leading band a back-swipe must start in
	CompletionThreshold float64       // Fraction of the container width a swipe must pass to pop
	Duration            time.Duration // Settle animation length
}

// DefaultConfig returns the stock gesture tuning.
func DefaultConfig() Config {
	return Config{
		EdgeWidth:           constants.DefaultEdgeWidth,
		CompletionThreshold: constants.DefaultCompletionThreshold,
		Duration:            constants.DefaultTransitionDuration,
	}
}

// Validate reports the first out of range field.
func (c Config) Validate() error {
	if c.EdgeWidth < 0 {
		return fmt.Errorf("%w: edge width %v is negative", ErrInvalidConfig, c.EdgeWidth)
	}
	if c.CompletionThreshold <= 0 || c.CompletionThreshold >= 1 {
		return fmt.Errorf("%w: completion threshold %v must be between 0 and 1", ErrInvalidConfig, c.CompletionThreshold)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration %v is negative", ErrInvalidConfig, c.Duration)
	}
	return nil
}
