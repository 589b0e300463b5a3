package internal

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal/config"
)

var (
	// ErrNoWindow is returned by operations that need Init to have run.
	ErrNoWindow = errors.New("navstack: window not initialized")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = config.ErrInvalidConfig
)

// InfrastructureError is a failure of the runtime itself (SDL, fonts, input
// devices) rather than of navigation.
type InfrastructureError struct {
	Op  string // e.g. "create_window", "open_font", "open_touch"
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navstack: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navstack: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
