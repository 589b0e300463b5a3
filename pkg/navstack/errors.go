package navstack

import (
	"errors"

	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
)

// Sentinel errors for common conditions.
var (
	// ErrNoWindow is returned by Run when Init has not succeeded.
	ErrNoWindow = internal.ErrNoWindow

	// ErrInvalidConfig wraps every configuration file validation failure.
	ErrInvalidConfig = internal.ErrInvalidConfig

	// ErrAlreadyRunning is returned by Run while another Run is active.
	ErrAlreadyRunning = errors.New("navstack: already running")
)

// InfrastructureError represents a failure of the runtime itself (SDL
// crashed, font missing, input device gone). These errors are typically
// fatal: the application cannot recover from them at the navigation level.
type InfrastructureError = internal.InfrastructureError

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	return internal.IsInfrastructureError(err)
}
