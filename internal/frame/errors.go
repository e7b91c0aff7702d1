package frame

import (
	"errors"
	"fmt"
)

// Frame errors.
var (
	// ErrFrameNotFound indicates the frame ID is not registered.
	ErrFrameNotFound = errors.New("frame not found")

	// ErrNoHost indicates a manager was created without a host shim.
	ErrNoHost = errors.New("no host shim configured")
)

// ConfigError reports an invalid frame configuration field.
type ConfigError struct {
	// Field is the configuration field at fault.
	Field string

	// Reason describes why the value is invalid.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid frame config: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid frame config: %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
