package geometry

import (
	"errors"
	"fmt"
)

// Error kinds returned by the pipeline stages. Use errors.Is to test for them.
var (
	// ErrInvalidInput indicates an empty or malformed site set or parameter.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateGeometry indicates fewer than 3 distinct, non-collinear sites.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// InputError describes why a site set or parameter was rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// DegenerateError indicates the diagram is undefined for the given sites.
type DegenerateError struct {
	Sites  int
	Reason string
}

func (e *DegenerateError) Error() string {
	if e.Sites > 0 {
		return fmt.Sprintf("degenerate geometry (%d sites): %s", e.Sites, e.Reason)
	}
	return fmt.Sprintf("degenerate geometry: %s", e.Reason)
}

// Unwrap lets errors.Is match ErrDegenerateGeometry.
func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateGeometry
}

func invalidf(format string, args ...interface{}) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}
