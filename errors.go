package algodct

import "errors"

// Sentinel errors returned by configuration and dispatch.
var (
	// ErrInvalidPolicy is returned when a test-number is not 0, 1 or 2.
	ErrInvalidPolicy = errors.New("algodct: invalid test policy")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("algodct: invalid config")

	// ErrNoAlgorithms is returned when filtering leaves nothing to test.
	ErrNoAlgorithms = errors.New("algodct: no algorithms to test")
)
