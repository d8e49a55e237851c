package binet

import "errors"

// Sentinel errors returned by configuration and output helpers.
var (
	// ErrInvalidStep is returned when the sampling step is not positive.
	ErrInvalidStep = errors.New("binet: sampling step must be positive")

	// ErrInvalidMax is returned when the exponent range is not positive.
	ErrInvalidMax = errors.New("binet: exponent range must be positive")

	// ErrTooManySamples is returned when Max/Step exceeds MaxSamples.
	ErrTooManySamples = errors.New("binet: too many samples")

	// ErrInvalidZoom is returned when a zoom factor is not positive.
	ErrInvalidZoom = errors.New("binet: zoom must be positive")

	// ErrInvalidViewport is returned for images without drawable area.
	ErrInvalidViewport = errors.New("binet: viewport must have positive size")

	// ErrUnknownKey is returned by ParseKeys for unrecognized key names.
	ErrUnknownKey = errors.New("binet: unknown key")
)
