package posterize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPixelCount is returned when a pixel count is negative.
	ErrInvalidPixelCount = errors.New("pixel count must be non-negative")
)

// ErrBufferTooSmall indicates a caller-supplied buffer shorter than the
// operation requires.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBufferTooSmall struct {
	Buffer   string
	Required int
	Actual   int
	cause    error
}

func (e *ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("%s buffer too small: need %d bytes, got %d", e.Buffer, e.Required, e.Actual)
}

func (e *ErrBufferTooSmall) Unwrap() error { return e.cause }
