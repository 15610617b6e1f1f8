package handlemap

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by Add after Destroy has been called.
	ErrClosed = errors.New("handlemap: map is destroyed")
	// ErrInvalidCapacity is returned when a capacity or ceiling is not positive.
	ErrInvalidCapacity = errors.New("handlemap: capacity must be positive")
	// ErrPointerType is returned when the item type contains Go pointers but
	// the chosen strategy stores items outside the Go heap.
	ErrPointerType = errors.New("handlemap: item type contains Go pointers")
)

// ErrReservationExhausted indicates that an Add would grow the static-reserve
// store past its reservation. The ceiling passed to NewStatic was too small;
// reservation is address-space-only, so callers should choose it generously.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrReservationExhausted struct {
	Max   int
	cause error
}

func (e *ErrReservationExhausted) Error() string {
	return fmt.Sprintf("handlemap: reservation exhausted: ceiling of %d items reached", e.Max)
}

func (e *ErrReservationExhausted) Unwrap() error { return e.cause }
