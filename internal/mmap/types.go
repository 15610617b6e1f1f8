package mmap

import "errors"

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrClosed is returned when attempting to access a closed mapping or region.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested size is invalid (e.g. zero or negative).
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrOutOfBounds is returned when attempting to commit past the end of a reservation.
	ErrOutOfBounds = errors.New("mmap: out of bounds")
)

// Granularity returns the platform allocation granularity in bytes.
// Reservation sizes and commit boundaries are rounded up to this value.
func Granularity() int {
	return osGranularity()
}

// alignUp rounds n up to the next multiple of align. align must be a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
