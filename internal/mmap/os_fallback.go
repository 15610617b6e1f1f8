//go:build !unix && !windows

package mmap

import "os"

// Native reports whether real virtual-memory reservation is available.
const Native = false

func osGranularity() int {
	return os.Getpagesize()
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}

// osReserve has no way to claim address space lazily, so the whole region is
// heap-allocated and committed up front. Callers check Native and size their
// reservations accordingly.
func osReserve(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func osCommit([]byte, int) error {
	return nil
}

func osRelease([]byte) error {
	return nil
}

func osAdvise([]byte, AccessPattern) error {
	return nil
}
