//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Native reports whether real virtual-memory reservation is available.
const Native = true

func osGranularity() int {
	return os.Getpagesize()
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}

// osReserve maps size bytes with PROT_NONE. Inaccessible pages carry no
// physical backing; osCommit opens them up as the caller grows into them.
func osReserve(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// osCommit makes the first n bytes of a reservation read-write.
// n must be a multiple of the page size.
func osCommit(data []byte, n int) error {
	return unix.Mprotect(data[:n], unix.PROT_READ|unix.PROT_WRITE)
}

func osRelease(data []byte) error {
	return unix.Munmap(data)
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}

	// On Linux, madvise requires page-aligned addresses. If the slice isn't
	// page-aligned, we silently succeed since the hint is advisory.
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
