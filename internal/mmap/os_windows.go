//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Native reports whether real virtual-memory reservation is available.
const Native = true

// Windows reserves address space in 64 KiB chunks (dwAllocationGranularity),
// regardless of the 4 KiB page size.
const allocationGranularity = 64 * 1024

func osGranularity() int {
	return allocationGranularity
}

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	// VirtualAlloc with MEM_COMMIT uses demand-paging: pages are only backed
	// by physical memory when first accessed, similar to Unix mmap behavior.
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return data, func([]byte) error {
		// VirtualFree with MEM_RELEASE frees the entire region.
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}, nil
}

func osReserve(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func osCommit(data []byte, n int) error {
	// Committing already-committed pages is allowed, so the whole prefix
	// can be passed each time.
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	_, err := windows.VirtualAlloc(addr, uintptr(n),
		windows.MEM_COMMIT, windows.PAGE_READWRITE)
	return err
}

func osRelease(data []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}

func osAdvise(data []byte, pattern AccessPattern) error {
	// Windows has no direct equivalent to madvise; the hint is dropped.
	_ = data
	_ = pattern
	return nil
}
