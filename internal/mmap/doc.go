// Package mmap provides the virtual-memory primitives behind the handle map
// backing strategies.
//
// # Overview
//
// Two kinds of mappings are exposed:
//
//   - Reserve creates a reservation: address space claimed from the OS with
//     no physical backing. Pages become usable only after Commit, which is
//     how the static-reserve strategy grows its item sequence in place.
//   - MapAnon creates a committed read-write anonymous mapping, used by the
//     growing arena to acquire fixed-size blocks.
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): mmap(2) with PROT_NONE reservations and
//     mprotect(2) commits; madvise(2) for access hints
//   - Windows: VirtualAlloc with MEM_RESERVE/MEM_COMMIT
//   - Everything else: plain heap allocations; Reserve commits eagerly and
//     Commit is a no-op (Native reports false so callers can pick smaller
//     block sizes)
//
// # Thread Safety
//
// Mappings and regions are not synchronized. The handle map is specified as
// single-threaded, so the caller provides any serialization needed.
package mmap
