// Package arena provides the owning allocators behind the handle map
// backing strategies.
//
// Two allocators are implemented, both following the same bulk-free model:
// allocations are never released individually, only all at once.
//
//   - Reserved carves a single growable buffer out of one up-front
//     virtual-address reservation. Because the reservation serves no other
//     allocation, every growth step extends the existing mapping in place,
//     which is what keeps item pointers permanently stable.
//   - Chunked acquires fixed-size anonymous-memory blocks on demand and
//     bump-allocates items inside the current block. Items are never
//     relocated; Reset keeps the first block for reuse.
//
// The handle map is single-threaded by contract, so neither allocator
// performs internal locking.
package arena
