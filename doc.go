// Package handlemap provides a generational handle-based object store for Go.
//
// A Map hands out stable {index, generation} handles in place of pointers.
// Handles survive slot reuse safely: removing an item tombstones its slot,
// and the next item to occupy that slot gets a higher generation, so the old
// handle is detectably stale forever after. This is the classic pattern for
// game entity stores and similar systems that need O(1) insert/remove/lookup
// and cheap, safe long-lived references.
//
// # Quick Start
//
//	type Enemy struct {
//	    handlemap.Handle // self handle, managed by the map
//	    X, Y float32
//	    HP   int32
//	}
//
//	m, _ := handlemap.NewGrowing[Enemy]()
//	defer m.Destroy()
//
//	h, _ := m.Add(Enemy{X: 1, Y: 2, HP: 100})
//
//	if e, ok := m.Get(h); ok {
//	    e.HP -= 10 // direct mutation through the borrowed pointer
//	}
//
//	m.Remove(h)
//	_, ok := m.Get(h) // ok == false: the handle is stale
//
// # Backing Strategies
//
// Three interchangeable strategies hold the slots; all guarantee that a
// live item's address never moves while it is live:
//
//   - NewFixed: one fixed-capacity array, no dynamic allocation beyond the
//     initial block. Exceeding the capacity panics.
//   - NewStatic: one up-front virtual-address reservation for a caller-chosen
//     ceiling; physical memory commits lazily and growth is guaranteed
//     in-place. Exceeding the ceiling returns *ErrReservationExhausted.
//   - NewGrowing: no ceiling; items are bump-allocated from fixed-size
//     arena blocks behind an indirection array. Allocation failure is
//     returned as an error.
//
// # Off-Heap Storage
//
// Static and growing stores place item memory outside the Go heap, where
// the garbage collector cannot scan it. Item types for those strategies
// must therefore be free of Go pointers (no pointers, slices, maps,
// strings, channels, funcs or interfaces); the constructors enforce this
// and return ErrPointerType. Fixed stores live on the Go heap and carry no
// such restriction.
//
// # Iteration
//
// All returns a range-over-func iterator and Iter a stateful cursor; both
// yield live items in ascending index order, skipping freed slots. Do not
// mutate the map during a traversal.
//
// # Concurrency
//
// A Map is single-threaded by design: no operation blocks, and no internal
// locking is performed. Callers that share a map across goroutines must
// serialize all access themselves.
package handlemap
