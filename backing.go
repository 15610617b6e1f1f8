package handlemap

import "reflect"

// backing is the storage strategy behind a Map: an ordered sequence of slots
// with the property that a live slot's address never moves. The Map layers
// the handle protocol (dummy slot, free list, generations) on top; backings
// only hold raw items.
type backing[T any] interface {
	// at returns the slot at index i. i must be < length().
	at(i uint32) *T
	// grow appends a new slot holding v and returns its address and index.
	// Materialization (allocation, reservation) happens on the first call.
	grow(v T) (*T, uint32, error)
	// length returns the number of materialized slots, including the dummy.
	length() uint32
	// capacity returns how many items the backing can theoretically hold,
	// excluding the dummy slot.
	capacity() int
	// clear drops all slots but keeps initial capacity where applicable.
	clear()
	// destroy releases all backing memory.
	destroy()
	// stats reports backing memory usage.
	stats() MemoryStats
}

// hasPointers reports whether values of type t contain Go pointers.
// The virtual-memory strategies place items outside the Go heap, where the
// garbage collector cannot see them, so pointer-carrying types are rejected
// at construction.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
