package handlemap

import (
	"fmt"
	"unsafe"
)

// NewFixed creates a Map backed by a single fixed-capacity slot array,
// allocated in one piece on the first Add. There is no arena or
// virtual-memory involvement, and item addresses are stable because the
// array never grows.
//
// Capacity is a closed-world bound declared by the caller: adding a
// capacity+1-th item is a contract violation and panics rather than
// returning an error. Items may contain Go pointers; the array lives on the
// Go heap.
func NewFixed[T any, PT Item[T]](capacity int, opts ...Option) (*Map[T, PT], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return newMap[T, PT]("fixed", newFixedBacking[T](capacity), opts), nil
}

type fixedBacking[T any] struct {
	items    []T
	max      int
	itemSize int
}

func newFixedBacking[T any](capacity int) *fixedBacking[T] {
	var zero T
	return &fixedBacking[T]{
		max:      capacity,
		itemSize: int(unsafe.Sizeof(zero)),
	}
}

func (b *fixedBacking[T]) at(i uint32) *T {
	return &b.items[i]
}

func (b *fixedBacking[T]) grow(v T) (*T, uint32, error) {
	if b.items == nil {
		// One extra slot for the inert dummy at index 0.
		b.items = make([]T, 0, b.max+1)
	}
	if len(b.items) == cap(b.items) {
		panic(fmt.Sprintf("handlemap: fixed store capacity %d exceeded", b.max))
	}
	b.items = append(b.items, v)
	i := uint32(len(b.items) - 1)
	return &b.items[i], i, nil
}

func (b *fixedBacking[T]) length() uint32 {
	return uint32(len(b.items))
}

func (b *fixedBacking[T]) capacity() int {
	return b.max
}

func (b *fixedBacking[T]) clear() {
	if b.items != nil {
		b.items = b.items[:0]
	}
}

func (b *fixedBacking[T]) destroy() {
	b.items = nil
}

func (b *fixedBacking[T]) stats() MemoryStats {
	if b.items == nil {
		return MemoryStats{}
	}
	held := uint64(cap(b.items) * b.itemSize)
	return MemoryStats{
		Reserved:  held,
		Committed: held,
		Used:      uint64(len(b.items) * b.itemSize),
	}
}
