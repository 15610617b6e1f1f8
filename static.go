package handlemap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/handlemap/internal/arena"
	"github.com/hupe1980/handlemap/internal/mmap"
)

// NewStatic creates a Map backed by a single up-front virtual-address
// reservation sized for max items. Reservation claims address space only;
// physical memory commits lazily as the store grows, so max can be chosen
// generously. Because the reservation serves nothing but this store's slot
// sequence, growth always happens in place and item pointers stay valid for
// as long as their item is live.
//
// Exceeding the reservation surfaces as *ErrReservationExhausted from Add:
// the ceiling was sized too small.
//
// Items are stored outside the Go heap, so T must not contain Go pointers;
// NewStatic returns ErrPointerType otherwise. On platforms without
// virtual-memory support the whole reservation is heap-allocated up front.
func NewStatic[T any, PT Item[T]](max int, opts ...Option) (*Map[T, PT], error) {
	if max <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hasPointers(reflect.TypeFor[T]()) {
		return nil, fmt.Errorf("%w: %s is stored off-heap", ErrPointerType, reflect.TypeFor[T]())
	}
	return newMap[T, PT]("static", newStaticBacking[T](max), opts), nil
}

type staticBacking[T any] struct {
	arena *arena.Reserved
	// items spans the whole reservation; only indices below n are committed
	// and in use. The base address never changes.
	items []T
	n     uint32
	max   int
	// total is the slot count the rounded reservation can hold, dummy included.
	total    int
	itemSize int
}

func newStaticBacking[T any](max int) *staticBacking[T] {
	var zero T
	itemSize := int(unsafe.Sizeof(zero))
	reserve := alignUpInt((max+1)*itemSize, mmap.Granularity())
	return &staticBacking[T]{
		max:      max,
		total:    reserve / itemSize,
		itemSize: itemSize,
	}
}

func (b *staticBacking[T]) at(i uint32) *T {
	return &b.items[i]
}

func (b *staticBacking[T]) grow(v T) (*T, uint32, error) {
	if b.arena == nil {
		a, err := arena.NewReserved(b.total * b.itemSize)
		if err != nil {
			return nil, 0, err
		}
		b.arena = a
		base := unsafe.Pointer(unsafe.SliceData(a.Bytes()))
		b.items = unsafe.Slice((*T)(base), b.total)
	}

	i := int(b.n)
	if i >= b.total {
		return nil, 0, &ErrReservationExhausted{Max: b.max}
	}
	if err := b.arena.Grow((i + 1) * b.itemSize); err != nil {
		return nil, 0, &ErrReservationExhausted{Max: b.max, cause: err}
	}

	b.items[i] = v
	b.n++
	return &b.items[i], uint32(i), nil
}

func (b *staticBacking[T]) length() uint32 {
	return b.n
}

func (b *staticBacking[T]) capacity() int {
	// The reservation rounds up to the allocation granularity, so the usable
	// ceiling can exceed the requested max. The dummy slot is not counted.
	return b.total - 1
}

func (b *staticBacking[T]) clear() {
	// Committed memory is kept; the sequence just restarts.
	b.n = 0
}

func (b *staticBacking[T]) destroy() {
	if b.arena != nil {
		_ = b.arena.Release()
		b.arena = nil
	}
	b.items = nil
	b.n = 0
}

func (b *staticBacking[T]) stats() MemoryStats {
	if b.arena == nil {
		return MemoryStats{}
	}
	return MemoryStats{
		Reserved:  uint64(b.arena.Reserved()),
		Committed: uint64(b.arena.Committed()),
		Used:      uint64(int(b.n) * b.itemSize),
	}
}

// alignUpInt rounds n up to the next multiple of align (a power of two).
func alignUpInt(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
