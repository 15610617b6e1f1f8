package handlemap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/handlemap/internal/arena"
	"github.com/hupe1980/handlemap/internal/mmap"
)

// NewGrowing creates a Map with no capacity ceiling. Items are allocated
// one at a time from an arena that grows by acquiring fixed-size
// anonymous-memory blocks; the slot sequence is an indirection array of
// item addresses, so neither arena growth nor regrowth of the indirection
// array ever moves an item. Memory exhaustion is the only failure mode and
// is returned from Add as an error, leaving the map in its last valid state.
//
// Items are stored outside the Go heap, so T must not contain Go pointers;
// NewGrowing returns ErrPointerType otherwise. Block size is controlled
// with WithMinItemsPerBlock; the default is smaller on platforms without
// virtual memory, where blocks are eagerly committed heap allocations.
func NewGrowing[T any, PT Item[T]](opts ...Option) (*Map[T, PT], error) {
	if hasPointers(reflect.TypeFor[T]()) {
		return nil, fmt.Errorf("%w: %s is stored off-heap", ErrPointerType, reflect.TypeFor[T]())
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.minItemsPerBlock <= 0 {
		return nil, ErrInvalidCapacity
	}

	return newMap[T, PT]("growing", newGrowingBacking[T](cfg.minItemsPerBlock), opts), nil
}

type growingBacking[T any] struct {
	arena *arena.Chunked
	// items is the indirection array: items[i] is the address of slot i
	// inside the arena. Appending may regrow this slice, but the item
	// memory it points at never moves.
	items            []*T
	minItemsPerBlock int
	itemSize         int
	itemAlign        int
}

func newGrowingBacking[T any](minItemsPerBlock int) *growingBacking[T] {
	var zero T
	return &growingBacking[T]{
		minItemsPerBlock: minItemsPerBlock,
		itemSize:         int(unsafe.Sizeof(zero)),
		itemAlign:        int(unsafe.Alignof(zero)),
	}
}

func (b *growingBacking[T]) at(i uint32) *T {
	return b.items[i]
}

func (b *growingBacking[T]) grow(v T) (*T, uint32, error) {
	if b.arena == nil {
		a, err := arena.NewChunked(b.minItemsPerBlock * b.itemSize)
		if err != nil {
			return nil, 0, err
		}
		b.arena = a
	}

	p, err := b.arena.Alloc(b.itemSize, b.itemAlign)
	if err != nil {
		return nil, 0, err
	}

	item := (*T)(p)
	*item = v
	b.items = append(b.items, item)
	return item, uint32(len(b.items) - 1), nil
}

func (b *growingBacking[T]) length() uint32 {
	return uint32(len(b.items))
}

func (b *growingBacking[T]) capacity() int {
	// No ceiling beyond the 32-bit index space.
	return maxCapacity
}

func (b *growingBacking[T]) clear() {
	if b.arena != nil {
		// Keeps the first block for reuse.
		b.arena.Reset()
	}
	b.items = b.items[:0]
}

func (b *growingBacking[T]) destroy() {
	if b.arena != nil {
		b.arena.Release()
		b.arena = nil
	}
	b.items = nil
}

func (b *growingBacking[T]) stats() MemoryStats {
	if b.arena == nil {
		return MemoryStats{}
	}
	s := b.arena.Stats()
	return MemoryStats{
		Reserved:  s.BytesReserved,
		Committed: s.BytesReserved,
		Used:      s.BytesUsed,
	}
}

// defaultMinItemsPerBlock sizes arena blocks so they are a reasonable
// multiple of the page size; without real virtual memory a block is an
// eagerly committed heap allocation, so it is kept smaller.
func defaultMinItemsPerBlock() int {
	if mmap.Native {
		return 1024
	}
	return 128
}
