package arena

import (
	"errors"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/hupe1980/handlemap/internal/mmap"
)

var (
	// ErrReleased is returned when allocating from a released arena.
	ErrReleased = errors.New("arena: released")
	// ErrSizeTooLarge is returned when a single allocation exceeds the block size.
	ErrSizeTooLarge = errors.New("arena: allocation exceeds block size")
)

const (
	// DefaultBlockSize is the default size of a block (1MB).
	DefaultBlockSize = 1024 * 1024
	// DefaultAlignment is the default memory alignment (8 bytes).
	DefaultAlignment = 8
)

// Stats tracks arena memory usage.
//
// Note on semantics:
//   - BytesReserved: total block memory currently held
//   - BytesUsed: actual bytes requested by allocations (before alignment)
//   - BytesWasted: padding added for alignment
type Stats struct {
	BlocksAllocated uint64 // Historical: total blocks ever created
	BytesReserved   uint64 // Current: total block memory held
	BytesUsed       uint64 // Current: actual bytes used
	BytesWasted     uint64 // Current: alignment padding
	ActiveBlocks    uint64 // Current: active block count
	TotalAllocs     uint64 // Historical: total allocations
}

type block struct {
	mapping *mmap.Mapping
	data    []byte
	off     int
}

// Chunked is a bump allocator over a growing list of fixed-size
// anonymous-memory blocks. Allocations are never relocated and never
// individually freed; Reset drops everything except the first block and
// Release drops everything.
type Chunked struct {
	blockSize int
	blocks    []*block
	stats     Stats
	released  bool
}

// NewChunked creates a new arena with the given block size, rounded up to
// the next power of two. The first block is mapped eagerly.
func NewChunked(blockSize int) (*Chunked, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	blockSize = 1 << bits.Len(uint(blockSize-1))

	a := &Chunked{blockSize: blockSize}
	if err := a.addBlock(); err != nil {
		return nil, err
	}
	return a, nil
}

// BlockSize returns the rounded block size in bytes.
func (a *Chunked) BlockSize() int {
	return a.blockSize
}

func (a *Chunked) addBlock() error {
	mapping, err := mmap.MapAnon(a.blockSize)
	if err != nil {
		return fmt.Errorf("arena: map block: %w", err)
	}

	a.blocks = append(a.blocks, &block{
		mapping: mapping,
		data:    mapping.Bytes(),
	})

	a.stats.BlocksAllocated++
	a.stats.ActiveBlocks++
	a.stats.BytesReserved += uint64(a.blockSize)

	return nil
}

// Alloc bump-allocates size bytes with the given alignment and returns a
// pointer to them. The pointer stays valid until Reset or Release; growth of
// the arena never moves prior allocations.
//
// The memory is not guaranteed to be zeroed: after a Reset the first block
// is reused with its old contents.
func (a *Chunked) Alloc(size, align int) (unsafe.Pointer, error) {
	if a.released {
		return nil, ErrReleased
	}
	if size <= 0 || size > a.blockSize {
		return nil, ErrSizeTooLarge
	}
	if align <= 0 {
		align = DefaultAlignment
	}

	cur := a.blocks[len(a.blocks)-1]
	off := (cur.off + align - 1) &^ (align - 1)
	if off+size > len(cur.data) {
		if err := a.addBlock(); err != nil {
			return nil, err
		}
		// Block bases are page-aligned, which satisfies any item alignment.
		cur = a.blocks[len(a.blocks)-1]
		off = 0
	}

	a.stats.BytesWasted += uint64(off - cur.off)
	a.stats.BytesUsed += uint64(size)
	a.stats.TotalAllocs++
	cur.off = off + size

	return unsafe.Pointer(&cur.data[off]), nil
}

// Stats returns the current arena statistics.
func (a *Chunked) Stats() Stats {
	return a.stats
}

// Reset drops all allocations, releasing every block except the first,
// which is kept for reuse. All pointers into the arena become invalid.
func (a *Chunked) Reset() {
	if a.released || len(a.blocks) == 0 {
		return
	}

	for _, b := range a.blocks[1:] {
		_ = b.mapping.Close()
	}
	a.blocks[0].off = 0
	a.blocks = a.blocks[:1]

	a.stats.ActiveBlocks = 1
	a.stats.BytesReserved = uint64(a.blockSize)
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
}

// Release unmaps every block. The arena cannot be reused afterwards.
func (a *Chunked) Release() {
	if a.released {
		return
	}
	a.released = true

	for _, b := range a.blocks {
		_ = b.mapping.Close()
	}
	a.blocks = nil

	a.stats.ActiveBlocks = 0
	a.stats.BytesReserved = 0
	a.stats.BytesUsed = 0
	a.stats.BytesWasted = 0
}

func (a *Chunked) String() string {
	return fmt.Sprintf(
		"Chunked{blocks: %d, reserved: %.2f MB, used: %.2f MB, wasted: %.2f KB, allocs: %d}",
		a.stats.ActiveBlocks,
		float64(a.stats.BytesReserved)/(1024*1024),
		float64(a.stats.BytesUsed)/(1024*1024),
		float64(a.stats.BytesWasted)/1024,
		a.stats.TotalAllocs,
	)
}
