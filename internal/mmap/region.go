package mmap

import "sync/atomic"

// Region is a reservation of virtual address space with a lazily committed
// prefix. The base address is fixed for the lifetime of the region, so any
// pointer into the committed prefix stays valid until Close.
type Region struct {
	data      []byte
	size      int
	committed int
	closed    atomic.Bool
}

// Reserve claims size bytes of virtual address space without physical
// backing. The size is rounded up to the platform allocation granularity.
// On platforms without virtual-memory support the region is heap-allocated
// and fully committed up front.
func Reserve(size int) (*Region, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	size = alignUp(size, Granularity())

	data, err := osReserve(size)
	if err != nil {
		return nil, err
	}

	r := &Region{
		data: data,
		size: size,
	}
	if !Native {
		r.committed = size
	}
	return r, nil
}

// Commit ensures the first n bytes of the region are readable and writable.
// The boundary is rounded up to the allocation granularity. Committing is
// monotonic: a boundary at or below the current one is a no-op.
func (r *Region) Commit(n int) error {
	if r.closed.Load() {
		return ErrClosed
	}
	if n < 0 || n > r.size {
		return ErrOutOfBounds
	}
	n = alignUp(n, Granularity())
	if n > r.size {
		n = r.size
	}
	if n <= r.committed {
		return nil
	}
	if err := osCommit(r.data, n); err != nil {
		return err
	}
	r.committed = n
	return nil
}

// Bytes returns the byte slice spanning the whole reservation.
// Only the committed prefix may be dereferenced.
func (r *Region) Bytes() []byte {
	if r.closed.Load() {
		return nil
	}
	return r.data
}

// Size returns the reservation size in bytes.
func (r *Region) Size() int {
	return r.size
}

// Committed returns the number of bytes currently committed.
func (r *Region) Committed() int {
	return r.committed
}

// Close releases the whole reservation in one step. It is idempotent.
func (r *Region) Close() error {
	if r.closed.Swap(true) {
		return nil // Already closed
	}
	return osRelease(r.data)
}
