package arena

import (
	"fmt"

	"github.com/hupe1980/handlemap/internal/mmap"
)

// Reserved is an arena backed by a single virtual-address reservation.
// It serves exactly one growable buffer: the committed prefix of the
// reservation. Grow extends that prefix; the base address never changes.
type Reserved struct {
	region *mmap.Region
}

// NewReserved reserves size bytes of address space. Reservation is
// address-space-only and consumes no physical memory, so callers size it
// for their theoretical maximum.
func NewReserved(size int) (*Reserved, error) {
	region, err := mmap.Reserve(size)
	if err != nil {
		return nil, fmt.Errorf("arena: reserve %d bytes: %w", size, err)
	}
	return &Reserved{region: region}, nil
}

// Grow commits memory through byte n of the reservation. Growth is always
// in place; it fails only if n exceeds the reservation, meaning the
// reservation was sized too small.
func (a *Reserved) Grow(n int) error {
	return a.region.Commit(n)
}

// Bytes returns the slice spanning the whole reservation. Only the
// committed prefix may be dereferenced.
func (a *Reserved) Bytes() []byte {
	return a.region.Bytes()
}

// Reserved returns the reservation size in bytes.
func (a *Reserved) Reserved() int {
	return a.region.Size()
}

// Committed returns the number of bytes currently committed.
func (a *Reserved) Committed() int {
	return a.region.Committed()
}

// Release returns the entire reservation to the OS in one step.
// All pointers into the arena become invalid.
func (a *Reserved) Release() error {
	return a.region.Close()
}
