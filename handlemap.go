package handlemap

import (
	"math"
	"time"
)

// maxCapacity is reported by strategies without a configured ceiling.
const maxCapacity = math.MaxInt

// Map is a generational handle-based object store: it maps stable Handle
// values to items of type T, giving callers pointer-like referencing
// without dangling-pointer or use-after-reuse hazards. Lookups, inserts
// and removals are O(1); freed slots are recycled through a free list; a
// generation counter per slot makes stale handles detectably invalid.
//
// The three constructors differ only in the backing strategy:
//
//   - NewFixed: a fixed-capacity array, no dynamic growth
//   - NewStatic: one virtual-address reservation, committed lazily,
//     guaranteed in-place growth
//   - NewGrowing: unbounded, block-based arena with an indirection array
//
// Across all three, a live item's address never moves while it is live: a
// pointer from Get stays valid until that item is removed or the map is
// cleared or destroyed.
//
// Slot 0 is a permanently inert dummy, so index 0 never denotes a real
// item and the zero Handle is always invalid. Backing memory materializes
// on the first Add.
//
// A Map is not safe for concurrent use; the caller serializes access.
type Map[T any, PT Item[T]] struct {
	strategy string
	backing  backing[T]
	free     freeList
	opts     config
	closed   bool
}

func newMap[T any, PT Item[T]](strategy string, b backing[T], opts []Option) *Map[T, PT] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Map[T, PT]{
		strategy: strategy,
		backing:  b,
		opts:     cfg,
	}
}

// Add stores value and returns its Handle. If a freed slot is available it
// is reused with its generation bumped by one; otherwise a new slot is
// appended. Any handle embedded in value is overwritten with the item's
// self handle.
//
// Errors from Add (reservation exhaustion, allocation failure) leave the
// map in its previous state. Add never returns the nil handle on success.
func (m *Map[T, PT]) Add(value T) (Handle, error) {
	start := time.Now()
	h, err := m.add(value)
	m.opts.metrics.RecordAdd(time.Since(start), err)
	return h, err
}

func (m *Map[T, PT]) add(value T) (Handle, error) {
	if m.closed {
		return Handle{}, ErrClosed
	}

	if i, ok := m.free.pop(); ok {
		slot := PT(m.backing.at(i))
		// The tombstoned slot keeps its generation; the reused item gets
		// the next one, permanently invalidating the removed handle.
		gen := slot.handleRef().Generation + 1
		*slot = value
		h := Handle{Index: i, Generation: gen}
		*slot.handleRef() = h
		return h, nil
	}

	if m.backing.length() == 0 {
		m.opts.logger.Debug("materializing store", "strategy", m.strategy)
		// The dummy occupies index 0 with an all-zero self handle. It is
		// never returned to callers and never yielded by iteration.
		var dummy T
		if _, _, err := m.backing.grow(dummy); err != nil {
			return Handle{}, err
		}
	}

	slot, i, err := m.backing.grow(value)
	if err != nil {
		return Handle{}, err
	}
	h := Handle{Index: i, Generation: 1}
	*PT(slot).handleRef() = h
	return h, nil
}

// Get resolves h to a pointer to the live item, or (nil, false) if h is
// nil, out of range, or stale. The pointer is a borrow: it stays valid
// until the item is removed (or its slot reused) or the map is cleared or
// destroyed. Stale handles are a routine occurrence, not an error.
func (m *Map[T, PT]) Get(h Handle) (PT, bool) {
	slot := m.lookup(h)
	m.opts.metrics.RecordGet(slot != nil)
	if slot == nil {
		return nil, false
	}
	return slot, true
}

// Valid reports whether h refers to a live item.
func (m *Map[T, PT]) Valid(h Handle) bool {
	return m.lookup(h) != nil
}

func (m *Map[T, PT]) lookup(h Handle) PT {
	if m.closed || h.Index == 0 || h.Index >= m.backing.length() {
		return nil
	}
	slot := PT(m.backing.at(h.Index))
	// Exact match covers both generation mismatch and tombstoned slots,
	// whose index field is zero.
	if *slot.handleRef() != h {
		return nil
	}
	return slot
}

// Remove releases the item h refers to, recycling its slot. Removing an
// invalid or already-removed handle is a no-op, so Remove is idempotent.
// Slot contents are not scrubbed; callers must not assume cleared memory.
func (m *Map[T, PT]) Remove(h Handle) {
	start := time.Now()
	slot := m.lookup(h)
	if slot == nil {
		return
	}
	m.free.push(h.Index)
	// Tombstone: only the index field is zeroed. The generation stays as
	// the basis for the next reuse's increment.
	slot.handleRef().Index = 0
	m.opts.metrics.RecordRemove(time.Since(start))
}

// Len returns the number of live items.
func (m *Map[T, PT]) Len() int {
	n := int(m.backing.length())
	if n == 0 {
		n = 1 // never materialized: treat as dummy-only
	}
	return n - 1 - m.free.size()
}

// Cap returns the theoretical item capacity: the configured capacity for
// fixed stores, the reservation ceiling (rounded up to the allocation
// granularity) for static stores, and the index-space limit for growing
// stores.
func (m *Map[T, PT]) Cap() int {
	return m.backing.capacity()
}

// Clear removes all items in bulk while keeping initial capacity where the
// strategy supports it (the fixed array, the reservation and its committed
// prefix, the first arena block). Handles issued before Clear must be
// discarded: slot bookkeeping restarts, so they may alias future items.
func (m *Map[T, PT]) Clear() {
	if m.closed {
		return
	}
	m.opts.logger.Debug("clearing store", "strategy", m.strategy, "live", m.Len())
	m.backing.clear()
	m.free.reset()
}

// Destroy releases all backing memory in one step. The map is unusable
// afterwards: Add returns ErrClosed, lookups report not-found, Remove and
// Clear are no-ops. Destroy is idempotent.
func (m *Map[T, PT]) Destroy() {
	if m.closed {
		return
	}
	m.opts.logger.Debug("destroying store", "strategy", m.strategy)
	m.backing.destroy()
	m.free = freeList{}
	m.closed = true
}

// MemoryStats describes a map's memory footprint.
type MemoryStats struct {
	Live      int    // live items
	Slots     int    // materialized slots, dummy included
	Free      int    // recyclable slots on the free list
	Reserved  uint64 // bytes of address space held
	Committed uint64 // bytes backed by physical memory (demand-paged upper bound)
	Used      uint64 // bytes occupied by materialized slots
}

// MemoryStats reports reserved versus committed backing memory alongside
// slot occupancy.
func (m *Map[T, PT]) MemoryStats() MemoryStats {
	s := m.backing.stats()
	s.Live = m.Len()
	s.Slots = int(m.backing.length())
	s.Free = m.free.size()
	return s
}
