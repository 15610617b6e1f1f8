package handlemap

import "iter"

// Iterator is a stateful cursor over a map's live items in ascending index
// order. A cursor is single-use: create a fresh one for each traversal.
// Mutating the map (Add/Remove/Clear/Destroy) during an in-progress
// iteration is undefined; do not mutate while iterating.
type Iterator[T any, PT Item[T]] struct {
	m     *Map[T, PT]
	index uint32
}

// Iter returns a fresh cursor positioned before the first live item.
func (m *Map[T, PT]) Iter() *Iterator[T, PT] {
	return &Iterator[T, PT]{m: m, index: 1} // index 0 is the dummy
}

// Next advances to the next live item and returns its pointer and handle.
// It returns ok=false once the scan passes the end of storage.
func (it *Iterator[T, PT]) Next() (PT, Handle, bool) {
	if it.m.closed {
		return nil, Handle{}, false
	}
	for it.index < it.m.backing.length() {
		slot := PT(it.m.backing.at(it.index))
		it.index++
		if h := *slot.handleRef(); h.Index != 0 {
			return slot, h, true
		}
	}
	return nil, Handle{}, false
}

// All returns an iterator over (Handle, item) pairs of the live items in
// ascending index order, for use with range-over-func. The same mutation
// rules as Iter apply.
func (m *Map[T, PT]) All() iter.Seq2[Handle, PT] {
	return func(yield func(Handle, PT) bool) {
		it := m.Iter()
		for slot, h, ok := it.Next(); ok; slot, h, ok = it.Next() {
			if !yield(h, slot) {
				return
			}
		}
	}
}
