package handlemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_YieldsLiveInIndexOrder(t *testing.T) {
	for name, m := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var handles []Handle
			for i := 0; i < 10; i++ {
				h, err := m.Add(entity{hp: int32(i)})
				require.NoError(t, err)
				handles = append(handles, h)
			}
			removed := map[Handle]bool{handles[0]: true, handles[4]: true, handles[9]: true}
			for h := range removed {
				m.Remove(h)
			}

			var got []Handle
			it := m.Iter()
			for slot, h, ok := it.Next(); ok; slot, h, ok = it.Next() {
				assert.Equal(t, h, slot.Handle)
				got = append(got, h)
			}

			require.Len(t, got, 7)
			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].Index, got[i].Index, "ascending index order")
			}
			seen := map[Handle]bool{}
			for _, h := range got {
				assert.False(t, seen[h], "each handle yielded exactly once")
				assert.False(t, removed[h], "removed handles never yielded")
				seen[h] = true
			}

			// A drained cursor stays drained; traversal needs a fresh one.
			_, _, ok := it.Next()
			assert.False(t, ok)
			_, _, ok = it.Next()
			assert.False(t, ok)

			count := 0
			for range m.All() {
				count++
			}
			assert.Equal(t, 7, count, "fresh traversal sees everything again")
		})
	}
}

func TestIterator_Empty(t *testing.T) {
	for name, m := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, _, ok := m.Iter().Next()
			assert.False(t, ok, "unmaterialized store yields nothing")

			h, err := m.Add(entity{})
			require.NoError(t, err)
			m.Remove(h)
			_, _, ok = m.Iter().Next()
			assert.False(t, ok, "fully punctured store yields nothing")
		})
	}
}

func TestIterator_AllEarlyBreak(t *testing.T) {
	m, err := NewGrowing[entity]()
	require.NoError(t, err)
	defer m.Destroy()

	for i := 0; i < 5; i++ {
		_, err := m.Add(entity{hp: int32(i)})
		require.NoError(t, err)
	}

	count := 0
	for _, e := range m.All() {
		_ = e.hp
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestIterator_AfterDestroy(t *testing.T) {
	m, err := NewFixed[entity](4)
	require.NoError(t, err)
	_, err = m.Add(entity{})
	require.NoError(t, err)
	m.Destroy()

	_, _, ok := m.Iter().Next()
	assert.False(t, ok)
}
