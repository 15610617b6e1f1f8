package handlemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowing_Sweep(t *testing.T) {
	m, err := NewGrowing[entity]()
	require.NoError(t, err)
	defer m.Destroy()

	handles := make([]Handle, 10_000)
	for i := range handles {
		h, err := m.Add(entity{hp: int32(i)})
		require.NoError(t, err)
		handles[i] = h
	}
	require.Equal(t, 10_000, m.Len())

	for i := 0; i < len(handles); i += 2 {
		m.Remove(handles[i])
	}
	assert.Equal(t, 5_000, m.Len())

	count := 0
	for h, e := range m.All() {
		assert.Equal(t, uint32(0), h.Index%2, "every odd-indexed slot was removed")
		assert.Equal(t, h, e.Handle)
		count++
	}
	assert.Equal(t, 5_000, count)
}

func TestGrowing_PointerStability(t *testing.T) {
	// Tiny blocks force many block acquisitions.
	m, err := NewGrowing[entity](WithMinItemsPerBlock(4))
	require.NoError(t, err)
	defer m.Destroy()

	h, err := m.Add(entity{hp: 42})
	require.NoError(t, err)
	p, ok := m.Get(h)
	require.True(t, ok)

	for i := 0; i < 10_000; i++ {
		_, err := m.Add(entity{})
		require.NoError(t, err)
	}

	p2, ok := m.Get(h)
	require.True(t, ok)
	assert.Same(t, p, p2, "items are never relocated across block growth")
	assert.Equal(t, int32(42), p2.hp)
}

func TestGrowing_ClearKeepsFirstBlock(t *testing.T) {
	m, err := NewGrowing[entity](WithMinItemsPerBlock(4))
	require.NoError(t, err)
	defer m.Destroy()

	for i := 0; i < 1000; i++ {
		_, err := m.Add(entity{})
		require.NoError(t, err)
	}
	grown := m.MemoryStats().Reserved

	m.Clear()
	kept := m.MemoryStats().Reserved
	assert.Less(t, kept, grown, "extra blocks released")
	assert.Positive(t, kept, "first block kept for reuse")

	// Reuse after clear starts over.
	h, err := m.Add(entity{})
	require.NoError(t, err)
	assert.Equal(t, Handle{Index: 1, Generation: 1}, h)
}

func TestGrowing_Cap(t *testing.T) {
	m, err := NewGrowing[entity]()
	require.NoError(t, err)
	defer m.Destroy()

	assert.Equal(t, math.MaxInt, m.Cap(), "no configured ceiling")
}
