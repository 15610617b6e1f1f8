package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGranularity(t *testing.T) {
	g := Granularity()
	require.Positive(t, g)
	assert.Zero(t, g&(g-1), "granularity is a power of two")
}

func TestReserve_CommitAndWrite(t *testing.T) {
	r, err := Reserve(1 << 20)
	require.NoError(t, err)
	defer r.Close()

	assert.GreaterOrEqual(t, r.Size(), 1<<20)
	assert.Zero(t, r.Size()%Granularity())

	require.NoError(t, r.Commit(1))
	assert.GreaterOrEqual(t, r.Committed(), 1)
	assert.Zero(t, r.Committed()%Granularity())

	data := r.Bytes()
	data[0] = 0xab
	data[r.Committed()-1] = 0xcd
	assert.Equal(t, byte(0xab), data[0])
	assert.Equal(t, byte(0xcd), data[r.Committed()-1])
}

func TestReserve_CommitMonotonic(t *testing.T) {
	r, err := Reserve(1 << 20)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Commit(1<<18))
	committed := r.Committed()

	// A boundary at or below the current one must not shrink the commit.
	require.NoError(t, r.Commit(16))
	assert.Equal(t, committed, r.Committed())

	require.NoError(t, r.Commit(1<<19))
	assert.Greater(t, r.Committed(), committed)
}

func TestReserve_Bounds(t *testing.T) {
	r, err := Reserve(4096)
	require.NoError(t, err)
	defer r.Close()

	assert.ErrorIs(t, r.Commit(r.Size()+1), ErrOutOfBounds)
	assert.ErrorIs(t, r.Commit(-1), ErrOutOfBounds)
	require.NoError(t, r.Commit(r.Size()))

	_, err = Reserve(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Reserve(-5)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestReserve_Close(t *testing.T) {
	r, err := Reserve(4096)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "close is idempotent")
	assert.Nil(t, r.Bytes())
	assert.ErrorIs(t, r.Commit(16), ErrClosed)
}

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(8192)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 8192, m.Size())

	data := m.Bytes()
	require.Len(t, data, 8192)
	for i := range data {
		data[i] = byte(i)
	}
	assert.Equal(t, byte(1), data[1])

	require.NoError(t, m.Advise(AccessSequential))

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "close is idempotent")
	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)

	_, err = MapAnon(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
