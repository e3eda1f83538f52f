package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/store"
)

func TestSequenceCountsFromZero(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("vault", "id")

	// before the first increment there is no latest value
	_, err := s.Latest(db)
	assert.True(t, errors.ErrEmpty.Is(err))

	for i := uint64(0); i < 5; i++ {
		val, err := s.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)

		latest, err := s.Latest(db)
		require.NoError(t, err)
		assert.Equal(t, i, latest)
	}
}

func TestSequenceIndependentCounters(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("vault", "id")
	b := NewSequence("vault", "other")
	c := NewSequence("name", "id")

	for i := uint64(0); i < 3; i++ {
		_, err := a.NextVal(db)
		require.NoError(t, err)
	}

	bv, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bv)

	cv, err := c.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cv)

	av, err := a.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), av)
}

func TestSequenceEncoding(t *testing.T) {
	val, err := NewSequence("enc", "id").NextVal(store.MemStore())
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, val)
	assert.Equal(t, uint64(0), DecodeSequence(val))

	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2}, EncodeSequence(258))
	assert.Equal(t, uint64(258), DecodeSequence(EncodeSequence(258)))
}
