package orm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/store"
)

// counter is a minimal model for testing buckets.
type counter struct {
	Count int64 `json:"count"`
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *counter) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

// badCounter is a model of the wrong type for the bucket.
type badCounter struct{ counter }

func TestModelBucketPutGetDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	key := []byte("c1")
	_, err := b.Put(db, key, &counter{Count: 11})
	require.NoError(t, err)

	var c counter
	require.NoError(t, b.One(db, key, &c))
	assert.Equal(t, int64(11), c.Count)

	require.NoError(t, b.Has(db, key))

	require.NoError(t, b.Delete(db, key))
	err = b.One(db, key, &c)
	assert.True(t, errors.ErrNotFound.Is(err))
	err = b.Delete(db, key)
	assert.True(t, errors.ErrNotFound.Is(err))
	err = b.Has(db, key)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketWrongType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	_, err := b.Put(db, []byte("k"), &badCounter{})
	assert.True(t, errors.ErrType.Is(err))

	var bad badCounter
	err = b.One(db, []byte("k"), &bad)
	assert.True(t, errors.ErrType.Is(err))
}

func TestModelBucketValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	_, err := b.Put(db, []byte("k"), &counter{Count: -1})
	assert.True(t, errors.ErrState.Is(err))
}

func TestModelBucketSequenceKeys(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{},
		WithIDSequence(NewSequence("cnts", "id")))

	// generated ids count from zero
	key, err := b.Put(db, nil, &counter{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(0), key)

	key, err = b.Put(db, nil, &counter{Count: 2})
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(1), key)

	// explicit keys do not consume the sequence
	_, err = b.Put(db, []byte("custom"), &counter{Count: 3})
	require.NoError(t, err)

	key, err = b.Put(db, nil, &counter{Count: 4})
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(2), key)
}

func TestModelBucketNoSequence(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	_, err := b.Put(db, nil, &counter{Count: 1})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestModelBucketIterAll(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{},
		WithIDSequence(NewSequence("cnts", "id")))

	// neighbour buckets must not leak into iteration
	other := NewModelBucket("cntx", &counter{})
	_, err := other.Put(db, []byte("x"), &counter{Count: 999})
	require.NoError(t, err)

	for i := int64(0); i < 5; i++ {
		_, err := b.Put(db, nil, &counter{Count: i * 10})
		require.NoError(t, err)
	}

	iter := b.IterAll(db)
	defer iter.Release()

	var got []int64
	for {
		var c counter
		key, err := iter.LoadNext(&c)
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, EncodeSequence(uint64(len(got))), key)
		got = append(got, c.Count)
	}
	assert.Equal(t, []int64{0, 10, 20, 30, 40}, got)
}
