package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randBytes(size int) []byte {
	res := make([]byte, size)
	if _, err := rand.Read(res); err != nil {
		panic(err)
	}
	return res
}

func sortBytes(keys [][]byte) {
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i], keys[j]) < 0
	})
}

func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i] = Model{Key: ks[i], Value: vs[i]}
	}
	// make sure proper iteration works
	i := 0
	for iter := NewSliceIterator(models); iter.Valid(); i++ {
		assert.True(t, i < size)
		assert.Equal(t, ks[i], iter.Key())
		assert.Equal(t, vs[i], iter.Value())
		require.NoError(t, iter.Next())
	}
	assert.Equal(t, size, i)

	// iterator is invalid after close
	trash := NewSliceIterator(models)
	assert.True(t, trash.Valid())
	trash.Close()
	assert.False(t, trash.Valid())
}

func TestEmptyKVStore(t *testing.T) {
	kv := EmptyKVStore{}
	key := []byte("foo")

	// get on empty store returns nothing
	assert.Nil(t, mustGet(t, kv, key))
	assert.False(t, mustHas(t, kv, key))

	// setting values is a noop
	mustSet(t, kv, key, []byte("bar"))
	assert.Nil(t, mustGet(t, kv, key))
	assert.False(t, mustHas(t, kv, key))
}

func TestNonAtomicBatch(t *testing.T) {
	store := MemStore()
	batch := NewNonAtomicBatch(store)

	k, v := []byte("cool"), []byte("breeze")
	k2 := []byte("suave")

	mustSet(t, store, k2, []byte("something"))

	require.NoError(t, batch.Set(k, v))
	require.NoError(t, batch.Delete(k2))

	// nothing is visible until the batch writes
	assert.Nil(t, mustGet(t, store, k))
	assert.NotNil(t, mustGet(t, store, k2))

	require.NoError(t, batch.Write())
	assert.Equal(t, v, mustGet(t, store, k))
	assert.Nil(t, mustGet(t, store, k2))
}
