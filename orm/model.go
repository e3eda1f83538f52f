package orm

import (
	"github.com/tesserapay/ledger"
)

// Model is implemented by any entity that can be stored using a
// ModelBucket.
type Model interface {
	ledger.Persistent
	Validate() error
}

// ModelIterator can be used to iterate over a bucket's content, loading
// each entity into a given destination.
type ModelIterator interface {
	// LoadNext moves the iterator to the next key and loads the value
	// stored there into dest. The key, with the bucket prefix
	// stripped, is returned.
	// When the end is reached, errors.ErrIteratorDone is returned.
	LoadNext(dest Model) ([]byte, error)

	// Release frees all resources held by the iterator. Can be called
	// repeatedly.
	Release()
}
