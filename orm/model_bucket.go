package orm

import (
	"reflect"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// ModelBucket is implemented by buckets that operate on Models rather
// than raw bytes.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. The result is loaded into the given
	// destination model.
	// This method returns ErrNotFound if the entity does not exist in
	// the database.
	One(db ledger.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves the given model in the database. A nil key means the
	// bucket must generate a unique one using its id sequence. The
	// key used is returned.
	Put(db ledger.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with the given primary key from the
	// database. It returns ErrNotFound if an entity with the given
	// key does not exist.
	Delete(db ledger.KVStore, key []byte) error

	// Has returns nil if an entity with the given primary key exists,
	// or ErrNotFound.
	Has(db ledger.ReadOnlyKVStore, key []byte) error

	// IterAll returns an iterator over all entities in the bucket, in
	// ascending key order.
	IterAll(db ledger.ReadOnlyKVStore) ModelIterator
}

// ModelBucketOption configures a model bucket during construction.
type ModelBucketOption func(mb *modelBucket)

// WithIDSequence makes the bucket allocate primary keys from the given
// sequence whenever Put is called with a nil key.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = &s
	}
}

// NewModelBucket returns a ModelBucket keeping all data under the named
// prefix. The model instance is used only to enforce the stored type.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	mb := &modelBucket{
		name:   name,
		prefix: bucketPrefix(name),
		model:  reflect.TypeOf(m),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
	idSeq  *Sequence
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db ledger.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := mb.assertType(dest); err != nil {
		return err
	}
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return dest.Unmarshal(raw)
}

func (mb *modelBucket) Put(db ledger.KVStore, key []byte, m Model) ([]byte, error) {
	if err := mb.assertType(m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if key == nil {
		if mb.idSeq == nil {
			return nil, errors.Wrap(errors.ErrInput, "bucket does not generate keys")
		}
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "ID sequence")
		}
	}

	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot marshal %T", m)
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, err
	}
	return key, nil
}

func (mb *modelBucket) Delete(db ledger.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return db.Delete(mb.dbKey(key))
}

func (mb *modelBucket) Has(db ledger.ReadOnlyKVStore, key []byte) error {
	if key == nil {
		// nil key is a reserved sequence key and cannot hold an
		// entity
		return errors.ErrNotFound
	}
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) IterAll(db ledger.ReadOnlyKVStore) ModelIterator {
	start, end := prefixRange(mb.prefix)
	iter, err := db.Iterator(start, end)
	if err != nil {
		return &failedIter{err: err}
	}
	return &prefixIter{
		iter:   iter,
		prefix: mb.prefix,
	}
}

func (mb *modelBucket) assertType(m Model) error {
	if reflect.TypeOf(m) != mb.model {
		return errors.Wrapf(errors.ErrType, "%s bucket holds %s, not %T", mb.name, mb.model, m)
	}
	return nil
}

// prefixIter adapts a raw store iterator to a ModelIterator, stripping
// the bucket prefix from each key.
type prefixIter struct {
	iter   ledger.Iterator
	prefix []byte
}

var _ ModelIterator = (*prefixIter)(nil)

func (i *prefixIter) LoadNext(dest Model) ([]byte, error) {
	if i.iter == nil || !i.iter.Valid() {
		return nil, errors.ErrIteratorDone
	}
	key := append([]byte{}, i.iter.Key()[len(i.prefix):]...)
	if err := dest.Unmarshal(i.iter.Value()); err != nil {
		return nil, errors.Wrapf(err, "cannot unmarshal %T", dest)
	}
	if err := i.iter.Next(); err != nil {
		return nil, err
	}
	return key, nil
}

func (i *prefixIter) Release() {
	if i.iter != nil {
		i.iter.Close()
		i.iter = nil
	}
}

// failedIter surfaces a store error on the first read.
type failedIter struct {
	err error
}

var _ ModelIterator = (*failedIter)(nil)

func (i *failedIter) LoadNext(Model) ([]byte, error) {
	return nil, i.err
}

func (i *failedIter) Release() {}
