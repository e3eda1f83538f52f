package store

import (
	"bytes"
	"fmt"

	"github.com/google/btree"
	"github.com/tesserapay/ledger/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node of btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// BTreeCacheable adds a simple btree-based CacheWrap strategy to a KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later written to this
// store, or discarded.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.NewBatch(), nil)
}

// MemStore returns a simple implementation useful for tests. There is no
// persistence here.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap places a btree cache over a KVStore.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this KVStore.
// Use ReadOnlyKVStore to emphasize that all writes must go through the
// Batch.
//
// free may be nil, but set to an existing list to reuse it for memory
// savings.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTreeCacheWrap on top of this one and allows
// us to selectively write back the modifications.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	// Reuse the freelist between all levels of the cache.
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a batch that can write to this tree later.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store.
// And then cleans up the BTree to be ready for another batch.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data.
func (b BTreeCacheWrap) Discard() {
	// Drain the btree so the nodes return to the freelist.
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree and to the batch.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and to the batch.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return b.batch.Delete(key)
}

// Get reads from the BTree if there, else backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value, nil
		case deletedItem:
			return nil, nil
		default:
			return nil, errors.Wrapf(errors.ErrDatabase, "unknown btree item: %T", t)
		}
	}
	return b.back.Get(key)
}

// Has reads from the BTree if there, else backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch res.(type) {
		case setItem:
			return true, nil
		case deletedItem:
			return false, nil
		default:
			return false, errors.Wrapf(errors.ErrDatabase, "unknown btree item: %T", res)
		}
	}
	return b.back.Has(key)
}

// Iterator over a domain of keys in ascending order.
// Combines results from btree and backing store.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	// Take the backing iterator for start.
	parentIter, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	iter := newItemIter(parentIter)

	if start == nil && end == nil {
		b.bt.Ascend(iter.insert)
	} else if start == nil { // end != nil
		b.bt.AscendLessThan(bkey{end}, iter.insert)
	} else if end == nil { // start != nil
		b.bt.AscendGreaterOrEqual(bkey{start}, iter.insert)
	} else { // both != nil
		b.bt.AscendRange(bkey{start}, bkey{end}, iter.insert)
	}
	if err := iter.skipAllDeleted(); err != nil {
		return nil, err
	}
	return iter, nil
}

// ReverseIterator over a domain of keys in descending order.
// Combines results from btree and backing store.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	parentIter, err := b.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	iter := newReverseItemIter(parentIter)

	if start == nil && end == nil {
		b.bt.Descend(iter.insert)
	} else if start == nil { // end != nil
		b.bt.DescendLessOrEqual(bkeyLess{end}, iter.insert)
	} else if end == nil { // start != nil
		b.bt.DescendGreaterThan(bkeyLess{start}, iter.insert)
	} else { // both != nil
		b.bt.DescendRange(bkeyLess{end}, bkeyLess{start}, iter.insert)
	}
	if err := iter.skipAllDeleted(); err != nil {
		return nil, err
	}
	return iter, nil
}

/////////////////////////////////////////////////////////
// Items to write to btree

// bkey implements btree.Item and is used for lookups.
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}

// Less returns true iff second argument is greater than first.
//
// panics if the item to compare doesn't implement bkeyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(bkeyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

// bkeyer is an interface for those who can produce a bkey.
type bkeyer interface {
	Key() []byte
}

func (k bkey) Key() []byte {
	return k.key
}

func (k bkey) String() string {
	return fmt.Sprintf("<%X>", k.key)
}

// bkeyLess is used to change how ranges are matched. The exact same key
// is counted "less" than the one embedded in the tree, so DescendRange
// includes the end point.
type bkeyLess struct {
	key []byte
}

var _ btree.Item = bkeyLess{}

func (k bkeyLess) Less(item btree.Item) bool {
	cmp := item.(bkeyer).Key()
	return bytes.Compare(k.key, cmp) <= 0
}

func (k bkeyLess) Key() []byte {
	return k.key
}

func (k bkeyLess) String() string {
	return fmt.Sprintf("less<%X>", k.key)
}

// setItem is a key-value pair to be written to the parent on Write.
type setItem struct {
	bkey
	value []byte
}

var _ bkeyer = setItem{}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey: bkey{key}, value: value}
}

func (i setItem) String() string {
	return fmt.Sprintf("set<%X>=<%X>", i.key, i.value)
}

// deletedItem marks a key removed in the cache, shadowing the parent.
type deletedItem struct {
	bkey
}

var _ bkeyer = deletedItem{}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

func (i deletedItem) String() string {
	return fmt.Sprintf("del<%X>", i.key)
}
