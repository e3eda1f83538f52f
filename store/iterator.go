package store

import (
	"bytes"

	"github.com/google/btree"
)

// source marks where the current item comes from.
type source int32

const (
	us source = iota
	parent
	both
	none
)

// itemIter combines the items cached in a btree with the iterator of the
// backing store, taking overwrites and deletes into consideration.
type itemIter struct {
	items   []btree.Item
	idx     int
	parent  Iterator
	reverse bool
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(parent Iterator) *itemIter {
	return &itemIter{parent: parent}
}

func newReverseItemIter(parent Iterator) *itemIter {
	return &itemIter{parent: parent, reverse: true}
}

// insert is the callback passed to the btree walk. It collects all items
// in walk order before any reads happen.
func (i *itemIter) insert(item btree.Item) bool {
	i.items = append(i.items, item)
	return true
}

// Valid implements Iterator and returns true iff it can be read.
func (i *itemIter) Valid() bool {
	return i.cacheValid() || i.parentValid()
}

// Next moves the iterator to the next sequential key, as defined by the
// order of iteration.
func (i *itemIter) Next() error {
	// advance either us, parent, or both
	switch i.firstKey() {
	case us:
		i.idx++
	case both:
		i.idx++
		fallthrough
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("advanced past the end")
	}

	// keep advancing over all deleted entries
	return i.skipAllDeleted()
}

// Key returns the key of the cursor.
func (i *itemIter) Key() (key []byte) {
	switch i.firstKey() {
	case us, both:
		return i.get().Key()
	case parent:
		return i.parent.Key()
	default: // none
		panic("advanced past the end")
	}
}

// Value returns the value of the cursor.
func (i *itemIter) Value() (value []byte) {
	switch i.firstKey() {
	case us, both:
		return i.get().(setItem).value
	case parent:
		return i.parent.Value()
	default: // none
		panic("advanced past the end")
	}
}

// Close releases the Iterator.
func (i *itemIter) Close() {
	i.items = nil
	i.parent.Close()
}

// get requires the cache side to be valid and returns the current item.
func (i *itemIter) get() bkeyer {
	return i.items[i.idx].(bkeyer)
}

func (i *itemIter) cacheValid() bool {
	return i.idx < len(i.items)
}

// parentValid makes sure the parent is non-nil before checking validity.
func (i *itemIter) parentValid() bool {
	return (i.parent != nil) && i.parent.Valid()
}

// skipAllDeleted loops and skips any number of deleted items.
func (i *itemIter) skipAllDeleted() error {
	more := true
	for more {
		var err error
		more, err = i.skipDeleted()
		if err != nil {
			return err
		}
	}
	return nil
}

// skipDeleted jumps over all elements we can safely fast forward.
// Returns true if skipped, so we can skip again.
func (i *itemIter) skipDeleted() (bool, error) {
	src := i.firstKey()
	if src == us || src == both {
		// if our next item is deleted, advance...
		if _, ok := i.get().(deletedItem); ok {
			i.idx++
			// if parent had the same key, advance parent as well
			if src == both {
				if err := i.parent.Next(); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// firstKey selects the iterator that comes first in iteration order.
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if !i.parentValid() {
		if !i.cacheValid() {
			return none
		}
		return us
	} else if !i.cacheValid() {
		return parent
	}

	// both are valid... compare keys...
	parKey := i.parent.Key()
	usKey := i.get().Key()

	cmp := bytes.Compare(parKey, usKey)
	if i.reverse {
		cmp = -cmp
	}
	if cmp < 0 {
		return parent
	} else if cmp > 0 {
		return us
	}
	return both
}
