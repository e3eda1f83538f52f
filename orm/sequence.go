package orm

import (
	"encoding/binary"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// Sequence maintains a counter in the database. The first value it hands
// out is zero.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequences are kept in a shared
// keyspace, scoped by bucket and name.
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as an 8 byte big
// endian key.
func (s Sequence) NextVal(db ledger.KVStore) ([]byte, error) {
	val, err := s.increment(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt increments the sequence and returns its state as an integer.
func (s Sequence) NextInt(db ledger.KVStore) (uint64, error) {
	return s.increment(db)
}

// Latest returns the last value handed out, without modifying the
// sequence. ErrEmpty is returned if the sequence was never incremented.
func (s Sequence) Latest(db ledger.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, errors.Wrap(errors.ErrEmpty, "sequence not initialized")
	}
	return DecodeSequence(raw) - 1, nil
}

// increment stores the count of values handed out and returns the next
// free value, counting from zero.
func (s Sequence) increment(db ledger.KVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	var next uint64
	if raw != nil {
		next = DecodeSequence(raw)
	}
	if err := db.Set(s.id, EncodeSequence(next+1)); err != nil {
		return 0, err
	}
	return next, nil
}

// EncodeSequence renders a sequence value as an 8 byte big endian key.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// DecodeSequence parses an 8 byte big endian key back into an integer.
func DecodeSequence(bz []byte) uint64 {
	if len(bz) != 8 {
		panic(errors.Wrapf(errors.ErrDatabase, "sequence must be 8 bytes, got %d", len(bz)))
	}
	return binary.BigEndian.Uint64(bz)
}
