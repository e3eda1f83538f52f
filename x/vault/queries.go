package vault

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
)

// GetVault loads a single vault by its id. Returns ErrNotFound when
// the id was never assigned.
func GetVault(db ledger.ReadOnlyKVStore, id uint64) (*Vault, error) {
	var v Vault
	if err := NewBucket().One(db, orm.EncodeSequence(id), &v); err != nil {
		return nil, errors.Wrapf(err, "vault %d", id)
	}
	return &v, nil
}

// VaultsByOwner returns the ids of all vaults owned by the given
// address, in ascending id order. The view is recomputed by a full
// scan on every call, nothing is persisted.
func VaultsByOwner(db ledger.ReadOnlyKVStore, owner ledger.Address) ([]uint64, error) {
	iter := NewBucket().IterAll(db)
	defer iter.Release()

	var ids []uint64
	for {
		var v Vault
		key, err := iter.LoadNext(&v)
		if errors.ErrIteratorDone.Is(err) {
			return ids, nil
		}
		if err != nil {
			return nil, err
		}
		if v.Owner.Equals(owner) {
			ids = append(ids, orm.DecodeSequence(key))
		}
	}
}
