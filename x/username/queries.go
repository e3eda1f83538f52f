package username

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// Resolve returns the address a username points to. ErrNotFound when
// the name is free.
func Resolve(db ledger.ReadOnlyKVStore, name string) (ledger.Address, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	var token Token
	if err := NewNameBucket().One(db, []byte(name), &token); err != nil {
		return nil, errors.Wrapf(err, "username %q", name)
	}
	return token.Owner, nil
}

// Lookup returns the username held by an address. ErrNotFound when
// the address holds none.
func Lookup(db ledger.ReadOnlyKVStore, addr ledger.Address) (string, error) {
	if err := addr.Validate(); err != nil {
		return "", err
	}
	var owned ownedName
	if err := newAddrBucket().One(db, addr, &owned); err != nil {
		return "", errors.Wrapf(err, "address %s", addr)
	}
	return owned.Name, nil
}
