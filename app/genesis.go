package app

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// ChainInitializers bundles many initializers into one. They are
// executed in order and all must succeed.
func ChainInitializers(inits ...ledger.Initializer) ledger.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []ledger.Initializer
}

var _ ledger.Initializer = chainInitializer{}

// FromGenesis will pass opts to all initializers in the chain.
func (c chainInitializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, db); err != nil {
			return errors.Wrapf(err, "%T", i)
		}
	}
	return nil
}
