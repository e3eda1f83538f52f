package vault

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/gconf"
)

// Initializer fulfils the Initializer interface to load the module
// configuration from genesis.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis performs the one-time module setup. A repeated
// initialization fails with ErrInitialized.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	return gconf.InitConfig(db, opts, "vault", &Configuration{})
}
