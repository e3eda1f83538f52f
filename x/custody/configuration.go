package custody

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
)

// Configuration names the wallet owner. Immutable after
// initialization.
type Configuration struct {
	Owner ledger.Address `json:"owner"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	if err := c.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var c Configuration
	if err := gconf.Load(db, "custody", &c); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &c, nil
}

// Initializer fulfils the Initializer interface to load the wallet
// owner from genesis.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis performs the one-time module setup.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	return gconf.InitConfig(db, opts, "custody", &Configuration{})
}
