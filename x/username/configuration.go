package username

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
)

// Configuration holds the optional registry administrator. The admin
// may reclaim any name and hand the admin role over.
type Configuration struct {
	Admin ledger.Address `json:"admin"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *Configuration) Validate() error {
	if err := c.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var c Configuration
	if err := gconf.Load(db, "username", &c); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &c, nil
}

// Initializer fulfils the Initializer interface to load the registry
// configuration from genesis.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis performs the one-time module setup.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	return gconf.InitConfig(db, opts, "username", &Configuration{})
}
