package paymaster

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
	"github.com/tesserapay/ledger/orm"
)

// BucketName is where sponsorship grants are stored, keyed by the
// sponsored address.
const BucketName = "paygrant"

// Grant marks an address as sponsored.
type Grant struct {
	// CreatedAt is the clock reading when the grant was issued.
	CreatedAt int64 `json:"created_at"`
}

var _ orm.Model = (*Grant)(nil)

func (g *Grant) Marshal() ([]byte, error) {
	return json.Marshal(g)
}

func (g *Grant) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, g)
}

func (g *Grant) Validate() error {
	if g.CreatedAt < 0 {
		return errors.Wrap(errors.ErrState, "negative creation time")
	}
	return nil
}

// NewGrantBucket returns the bucket holding sponsorship grants.
func NewGrantBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Grant{})
}

// Configuration holds the module administrator.
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
	if err := gconf.Load(db, "paymaster", &c); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &c, nil
}

// Initializer fulfils the Initializer interface to load the module
// configuration from genesis.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis performs the one-time module setup.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	return gconf.InitConfig(db, opts, "paymaster", &Configuration{})
}
