package vault

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
)

// Configuration is the module's global state: the administrator and the
// current annual yield rate. The rate is read at vault creation and
// frozen per vault, so changing it only affects future deposits.
type Configuration struct {
	Admin ledger.Address `json:"admin"`
	Rate  int64          `json:"rate"`
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
	// any non-negative rate is allowed, absurd values included
	if c.Rate < 0 {
		return errors.Wrap(errors.ErrAmount, "negative rate")
	}
	return nil
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var c Configuration
	if err := gconf.Load(db, "vault", &c); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &c, nil
}

func saveConf(db gconf.Store, c *Configuration) error {
	return gconf.Save(db, "vault", c)
}

// CurrentRate returns the global annual yield rate.
func CurrentRate(db gconf.ReadStore) (int64, error) {
	c, err := loadConf(db)
	if err != nil {
		return 0, err
	}
	return c.Rate, nil
}
