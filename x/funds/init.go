package funds

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// Initializer fulfils the Initializer interface to load genesis
// account balances.
type Initializer struct{}

var _ ledger.Initializer = (*Initializer)(nil)

// FromGenesis initializes account balances from the genesis "funds"
// option, a list of address and balance pairs.
func (Initializer) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	accounts := []struct {
		Address ledger.Address `json:"address"`
		Balance coin.Amount    `json:"balance"`
	}{}
	if err := opts.ReadOptions("funds", &accounts); err != nil {
		return err
	}

	ctrl := NewController()
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := ctrl.CoinMint(db, acc.Address, acc.Balance); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
