package funds

import (
	"encoding/json"

	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/orm"
)

// BucketName is where we store the account wallets.
const BucketName = "funds"

// Wallet is the balance of a single account.
type Wallet struct {
	Balance coin.Amount `json:"balance"`
}

var _ orm.Model = (*Wallet)(nil)

func (w *Wallet) Marshal() ([]byte, error) {
	return json.Marshal(w)
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, w)
}

func (w *Wallet) Validate() error {
	return w.Balance.Validate()
}

// NewWalletBucket returns the bucket for storing wallets, keyed by
// account address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
