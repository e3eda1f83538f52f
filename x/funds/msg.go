package funds

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// SendMsg moves funds from the source account to the destination
// account. The source must have authorized the transaction.
type SendMsg struct {
	Source      ledger.Address `json:"source"`
	Destination ledger.Address `json:"destination"`
	Amount      coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return "funds/send"
}

func (m *SendMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *SendMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "transfer amount must be positive")
	}
	return nil
}
