package custody

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// DepositMsg pays funds from the source account into the wallet.
// Anyone can deposit.
type DepositMsg struct {
	Source ledger.Address `json:"source"`
	Amount coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "custody/deposit"
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *DepositMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return nil
}

// WithdrawMsg pays funds from the wallet to the destination. Owner
// only.
type WithdrawMsg struct {
	Destination ledger.Address `json:"destination"`
	Amount      coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "custody/withdraw"
}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *WithdrawMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "withdrawal must be positive")
	}
	return nil
}

// TransferMsg is an alias for withdrawal kept for API compatibility
// with wallet clients. Same rules, different route.
type TransferMsg struct {
	Destination ledger.Address `json:"destination"`
	Amount      coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return "custody/transfer"
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *TransferMsg) Validate() error {
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "transfer must be positive")
	}
	return nil
}
