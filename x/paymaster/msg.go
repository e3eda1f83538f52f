package paymaster

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// AllowMsg adds an address to the sponsorship allow-list.
type AllowMsg struct {
	Beneficiary ledger.Address `json:"beneficiary"`
}

var _ ledger.Msg = (*AllowMsg)(nil)

func (AllowMsg) Path() string {
	return "paymaster/allow"
}

func (m *AllowMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AllowMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *AllowMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}

// DisallowMsg removes an address from the allow-list.
type DisallowMsg struct {
	Beneficiary ledger.Address `json:"beneficiary"`
}

var _ ledger.Msg = (*DisallowMsg)(nil)

func (DisallowMsg) Path() string {
	return "paymaster/disallow"
}

func (m *DisallowMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DisallowMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *DisallowMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	return nil
}

// PayMsg settles a fee for a sponsored address out of the pool.
type PayMsg struct {
	// Beneficiary must be on the allow-list.
	Beneficiary ledger.Address `json:"beneficiary"`
	// Destination receives the fee, for example a fee collector.
	Destination ledger.Address `json:"destination"`
	Amount      coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*PayMsg)(nil)

func (PayMsg) Path() string {
	return "paymaster/pay"
}

func (m *PayMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *PayMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *PayMsg) Validate() error {
	if err := m.Beneficiary.Validate(); err != nil {
		return errors.Wrap(err, "beneficiary")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "fee must be positive")
	}
	return nil
}

// FundMsg pays into the sponsorship pool. Anyone can fund.
type FundMsg struct {
	Source ledger.Address `json:"source"`
	Amount coin.Amount    `json:"amount"`
}

var _ ledger.Msg = (*FundMsg)(nil)

func (FundMsg) Path() string {
	return "paymaster/fund"
}

func (m *FundMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *FundMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *FundMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "funding must be positive")
	}
	return nil
}

// DrainMsg moves pool funds back to the administrator.
type DrainMsg struct {
	Amount coin.Amount `json:"amount"`
}

var _ ledger.Msg = (*DrainMsg)(nil)

func (DrainMsg) Path() string {
	return "paymaster/drain"
}

func (m *DrainMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DrainMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *DrainMsg) Validate() error {
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "drain must be positive")
	}
	return nil
}
