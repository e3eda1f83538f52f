package vault

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// DepositMsg locks a principal for the chosen number of days and
// creates a new vault owned by the depositor.
type DepositMsg struct {
	Depositor ledger.Address `json:"depositor"`
	Amount    coin.Amount    `json:"amount"`
	LockDays  int64          `json:"lock_days"`
}

var _ ledger.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "vault/deposit"
}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *DepositMsg) Validate() error {
	if err := m.Depositor.Validate(); err != nil {
		return errors.Wrap(err, "depositor")
	}
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	if m.LockDays < MinLockDays || m.LockDays > MaxLockDays {
		return errors.Wrapf(ErrDuration, "%d days not in [%d, %d]", m.LockDays, MinLockDays, MaxLockDays)
	}
	return nil
}

// WithdrawMsg pays out a matured vault to its owner.
type WithdrawMsg struct {
	VaultID uint64 `json:"vault_id"`
}

var _ ledger.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "vault/withdraw"
}

func (m *WithdrawMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *WithdrawMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *WithdrawMsg) Validate() error {
	return nil
}

// SetRateMsg changes the global annual yield rate. Only future
// deposits are affected.
type SetRateMsg struct {
	Rate int64 `json:"rate"`
}

var _ ledger.Msg = (*SetRateMsg)(nil)

func (SetRateMsg) Path() string {
	return "vault/set_rate"
}

func (m *SetRateMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *SetRateMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *SetRateMsg) Validate() error {
	// no upper bound on purpose, administrators may set any rate
	if m.Rate < 0 {
		return errors.Wrap(errors.ErrAmount, "negative rate")
	}
	return nil
}

// AdminDepositMsg tops up the module's custody balance from the
// administrator's account. Used for treasury management so yield
// payouts are covered.
type AdminDepositMsg struct {
	Amount coin.Amount `json:"amount"`
}

var _ ledger.Msg = (*AdminDepositMsg)(nil)

func (AdminDepositMsg) Path() string {
	return "vault/admin_deposit"
}

func (m *AdminDepositMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AdminDepositMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *AdminDepositMsg) Validate() error {
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return nil
}

// AdminWithdrawMsg moves funds from the module's custody balance back
// to the administrator's account.
type AdminWithdrawMsg struct {
	Amount coin.Amount `json:"amount"`
}

var _ ledger.Msg = (*AdminWithdrawMsg)(nil)

func (AdminWithdrawMsg) Path() string {
	return "vault/admin_withdraw"
}

func (m *AdminWithdrawMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AdminWithdrawMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *AdminWithdrawMsg) Validate() error {
	if !m.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "withdrawal must be positive")
	}
	return nil
}
