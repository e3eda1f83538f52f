package vault

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
)

const (
	// BucketName is where the vault records are stored.
	BucketName = "vault"

	// BlocksPerDay is the number of clock units in one day.
	BlocksPerDay = 17280

	// BlocksPerYear is the number of clock units in one year.
	BlocksPerYear = BlocksPerDay * 365

	// MinLockDays and MaxLockDays bound the lock duration choice.
	MinLockDays = 30
	MaxLockDays = 730

	// RateDenominator scales the annual yield rate. A rate of 500
	// against this denominator is 5.00% per year.
	RateDenominator = 10000
)

// Status is the lifecycle state of a vault.
type Status uint8

const (
	// StatusInvalid is the zero value and never stored.
	StatusInvalid Status = 0
	// StatusLocked vaults hold their principal until maturity.
	StatusLocked Status = 1
	// StatusUnlocked is a transient state used during withdrawal. It
	// is never independently persisted.
	StatusUnlocked Status = 2
	// StatusWithdrawn vaults are terminal but kept as audit trail.
	StatusWithdrawn Status = 3
)

func (s Status) Validate() error {
	switch s {
	case StatusLocked, StatusUnlocked, StatusWithdrawn:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "invalid status %d", s)
	}
}

func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusUnlocked:
		return "unlocked"
	case StatusWithdrawn:
		return "withdrawn"
	default:
		return "invalid"
	}
}

// Vault is a single locked-value position. All fields but Status are
// immutable after creation.
type Vault struct {
	Owner ledger.Address `json:"owner"`
	// Principal is the deposited amount, always positive.
	Principal coin.Amount `json:"principal"`
	// RateAtLock is the annual yield rate frozen at creation.
	RateAtLock int64 `json:"rate_at_lock"`
	// Start and End are clock readings. End is the maturity point,
	// always after Start.
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
	Status Status `json:"status"`
}

var _ orm.Model = (*Vault)(nil)

func (v *Vault) Marshal() ([]byte, error) {
	return json.Marshal(v)
}

func (v *Vault) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, v)
}

func (v *Vault) Validate() error {
	if err := v.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if !v.Principal.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "principal must be positive")
	}
	if v.RateAtLock < 0 {
		return errors.Wrap(errors.ErrState, "negative rate")
	}
	if v.End <= v.Start {
		return errors.Wrap(errors.ErrState, "maturity not after start")
	}
	if err := v.Status.Validate(); err != nil {
		return err
	}
	// unlocked exists only in memory during a withdrawal and must
	// never be stored
	if v.Status == StatusUnlocked {
		return errors.Wrap(errors.ErrState, "unlocked vault cannot be persisted")
	}
	return nil
}

// NewBucket returns the vault bucket. Vault ids are assigned
// sequentially starting at zero.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Vault{},
		orm.WithIDSequence(orm.NewSequence(BucketName, "id")))
}
