package vault

import "github.com/tesserapay/ledger/errors"

var (
	// ErrStillLocked is returned on withdrawal before maturity.
	ErrStillLocked = errors.Register(1200, "vault still locked")

	// ErrWithdrawn is returned on withdrawal from a terminal vault.
	ErrWithdrawn = errors.Register(1201, "vault already withdrawn")

	// ErrDuration is returned when a lock duration is outside the
	// allowed bounds.
	ErrDuration = errors.Register(1202, "invalid lock duration")

	// ErrNotOwner is returned when someone other than the vault owner
	// tries to withdraw.
	ErrNotOwner = errors.Register(1203, "not the vault owner")
)
