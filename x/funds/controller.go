package funds

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
)

// Controller is the functionality needed by other modules to move
// value around. This is implemented by BaseController and can be
// replaced to change transfer rules.
type Controller interface {
	// Balance returns the current balance of the account. A missing
	// account has a balance of zero.
	Balance(db ledger.ReadOnlyKVStore, addr ledger.Address) (coin.Amount, error)

	// MoveCoins removes funds from the source account and adds them
	// to the destination account. The amount must be positive.
	MoveCoins(db ledger.KVStore, src, dest ledger.Address, amount coin.Amount) error

	// CoinMint issues new funds to the given account. Used by genesis
	// initialization.
	CoinMint(db ledger.KVStore, dest ledger.Address, amount coin.Amount) error
}

// BaseController implements the Controller interface on top of the
// wallet bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns the default wallet controller.
func NewController() BaseController {
	return BaseController{bucket: NewWalletBucket()}
}

func (c BaseController) Balance(db ledger.ReadOnlyKVStore, addr ledger.Address) (coin.Amount, error) {
	if err := addr.Validate(); err != nil {
		return coin.Amount{}, errors.Wrap(err, "balance")
	}
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return coin.NewAmount(0), nil
	default:
		return coin.Amount{}, err
	}
}

func (c BaseController) MoveCoins(db ledger.KVStore, src, dest ledger.Address, amount coin.Amount) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	var sender Wallet
	if err := c.bucket.One(db, src, &sender); err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(errors.ErrEmpty, "account %s", src)
		}
		return err
	}
	rest, err := sender.Balance.Sub(amount)
	if err != nil {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds %s, want %s", sender.Balance, amount)
	}

	var recipient Wallet
	if err := c.bucket.One(db, dest, &recipient); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	sum, err := recipient.Balance.Add(amount)
	if err != nil {
		return err
	}

	sender.Balance = rest
	recipient.Balance = sum
	if _, err := c.bucket.Put(db, src, &sender); err != nil {
		return err
	}
	_, err = c.bucket.Put(db, dest, &recipient)
	return err
}

func (c BaseController) CoinMint(db ledger.KVStore, dest ledger.Address, amount coin.Amount) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	var w Wallet
	if err := c.bucket.One(db, dest, &w); err != nil && !errors.ErrNotFound.Is(err) {
		return err
	}
	sum, err := w.Balance.Add(amount)
	if err != nil {
		return err
	}
	w.Balance = sum
	_, err = c.bucket.Put(db, dest, &w)
	return err
}
