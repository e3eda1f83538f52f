package custody

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/funds"
)

const walletCost int64 = 100

// WalletCondition is the condition backing the wallet's pooled
// account.
func WalletCondition() ledger.Condition {
	return ledger.NewCondition("custody", "wallet", []byte("pool"))
}

// WalletAddress is the pooled account address.
func WalletAddress() ledger.Address {
	return WalletCondition().Address()
}

// Balance returns the wallet's pooled balance.
func Balance(db ledger.ReadOnlyKVStore, ctrl funds.Controller) (coin.Amount, error) {
	return ctrl.Balance(db, WalletAddress())
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator, ctrl funds.Controller) {
	r.Handle(&DepositMsg{}, DepositHandler{auth, ctrl})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{auth, ctrl})
	r.Handle(&TransferMsg{}, TransferHandler{auth, ctrl})
}

// DepositHandler pays into the wallet.
type DepositHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: walletCost}, nil
}

func (h DepositHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, msg.Source, WalletAddress(), msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h DepositHandler) validate(ctx ledger.Context, tx ledger.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source did not sign")
	}
	return &msg, nil
}

// WithdrawHandler pays out of the wallet, owner only.
type WithdrawHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg WithdrawMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: walletCost}, nil
}

func (h WithdrawHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg WithdrawMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, payOut(ctx, db, h.auth, h.ctrl, msg.Destination, msg.Amount)
}

// TransferHandler is the withdrawal alias.
type TransferHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg TransferMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: walletCost}, nil
}

func (h TransferHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg TransferMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, payOut(ctx, db, h.auth, h.ctrl, msg.Destination, msg.Amount)
}

// payOut moves wallet funds to the destination after checking the
// owner signed.
func payOut(ctx ledger.Context, db ledger.KVStore, auth x.Authenticator, ctrl funds.Controller, dest ledger.Address, amount coin.Amount) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, conf.Owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	return ctrl.MoveCoins(db, WalletAddress(), dest, amount)
}
