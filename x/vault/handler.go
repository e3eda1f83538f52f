package vault

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/funds"
)

const (
	depositCost  int64 = 300
	withdrawCost int64 = 200
	adminCost    int64 = 100
)

// PoolCondition is the condition backing the module's custody account.
// All locked principal and the yield treasury live on its address.
func PoolCondition() ledger.Condition {
	return ledger.NewCondition("vault", "pool", []byte("custody"))
}

// PoolAddress is the custody account address.
func PoolAddress() ledger.Address {
	return PoolCondition().Address()
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator, ctrl funds.Controller) {
	bucket := NewBucket()
	r.Handle(&DepositMsg{}, DepositHandler{auth, ctrl, bucket})
	r.Handle(&WithdrawMsg{}, WithdrawHandler{auth, ctrl, bucket})
	r.Handle(&SetRateMsg{}, SetRateHandler{auth})
	r.Handle(&AdminDepositMsg{}, AdminDepositHandler{auth, ctrl})
	r.Handle(&AdminWithdrawMsg{}, AdminWithdrawHandler{auth, ctrl})
}

// DepositHandler creates new vaults.
type DepositHandler struct {
	auth   x.Authenticator
	ctrl   funds.Controller
	bucket orm.ModelBucket
}

var _ ledger.Handler = DepositHandler{}

func (h DepositHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: depositCost}, nil
}

func (h DepositHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	height, err := ledger.MustHeight(ctx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	// pull the principal into custody before any record exists, a
	// rejected transfer must leave no trace
	if err := h.ctrl.MoveCoins(db, msg.Depositor, PoolAddress(), msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot collect principal")
	}

	v := Vault{
		Owner:      msg.Depositor,
		Principal:  msg.Amount,
		RateAtLock: conf.Rate,
		Start:      height,
		End:        height + msg.LockDays*BlocksPerDay,
		Status:     StatusLocked,
	}
	key, err := h.bucket.Put(db, nil, &v)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return &ledger.DeliverResult{Data: key}, nil
}

func (h DepositHandler) validate(ctx ledger.Context, tx ledger.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Depositor) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "depositor did not sign")
	}
	return &msg, nil
}

// WithdrawHandler pays out matured vaults.
type WithdrawHandler struct {
	auth   x.Authenticator
	ctrl   funds.Controller
	bucket orm.ModelBucket
}

var _ ledger.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg WithdrawMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: withdrawCost}, nil
}

func (h WithdrawHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg WithdrawMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	// lookup first, then check the caller against the record
	key := orm.EncodeSequence(msg.VaultID)
	var v Vault
	if err := h.bucket.One(db, key, &v); err != nil {
		return nil, errors.Wrapf(err, "vault %d", msg.VaultID)
	}
	// terminal vaults reject everyone, owner check applies only to
	// live ones
	if v.Status == StatusWithdrawn {
		return nil, errors.Wrapf(ErrWithdrawn, "vault %d", msg.VaultID)
	}
	if !h.auth.HasAddress(ctx, v.Owner) {
		return nil, errors.Wrapf(ErrNotOwner, "vault %d", msg.VaultID)
	}

	switch v.Status {
	case StatusLocked:
		height, err := ledger.MustHeight(ctx)
		if err != nil {
			return nil, err
		}
		if height < v.End {
			return nil, errors.Wrapf(ErrStillLocked, "mature at %d, now %d", v.End, height)
		}
		// transient, overwritten to withdrawn below, never stored
		v.Status = StatusUnlocked
	default:
		return nil, errors.Wrapf(errors.ErrState, "vault %d in status %s", msg.VaultID, v.Status)
	}

	// yield always covers the full scheduled lock, not elapsed time
	yield, err := Yield(v.Principal, v.RateAtLock, v.End-v.Start)
	if err != nil {
		return nil, err
	}
	payout, err := v.Principal.Add(yield)
	if err != nil {
		return nil, errors.Wrap(err, "payout")
	}

	// move the funds first, a failed transfer must not mark the
	// vault withdrawn
	if err := h.ctrl.MoveCoins(db, PoolAddress(), v.Owner, payout); err != nil {
		return nil, errors.Wrap(err, "cannot pay out")
	}

	v.Status = StatusWithdrawn
	if _, err := h.bucket.Put(db, key, &v); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return &ledger.DeliverResult{}, nil
}

// SetRateHandler changes the global yield rate.
type SetRateHandler struct {
	auth x.Authenticator
}

var _ ledger.Handler = SetRateHandler{}

func (h SetRateHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: adminCost}, nil
}

func (h SetRateHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Rate = msg.Rate
	if err := saveConf(db, conf); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h SetRateHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*SetRateMsg, *Configuration, error) {
	var msg SetRateMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}
	return &msg, conf, nil
}

// AdminDepositHandler tops up the custody pool.
type AdminDepositHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = AdminDepositHandler{}

func (h AdminDepositHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: adminCost}, nil
}

func (h AdminDepositHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, conf.Admin, PoolAddress(), msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h AdminDepositHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*AdminDepositMsg, *Configuration, error) {
	var msg AdminDepositMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}
	return &msg, conf, nil
}

// AdminWithdrawHandler drains the custody pool back to the admin.
type AdminWithdrawHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = AdminWithdrawHandler{}

func (h AdminWithdrawHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: adminCost}, nil
}

func (h AdminWithdrawHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, PoolAddress(), conf.Admin, msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h AdminWithdrawHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*AdminWithdrawMsg, *Configuration, error) {
	var msg AdminWithdrawMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}
	return &msg, conf, nil
}
