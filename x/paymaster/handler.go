package paymaster

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/funds"
)

const sponsorCost int64 = 100

// PoolCondition is the condition backing the sponsorship pool.
func PoolCondition() ledger.Condition {
	return ledger.NewCondition("paymaster", "pool", []byte("fees"))
}

// PoolAddress is the sponsorship pool address.
func PoolAddress() ledger.Address {
	return PoolCondition().Address()
}

// IsAllowed returns true when the address is on the allow-list.
func IsAllowed(db ledger.ReadOnlyKVStore, addr ledger.Address) (bool, error) {
	switch err := NewGrantBucket().Has(db, addr); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// CanSponsor returns true when the address is allowed and the pool
// covers the fee.
func CanSponsor(db ledger.ReadOnlyKVStore, ctrl funds.Controller, addr ledger.Address, fee coin.Amount) (bool, error) {
	ok, err := IsAllowed(db, addr)
	if err != nil || !ok {
		return false, err
	}
	pool, err := ctrl.Balance(db, PoolAddress())
	if err != nil {
		return false, err
	}
	return pool.Cmp(fee) >= 0, nil
}

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator, ctrl funds.Controller) {
	bucket := NewGrantBucket()
	r.Handle(&AllowMsg{}, AllowHandler{auth, bucket})
	r.Handle(&DisallowMsg{}, DisallowHandler{auth, bucket})
	r.Handle(&PayMsg{}, PayHandler{auth, ctrl, bucket})
	r.Handle(&FundMsg{}, FundHandler{auth, ctrl})
	r.Handle(&DrainMsg{}, DrainHandler{auth, ctrl})
}

// AllowHandler adds grants.
type AllowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ ledger.Handler = AllowHandler{}

func (h AllowHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := validateAdmin(ctx, db, h.auth, tx, &AllowMsg{}); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: sponsorCost}, nil
}

func (h AllowHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg AllowMsg
	if _, err := validateAdmin(ctx, db, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	height, err := ledger.MustHeight(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.bucket.Put(db, msg.Beneficiary, &Grant{CreatedAt: height}); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

// DisallowHandler removes grants.
type DisallowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ ledger.Handler = DisallowHandler{}

func (h DisallowHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := validateAdmin(ctx, db, h.auth, tx, &DisallowMsg{}); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: sponsorCost}, nil
}

func (h DisallowHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg DisallowMsg
	if _, err := validateAdmin(ctx, db, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	if err := h.bucket.Delete(db, msg.Beneficiary); err != nil {
		return nil, errors.Wrapf(err, "grant for %s", msg.Beneficiary)
	}
	return &ledger.DeliverResult{}, nil
}

// PayHandler settles sponsored fees from the pool.
type PayHandler struct {
	auth   x.Authenticator
	ctrl   funds.Controller
	bucket orm.ModelBucket
}

var _ ledger.Handler = PayHandler{}

func (h PayHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := validateAdmin(ctx, db, h.auth, tx, &PayMsg{}); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: sponsorCost}, nil
}

func (h PayHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg PayMsg
	if _, err := validateAdmin(ctx, db, h.auth, tx, &msg); err != nil {
		return nil, err
	}
	if err := h.bucket.Has(db, msg.Beneficiary); err != nil {
		return nil, errors.Wrapf(err, "%s is not sponsored", msg.Beneficiary)
	}
	if err := h.ctrl.MoveCoins(db, PoolAddress(), msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

// FundHandler pays into the pool.
type FundHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = FundHandler{}

func (h FundHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: sponsorCost}, nil
}

func (h FundHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, msg.Source, PoolAddress(), msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h FundHandler) validate(ctx ledger.Context, tx ledger.Tx) (*FundMsg, error) {
	var msg FundMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source did not sign")
	}
	return &msg, nil
}

// DrainHandler moves pool funds back to the administrator.
type DrainHandler struct {
	auth x.Authenticator
	ctrl funds.Controller
}

var _ ledger.Handler = DrainHandler{}

func (h DrainHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := validateAdmin(ctx, db, h.auth, tx, &DrainMsg{}); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: sponsorCost}, nil
}

func (h DrainHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg DrainMsg
	conf, err := validateAdmin(ctx, db, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, PoolAddress(), conf.Admin, msg.Amount); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

// validateAdmin loads the message and ensures the administrator
// signed.
func validateAdmin(ctx ledger.Context, db ledger.KVStore, auth x.Authenticator, tx ledger.Tx, msg ledger.Msg) (*Configuration, error) {
	if err := ledger.LoadMsg(tx, msg); err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}
	return conf, nil
}
