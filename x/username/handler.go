package username

import (
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
	"github.com/tesserapay/ledger/orm"
	"github.com/tesserapay/ledger/x"
)

const registryCost int64 = 100

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r ledger.Registry, auth x.Authenticator) {
	names := NewNameBucket()
	addrs := newAddrBucket()
	r.Handle(&RegisterMsg{}, RegisterHandler{auth, names, addrs})
	r.Handle(&ReleaseMsg{}, ReleaseHandler{auth, names, addrs})
	r.Handle(&AdminRemoveMsg{}, AdminRemoveHandler{auth, names, addrs})
	r.Handle(&SetAdminMsg{}, SetAdminHandler{auth})
}

// RegisterHandler claims free usernames.
type RegisterHandler struct {
	auth  x.Authenticator
	names orm.ModelBucket
	addrs orm.ModelBucket
}

var _ ledger.Handler = RegisterHandler{}

func (h RegisterHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: registryCost}, nil
}

func (h RegisterHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := h.names.Has(db, []byte(msg.Name)); err == nil {
		return nil, errors.Wrapf(errors.ErrDuplicate, "username %q", msg.Name)
	} else if !errors.ErrNotFound.Is(err) {
		return nil, err
	}
	if err := h.addrs.Has(db, msg.Owner); err == nil {
		return nil, errors.Wrapf(errors.ErrDuplicate, "address already holds a name")
	} else if !errors.ErrNotFound.Is(err) {
		return nil, err
	}

	if _, err := h.names.Put(db, []byte(msg.Name), &Token{Owner: msg.Owner}); err != nil {
		return nil, err
	}
	if _, err := h.addrs.Put(db, msg.Owner, &ownedName{Name: msg.Name}); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{Data: []byte(msg.Name)}, nil
}

func (h RegisterHandler) validate(ctx ledger.Context, tx ledger.Tx) (*RegisterMsg, error) {
	var msg RegisterMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	return &msg, nil
}

// ReleaseHandler frees usernames on request of their owner.
type ReleaseHandler struct {
	auth  x.Authenticator
	names orm.ModelBucket
	addrs orm.ModelBucket
}

var _ ledger.Handler = ReleaseHandler{}

func (h ReleaseHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg ReleaseMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: registryCost}, nil
}

func (h ReleaseHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg ReleaseMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	var token Token
	if err := h.names.One(db, []byte(msg.Name), &token); err != nil {
		return nil, errors.Wrapf(err, "username %q", msg.Name)
	}
	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner did not sign")
	}
	return &ledger.DeliverResult{}, removePair(db, h.names, h.addrs, msg.Name, token.Owner)
}

// AdminRemoveHandler frees usernames on request of the administrator.
type AdminRemoveHandler struct {
	auth  x.Authenticator
	names orm.ModelBucket
	addrs orm.ModelBucket
}

var _ ledger.Handler = AdminRemoveHandler{}

func (h AdminRemoveHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	var msg AdminRemoveMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: registryCost}, nil
}

func (h AdminRemoveHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	var msg AdminRemoveMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}

	var token Token
	if err := h.names.One(db, []byte(msg.Name), &token); err != nil {
		return nil, errors.Wrapf(err, "username %q", msg.Name)
	}
	return &ledger.DeliverResult{}, removePair(db, h.names, h.addrs, msg.Name, token.Owner)
}

// SetAdminHandler hands over the administrator role.
type SetAdminHandler struct {
	auth x.Authenticator
}

var _ ledger.Handler = SetAdminHandler{}

func (h SetAdminHandler) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &ledger.CheckResult{GasAllocated: registryCost}, nil
}

func (h SetAdminHandler) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := gconf.Save(db, "username", &Configuration{Admin: msg.Admin}); err != nil {
		return nil, err
	}
	return &ledger.DeliverResult{}, nil
}

func (h SetAdminHandler) validate(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*SetAdminMsg, error) {
	var msg SetAdminMsg
	if err := ledger.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin did not sign")
	}
	return &msg, nil
}

// removePair deletes both directions of a name registration.
func removePair(db ledger.KVStore, names, addrs orm.ModelBucket, name string, owner ledger.Address) error {
	if err := names.Delete(db, []byte(name)); err != nil {
		return err
	}
	return addrs.Delete(db, owner)
}
