package app

import (
	"fmt"
	"regexp"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// isPath matches the routing paths declared by messages, for example
// "vault/deposit".
var isPath = regexp.MustCompile(`^[a-z]+/[a-z_]+$`).MatchString

// Router maps message paths to handlers. It implements both the
// Registry interface used during setup and the Handler interface used
// during processing.
type Router struct {
	routes map[string]ledger.Handler
}

var _ ledger.Registry = (*Router)(nil)
var _ ledger.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]ledger.Handler),
	}
}

// Handle assigns the given handler to deal with all messages of the
// same type as the given one. Registering twice for one path, or an
// invalid path, is a programmer error and panics.
func (r *Router) Handle(m ledger.Msg, h ledger.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid routing path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("duplicate routing path %q", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the message type, or a
// handler that always fails with ErrNotFound.
func (r *Router) Handler(m ledger.Msg) ledger.Handler {
	if h, ok := r.routes[m.Path()]; ok {
		return h
	}
	return notFoundHandler(m.Path())
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx ledger.Context, db ledger.KVStore, tx ledger.Tx) (*ledger.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg).Deliver(ctx, db, tx)
}

// notFoundHandler always returns ErrNotFound for the missing path.
type notFoundHandler string

var _ ledger.Handler = notFoundHandler("")

func (p notFoundHandler) Check(ledger.Context, ledger.KVStore, ledger.Tx) (*ledger.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(p))
}

func (p notFoundHandler) Deliver(ledger.Context, ledger.KVStore, ledger.Tx) (*ledger.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", string(p))
}
