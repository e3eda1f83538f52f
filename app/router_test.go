package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := &ledgertest.Handler{}
	r.Handle(&ledgertest.Msg{RoutePath: "test/good"}, h)

	ctx := context.Background()
	db := store.MemStore()

	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, tx)
	require.NoError(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())

	missing := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/missing"}}
	_, err = r.Check(ctx, db, missing)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, db, missing)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterRejectsBadRegistration(t *testing.T) {
	r := NewRouter()

	assert.Panics(t, func() {
		r.Handle(&ledgertest.Msg{RoutePath: "no-dashes!"}, &ledgertest.Handler{})
	})

	r.Handle(&ledgertest.Msg{RoutePath: "test/dup"}, &ledgertest.Handler{})
	assert.Panics(t, func() {
		r.Handle(&ledgertest.Msg{RoutePath: "test/dup"}, &ledgertest.Handler{})
	})
}
