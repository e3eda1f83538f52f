package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
)

func TestChainDecorators(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/chain"}}

	d1 := &ledgertest.Decorator{}
	d2 := &ledgertest.Decorator{}
	h := &ledgertest.Handler{}

	stack := ChainDecorators(d1, nil, d2).WithHandler(h)

	_, err := stack.Check(ctx, db, tx)
	require.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	require.NoError(t, err)

	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainAborts(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	tx := &ledgertest.Tx{Msg: &ledgertest.Msg{RoutePath: "test/chain"}}

	boom := errors.Wrap(errors.ErrUnauthorized, "nope")
	d1 := &ledgertest.Decorator{}
	d2 := &ledgertest.Decorator{CheckErr: boom, DeliverErr: boom}
	h := &ledgertest.Handler{}

	stack := ChainDecorators(d1).Chain(d2).WithHandler(h)

	_, err := stack.Check(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// the chain stops at the failing decorator
	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 0, h.CallCount())
}

func TestChainInitializers(t *testing.T) {
	db := store.MemStore()
	opts := ledger.Options{}

	var order []string
	a := initFn(func(ledger.Options, ledger.KVStore) error {
		order = append(order, "a")
		return nil
	})
	b := initFn(func(ledger.Options, ledger.KVStore) error {
		order = append(order, "b")
		return nil
	})

	require.NoError(t, ChainInitializers(a, b).FromGenesis(opts, db))
	assert.Equal(t, []string{"a", "b"}, order)

	bad := initFn(func(ledger.Options, ledger.KVStore) error {
		return errors.ErrHuman
	})
	err := ChainInitializers(a, bad, b).FromGenesis(opts, db)
	assert.True(t, errors.ErrHuman.Is(err))
}

type initFn func(ledger.Options, ledger.KVStore) error

func (f initFn) FromGenesis(opts ledger.Options, db ledger.KVStore) error {
	return f(opts, db)
}
