package paymaster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/app"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/gconf"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/funds"
)

func TestSponsorship(t *testing.T) {
	db := store.MemStore()
	ctrl := funds.NewController()
	authz := &ledgertest.CtxAuth{Key: "auth"}

	admin := ledgertest.NewCondition()
	user := ledgertest.NewCondition()
	collector := ledgertest.NewAddress()

	require.NoError(t, ctrl.CoinMint(db, admin.Address(), coin.NewAmount(1000)))
	require.NoError(t, gconf.Save(db, "paymaster", &Configuration{Admin: admin.Address()}))

	rt := app.NewRouter()
	RegisterRoutes(rt, x.ChainAuth(authz), ctrl)

	deliver := func(signer ledger.Condition, msg ledger.Msg) error {
		ctx := ledger.WithHeight(context.Background(), 42)
		ctx = authz.SetConditions(ctx, signer)
		_, err := rt.Handler(msg).Deliver(ctx, db, &ledgertest.Tx{Msg: msg})
		return err
	}
	allowed := func(addr ledger.Address) bool {
		ok, err := IsAllowed(db, addr)
		require.NoError(t, err)
		return ok
	}
	balance := func(addr ledger.Address) string {
		b, err := ctrl.Balance(db, addr)
		require.NoError(t, err)
		return b.String()
	}

	// anyone can fund the pool
	require.NoError(t, deliver(admin, &FundMsg{
		Source: admin.Address(),
		Amount: coin.NewAmount(500),
	}))
	assert.Equal(t, "500", balance(PoolAddress()))

	err := deliver(user, &FundMsg{
		Source: admin.Address(),
		Amount: coin.NewAmount(1),
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// only the admin manages the allow-list
	err = deliver(user, &AllowMsg{Beneficiary: user.Address()})
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.False(t, allowed(user.Address()))

	require.NoError(t, deliver(admin, &AllowMsg{Beneficiary: user.Address()}))
	assert.True(t, allowed(user.Address()))

	var grant Grant
	require.NoError(t, NewGrantBucket().One(db, user.Address(), &grant))
	assert.Equal(t, int64(42), grant.CreatedAt)

	// a sponsored fee moves pool funds to the collector
	err = deliver(user, &PayMsg{
		Beneficiary: user.Address(),
		Destination: collector,
		Amount:      coin.NewAmount(30),
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	require.NoError(t, deliver(admin, &PayMsg{
		Beneficiary: user.Address(),
		Destination: collector,
		Amount:      coin.NewAmount(30),
	}))
	assert.Equal(t, "470", balance(PoolAddress()))
	assert.Equal(t, "30", balance(collector))

	// unsponsored addresses are never paid for
	err = deliver(admin, &PayMsg{
		Beneficiary: admin.Address(),
		Destination: collector,
		Amount:      coin.NewAmount(1),
	})
	assert.True(t, errors.ErrNotFound.Is(err))

	// a revoked grant stops sponsorship immediately
	require.NoError(t, deliver(admin, &DisallowMsg{Beneficiary: user.Address()}))
	assert.False(t, allowed(user.Address()))

	err = deliver(admin, &PayMsg{
		Beneficiary: user.Address(),
		Destination: collector,
		Amount:      coin.NewAmount(1),
	})
	assert.True(t, errors.ErrNotFound.Is(err))

	err = deliver(admin, &DisallowMsg{Beneficiary: user.Address()})
	assert.True(t, errors.ErrNotFound.Is(err))

	// draining returns the remainder to the admin
	require.NoError(t, deliver(admin, &DrainMsg{Amount: coin.NewAmount(470)}))
	assert.Equal(t, "0", balance(PoolAddress()))
	assert.Equal(t, "970", balance(admin.Address()))

	err = deliver(admin, &DrainMsg{Amount: coin.NewAmount(1)})
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
}

func TestCanSponsor(t *testing.T) {
	db := store.MemStore()
	ctrl := funds.NewController()
	user := ledgertest.NewAddress()

	ok, err := CanSponsor(db, ctrl, user, coin.NewAmount(10))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewGrantBucket().Put(db, user, &Grant{CreatedAt: 1})
	require.NoError(t, err)

	// allowed, but the pool cannot cover the fee yet
	ok, err = CanSponsor(db, ctrl, user, coin.NewAmount(10))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ctrl.CoinMint(db, PoolAddress(), coin.NewAmount(10)))
	ok, err = CanSponsor(db, ctrl, user, coin.NewAmount(10))
	require.NoError(t, err)
	assert.True(t, ok)
}
