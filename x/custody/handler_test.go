package custody

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

func TestCustodialWallet(t *testing.T) {
	db := store.MemStore()
	ctrl := funds.NewController()
	authz := &ledgertest.CtxAuth{Key: "auth"}

	owner := ledgertest.NewCondition()
	stranger := ledgertest.NewCondition()

	require.NoError(t, ctrl.CoinMint(db, owner.Address(), coin.NewAmount(1000)))
	require.NoError(t, ctrl.CoinMint(db, stranger.Address(), coin.NewAmount(1000)))
	require.NoError(t, gconf.Save(db, "custody", &Configuration{Owner: owner.Address()}))

	rt := app.NewRouter()
	RegisterRoutes(rt, x.ChainAuth(authz), ctrl)

	deliver := func(signer ledger.Condition, msg ledger.Msg) error {
		ctx := authz.SetConditions(context.Background(), signer)
		_, err := rt.Handler(msg).Deliver(ctx, db, &ledgertest.Tx{Msg: msg})
		return err
	}
	balance := func() string {
		b, err := Balance(db, ctrl)
		require.NoError(t, err)
		return b.String()
	}

	// anyone can pay in, but the source must sign
	require.NoError(t, deliver(stranger, &DepositMsg{
		Source: stranger.Address(),
		Amount: coin.NewAmount(300),
	}))
	require.NoError(t, deliver(owner, &DepositMsg{
		Source: owner.Address(),
		Amount: coin.NewAmount(200),
	}))
	assert.Equal(t, "500", balance())

	err := deliver(stranger, &DepositMsg{
		Source: owner.Address(),
		Amount: coin.NewAmount(1),
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	// only the owner pays out
	err = deliver(stranger, &WithdrawMsg{
		Destination: stranger.Address(),
		Amount:      coin.NewAmount(100),
	})
	assert.True(t, errors.ErrUnauthorized.Is(err))

	require.NoError(t, deliver(owner, &WithdrawMsg{
		Destination: stranger.Address(),
		Amount:      coin.NewAmount(100),
	}))
	assert.Equal(t, "400", balance())

	// transfer behaves exactly like withdraw
	require.NoError(t, deliver(owner, &TransferMsg{
		Destination: stranger.Address(),
		Amount:      coin.NewAmount(150),
	}))
	assert.Equal(t, "250", balance())

	got, err := ctrl.Balance(db, stranger.Address())
	require.NoError(t, err)
	assert.Equal(t, "950", got.String())

	// more than the pooled balance is rejected
	err = deliver(owner, &WithdrawMsg{
		Destination: owner.Address(),
		Amount:      coin.NewAmount(1000),
	})
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
}
