package std

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
	"github.com/tesserapay/ledger/x"
	"github.com/tesserapay/ledger/x/custody"
	"github.com/tesserapay/ledger/x/funds"
	"github.com/tesserapay/ledger/x/paymaster"
	"github.com/tesserapay/ledger/x/username"
	"github.com/tesserapay/ledger/x/vault"
)

func genesis(t *testing.T, data interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	return raw
}

func TestFullStack(t *testing.T) {
	db := store.MemStore()
	ctrl := FundsControl()

	admin := ledgertest.NewCondition()
	alice := ledgertest.NewCondition()

	opts := ledger.Options{
		"funds": genesis(t, []map[string]interface{}{
			{"address": alice.Address(), "balance": coin.NewAmount(1000)},
			{"address": vault.PoolAddress(), "balance": coin.NewAmount(100000)},
		}),
		"conf": genesis(t, map[string]interface{}{
			"vault":     vault.Configuration{Admin: admin.Address(), Rate: 500},
			"username":  username.Configuration{Admin: admin.Address()},
			"custody":   custody.Configuration{Owner: admin.Address()},
			"paymaster": paymaster.Configuration{Admin: admin.Address()},
		}),
	}
	require.NoError(t, Initializers().FromGenesis(opts, db))

	b, err := ctrl.Balance(db, alice.Address())
	require.NoError(t, err)
	assert.Equal(t, "1000", b.String())

	authz := &ledgertest.CtxAuth{Key: "auth"}
	stack := Chain().WithHandler(Router(x.ChainAuth(authz)))

	run := func(height int64, signer ledger.Condition, msg ledger.Msg) error {
		ctx := ledger.WithHeight(context.Background(), height)
		ctx = authz.SetConditions(ctx, signer)
		_, err := stack.Deliver(ctx, db, &ledgertest.Tx{Msg: msg})
		return err
	}

	// a deposit flows through the full decorator chain
	require.NoError(t, run(100, alice, &vault.DepositMsg{
		Depositor: alice.Address(),
		Amount:    coin.NewAmount(600),
		LockDays:  30,
	}))
	b, err = ctrl.Balance(db, alice.Address())
	require.NoError(t, err)
	assert.Equal(t, "400", b.String())

	// a failing operation leaves no trace thanks to the savepoint
	err = run(100, alice, &vault.DepositMsg{
		Depositor: alice.Address(),
		Amount:    coin.NewAmount(10000),
		LockDays:  30,
	})
	assert.True(t, errors.ErrInsufficientAmount.Is(err))
	b, err = ctrl.Balance(db, alice.Address())
	require.NoError(t, err)
	assert.Equal(t, "400", b.String())

	// routes of every extension are wired
	require.NoError(t, run(100, alice, &username.RegisterMsg{
		Name:  "alice",
		Owner: alice.Address(),
	}))
	require.NoError(t, run(100, alice, &funds.SendMsg{
		Source:      alice.Address(),
		Destination: admin.Address(),
		Amount:      coin.NewAmount(1),
	}))
	err = run(100, alice, &ledgertest.Msg{RoutePath: "nothing/registered"})
	assert.True(t, errors.ErrNotFound.Is(err))
}
