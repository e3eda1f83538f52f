package funds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
)

func TestControllerMoveCoins(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	alice := ledgertest.NewAddress()
	bob := ledgertest.NewAddress()

	// missing accounts read as zero
	bal, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, bal.IsZero())

	// cannot move from an account that was never funded
	err = ctrl.MoveCoins(db, alice, bob, coin.NewAmount(10))
	assert.True(t, errors.ErrEmpty.Is(err))

	require.NoError(t, ctrl.CoinMint(db, alice, coin.NewAmount(100)))

	// the transfer amount must be positive
	err = ctrl.MoveCoins(db, alice, bob, coin.NewAmount(0))
	assert.True(t, errors.ErrAmount.Is(err))

	// more than the balance is rejected
	err = ctrl.MoveCoins(db, alice, bob, coin.NewAmount(101))
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewAmount(40)))

	aliceBal, err := ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, "60", aliceBal.String())

	bobBal, err := ctrl.Balance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, "40", bobBal.String())

	// draining the whole account is fine
	require.NoError(t, ctrl.MoveCoins(db, alice, bob, coin.NewAmount(60)))
	aliceBal, err = ctrl.Balance(db, alice)
	require.NoError(t, err)
	assert.True(t, aliceBal.IsZero())
}

func TestControllerMint(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	addr := ledgertest.NewAddress()
	require.NoError(t, ctrl.CoinMint(db, addr, coin.NewAmount(5)))
	require.NoError(t, ctrl.CoinMint(db, addr, coin.NewAmount(7)))

	bal, err := ctrl.Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, "12", bal.String())
}
