package funds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/ledgertest"
	"github.com/tesserapay/ledger/store"
)

func TestSendHandler(t *testing.T) {
	alice := ledgertest.NewCondition()
	bob := ledgertest.NewCondition()

	cases := map[string]struct {
		signer ledger.Condition
		msg    *SendMsg
		// wantErr is expected from Deliver. Check only validates, so
		// balance failures surface on Deliver alone.
		wantErr    *errors.Error
		checkErr   bool
		wantSrc    string
		wantDst    string
	}{
		"happy path": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewAmount(30),
			},
			wantSrc: "70",
			wantDst: "30",
		},
		"source must sign": {
			signer: bob,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewAmount(30),
			},
			wantErr:  errors.ErrUnauthorized,
			checkErr: true,
		},
		"amount must be positive": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewAmount(0),
			},
			wantErr:  errors.ErrAmount,
			checkErr: true,
		},
		"insufficient funds": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      coin.NewAmount(200),
			},
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			require.NoError(t, ctrl.CoinMint(db, alice.Address(), coin.NewAmount(100)))

			auth := &ledgertest.Auth{Signer: tc.signer}
			h := NewSendHandler(auth, ctrl)
			ctx := context.Background()
			tx := &ledgertest.Tx{Msg: tc.msg}

			_, err := h.Check(ctx, db, tx)
			if tc.checkErr {
				assert.True(t, tc.wantErr.Is(err))
			} else {
				assert.NoError(t, err)
			}

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			src, err := ctrl.Balance(db, tc.msg.Source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSrc, src.String())

			dst, err := ctrl.Balance(db, tc.msg.Destination)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDst, dst.String())
		})
	}
}
