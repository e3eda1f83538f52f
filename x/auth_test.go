package x

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/ledgertest"
)

func TestChainAuth(t *testing.T) {
	a := ledgertest.NewCondition()
	b := ledgertest.NewCondition()
	c := ledgertest.NewCondition()

	ctx := context.Background()

	cases := map[string]struct {
		auth       Authenticator
		mainSigner ledger.Condition
		has        []ledger.Address
		hasNot     []ledger.Address
	}{
		"empty auth": {
			auth:   ChainAuth(),
			hasNot: []ledger.Address{a.Address()},
		},
		"single auth": {
			auth:       ChainAuth(&ledgertest.Auth{Signer: a}),
			mainSigner: a,
			has:        []ledger.Address{a.Address()},
			hasNot:     []ledger.Address{b.Address()},
		},
		"combined auth": {
			auth: ChainAuth(
				&ledgertest.Auth{Signer: a},
				&ledgertest.Auth{Signers: []ledger.Condition{b, c}},
			),
			mainSigner: a,
			has:        []ledger.Address{a.Address(), b.Address(), c.Address()},
			hasNot:     []ledger.Address{ledgertest.NewCondition().Address()},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.mainSigner == nil {
				assert.Nil(t, MainSigner(ctx, tc.auth))
			} else {
				assert.Equal(t, tc.mainSigner, MainSigner(ctx, tc.auth))
			}

			for _, addr := range tc.has {
				assert.True(t, tc.auth.HasAddress(ctx, addr))
			}
			for _, addr := range tc.hasNot {
				assert.False(t, tc.auth.HasAddress(ctx, addr))
			}

			assert.True(t, HasAllAddresses(ctx, tc.auth, tc.has))
			if len(tc.hasNot) > 0 {
				all := append(append([]ledger.Address{}, tc.has...), tc.hasNot...)
				assert.False(t, HasAllAddresses(ctx, tc.auth, all))
			}

			assert.Len(t, GetAddresses(ctx, tc.auth), len(tc.has))
		})
	}
}
