package coin

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesserapay/ledger/errors"
)

func TestAmountArithmetic(t *testing.T) {
	a := NewAmount(100)
	b := NewAmount(42)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "142", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "58", diff.String())

	// subtraction never goes below zero
	_, err = b.Sub(a)
	assert.True(t, errors.ErrAmount.Is(err))

	zero := NewAmount(0)
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
	assert.True(t, a.IsPositive())
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(a.Clone()))
}

func TestAmountBounds(t *testing.T) {
	// the highest valid amount is 2^127-1
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

	a, err := AmountFromBig(max)
	require.NoError(t, err)
	require.NoError(t, a.Validate())

	_, err = AmountFromBig(new(big.Int).Add(max, big.NewInt(1)))
	assert.True(t, errors.ErrOverflow.Is(err))

	_, err = AmountFromBig(big.NewInt(-1))
	assert.True(t, errors.ErrAmount.Is(err))

	_, err = a.Add(NewAmount(1))
	assert.True(t, errors.ErrOverflow.Is(err))
}

func TestAmountJSON(t *testing.T) {
	a, err := ParseAmount("170141183460469231731687303715884105727")
	require.NoError(t, err)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"170141183460469231731687303715884105727"`, string(raw))

	var b Amount
	require.NoError(t, json.Unmarshal(raw, &b))
	assert.True(t, a.Equals(b))

	// bare numbers are accepted as well
	var c Amount
	require.NoError(t, json.Unmarshal([]byte(`1234`), &c))
	assert.Equal(t, "1234", c.String())

	var bad Amount
	assert.Error(t, json.Unmarshal([]byte(`"12x"`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`"-5"`), &bad))
}

func TestParseAmount(t *testing.T) {
	_, err := ParseAmount("not-a-number")
	assert.True(t, errors.ErrInput.Is(err))

	a, err := ParseAmount("0")
	require.NoError(t, err)
	assert.True(t, a.IsZero())
}
