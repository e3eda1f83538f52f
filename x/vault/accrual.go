package vault

import (
	"math/big"

	"github.com/tesserapay/ledger/coin"
	"github.com/tesserapay/ledger/errors"
)

// Yield computes the interest owed on a principal locked for the given
// number of clock units at the given annual rate.
//
//   yield = floor(principal * rate * duration / (BlocksPerYear * RateDenominator))
//
// The multiply chain runs on arbitrary precision integers so a 128 bit
// principal cannot overflow an intermediate. Only the final result is
// narrowed back, and that narrowing is checked.
func Yield(principal coin.Amount, rate int64, duration int64) (coin.Amount, error) {
	if rate < 0 {
		return coin.Amount{}, errors.Wrap(errors.ErrAmount, "negative rate")
	}
	if duration < 0 {
		return coin.Amount{}, errors.Wrap(errors.ErrAmount, "negative duration")
	}
	if rate == 0 || duration == 0 {
		return coin.NewAmount(0), nil
	}

	num := principal.BigInt()
	num.Mul(num, big.NewInt(rate))
	num.Mul(num, big.NewInt(duration))

	den := new(big.Int).Mul(big.NewInt(BlocksPerYear), big.NewInt(RateDenominator))
	num.Quo(num, den)

	res, err := coin.AmountFromBig(num)
	if err != nil {
		return coin.Amount{}, errors.Wrap(errors.ErrOverflow, "yield out of range")
	}
	return res, nil
}
