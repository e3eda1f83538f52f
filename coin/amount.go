package coin

import (
	"math/big"

	"github.com/tesserapay/ledger/errors"
)

// maxAmount is the largest value an Amount can hold, 2^127-1.
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// Amount is a non-negative 128 bit integer quantity of tokens.
//
// The zero value is a valid amount of zero.
type Amount struct {
	value big.Int
}

// NewAmount returns an amount holding the given value. Panics on
// negative input as this is a programmer error.
func NewAmount(value int64) Amount {
	if value < 0 {
		panic("amount cannot be negative")
	}
	var a Amount
	a.value.SetInt64(value)
	return a
}

// AmountFromBig returns an amount holding a copy of the given value.
func AmountFromBig(value *big.Int) (Amount, error) {
	var a Amount
	a.value.Set(value)
	if err := a.Validate(); err != nil {
		return Amount{}, err
	}
	return a, nil
}

// ParseAmount reads a base 10 string representation.
func ParseAmount(raw string) (Amount, error) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrInput, "invalid amount %q", raw)
	}
	return AmountFromBig(v)
}

// Validate ensures the amount is within 0 and 2^127-1.
func (a *Amount) Validate() error {
	if a.value.Sign() < 0 {
		return errors.Wrap(errors.ErrAmount, "negative amount")
	}
	if a.value.Cmp(maxAmount) > 0 {
		return errors.Wrap(errors.ErrOverflow, "amount out of range")
	}
	return nil
}

// Add returns the checked sum of both amounts.
func (a Amount) Add(o Amount) (Amount, error) {
	var res Amount
	res.value.Add(&a.value, &o.value)
	if res.value.Cmp(maxAmount) > 0 {
		return Amount{}, errors.Wrap(errors.ErrOverflow, "amount overflow")
	}
	return res, nil
}

// Sub returns a minus o. ErrAmount is returned when the result would be
// negative.
func (a Amount) Sub(o Amount) (Amount, error) {
	if a.value.Cmp(&o.value) < 0 {
		return Amount{}, errors.Wrap(errors.ErrAmount, "amount underflow")
	}
	var res Amount
	res.value.Sub(&a.value, &o.value)
	return res, nil
}

// Cmp returns -1, 0 or 1 depending on whether a is smaller, equal to or
// greater than o.
func (a *Amount) Cmp(o Amount) int {
	return a.value.Cmp(&o.value)
}

// Equals returns true if both amounts hold the same value.
func (a *Amount) Equals(o Amount) bool {
	return a.value.Cmp(&o.value) == 0
}

// IsZero returns true for an amount of zero.
func (a *Amount) IsZero() bool {
	return a.value.Sign() == 0
}

// IsPositive returns true for any amount greater than zero.
func (a *Amount) IsPositive() bool {
	return a.value.Sign() > 0
}

// BigInt returns a copy of the held value for wide arithmetic.
func (a *Amount) BigInt() *big.Int {
	return new(big.Int).Set(&a.value)
}

// Clone returns an independent copy.
func (a *Amount) Clone() Amount {
	var res Amount
	res.value.Set(&a.value)
	return res
}

func (a Amount) String() string {
	return a.value.String()
}

// MarshalJSON renders the amount as a base 10 string so 128 bit values
// survive clients that parse numbers as float64.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.value.String() + `"`), nil
}

// UnmarshalJSON accepts both string and bare number encodings.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	s := string(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errors.Wrapf(errors.ErrInput, "invalid amount %q", s)
	}
	a.value.Set(v)
	return a.Validate()
}
