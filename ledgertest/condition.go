package ledgertest

import (
	"crypto/rand"

	"github.com/tesserapay/ledger"
)

// NewCondition returns a random condition. Each call returns a
// different instance.
func NewCondition() ledger.Condition {
	data := make([]byte, 20)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return ledger.NewCondition("test", "rand", data)
}

// NewAddress returns the address of a random condition.
func NewAddress() ledger.Address {
	return NewCondition().Address()
}
