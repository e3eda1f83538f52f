package username

import (
	"encoding/json"
	"regexp"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
	"github.com/tesserapay/ledger/orm"
)

const (
	// nameBucket maps a username to its owning address.
	nameBucket = "username"
	// addrBucket maps an address back to its username.
	addrBucket = "nameaddr"
)

// validName restricts usernames to 3 to 32 lowercase word characters.
var validName = regexp.MustCompile(`^[a-z0-9_\-]{3,32}$`).MatchString

// ValidateName returns nil if the raw string is an acceptable
// username.
func ValidateName(name string) error {
	if !validName(name) {
		return errors.Wrapf(errors.ErrInput, "invalid username %q", name)
	}
	return nil
}

// Token is the record stored per registered name.
type Token struct {
	Owner ledger.Address `json:"owner"`
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

func (t *Token) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, t)
}

func (t *Token) Validate() error {
	return t.Owner.Validate()
}

// ownedName is the reverse record stored per address.
type ownedName struct {
	Name string `json:"name"`
}

var _ orm.Model = (*ownedName)(nil)

func (n *ownedName) Marshal() ([]byte, error) {
	return json.Marshal(n)
}

func (n *ownedName) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, n)
}

func (n *ownedName) Validate() error {
	return ValidateName(n.Name)
}

// NewNameBucket returns the bucket keyed by username.
func NewNameBucket() orm.ModelBucket {
	return orm.NewModelBucket(nameBucket, &Token{})
}

func newAddrBucket() orm.ModelBucket {
	return orm.NewModelBucket(addrBucket, &ownedName{})
}
