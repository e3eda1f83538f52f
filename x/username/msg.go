package username

import (
	"encoding/json"

	"github.com/tesserapay/ledger"
	"github.com/tesserapay/ledger/errors"
)

// RegisterMsg claims a free username for the owner. One name per
// address.
type RegisterMsg struct {
	Name  string         `json:"name"`
	Owner ledger.Address `json:"owner"`
}

var _ ledger.Msg = (*RegisterMsg)(nil)

func (RegisterMsg) Path() string {
	return "username/register"
}

func (m *RegisterMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *RegisterMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *RegisterMsg) Validate() error {
	if err := ValidateName(m.Name); err != nil {
		return err
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// ReleaseMsg frees a username. Only the current owner can release.
type ReleaseMsg struct {
	Name string `json:"name"`
}

var _ ledger.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return "username/release"
}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *ReleaseMsg) Validate() error {
	return ValidateName(m.Name)
}

// AdminRemoveMsg frees a username without the owner's consent. Only
// the registry administrator may do this.
type AdminRemoveMsg struct {
	Name string `json:"name"`
}

var _ ledger.Msg = (*AdminRemoveMsg)(nil)

func (AdminRemoveMsg) Path() string {
	return "username/admin_remove"
}

func (m *AdminRemoveMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *AdminRemoveMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *AdminRemoveMsg) Validate() error {
	return ValidateName(m.Name)
}

// SetAdminMsg hands the administrator role to another address.
type SetAdminMsg struct {
	Admin ledger.Address `json:"admin"`
}

var _ ledger.Msg = (*SetAdminMsg)(nil)

func (SetAdminMsg) Path() string {
	return "username/set_admin"
}

func (m *SetAdminMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *SetAdminMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *SetAdminMsg) Validate() error {
	if err := m.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	return nil
}
