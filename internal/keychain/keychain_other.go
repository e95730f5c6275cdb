//go:build !darwin

package keychain

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// SystemVault adapts the platform keyring (Secret Service on Linux,
// Credential Manager on Windows) to the Vault interface. The application
// tag maps to the keyring service and the label to the account.
//
// The keyring API has no native duplicate rejection, so Add reports the
// duplicate-item status itself to keep parity with the macOS behavior.
// Accessibility and synchronizable attributes have no keyring equivalent
// and are not forwarded.
type SystemVault struct{}

// NewSystemVault creates a vault backed by the platform keyring.
func NewSystemVault() *SystemVault {
	return &SystemVault{}
}

func (v *SystemVault) Add(query AttributeQuery) Status {
	data, ok := query[AttrValueData].Bytes()
	if !ok {
		return StatusParam
	}

	if _, err := keyring.Get(query.Tag(), query.Label()); err == nil {
		return StatusDuplicateItem
	}
	if err := keyring.Set(query.Tag(), query.Label(), string(data)); err != nil {
		return StatusIO
	}
	return StatusSuccess
}

func (v *SystemVault) Lookup(query AttributeQuery) (Status, any) {
	secret, err := keyring.Get(query.Tag(), query.Label())
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return StatusItemNotFound, nil
		}
		return StatusIO, nil
	}
	return StatusSuccess, []byte(secret)
}

func (v *SystemVault) Delete(query AttributeQuery) Status {
	if err := keyring.Delete(query.Tag(), query.Label()); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return StatusItemNotFound
		}
		return StatusIO
	}
	return StatusSuccess
}
