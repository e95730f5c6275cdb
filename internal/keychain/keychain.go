// Package keychain provides credential storage backed by the OS secure
// credential store.
//
// Each credential is addressed by a (tag, label) identity:
//   - Tag: a reverse-DNS service identifier (e.g. "com.lockbox.key.salt")
//     naming the logical category the item belongs to.
//   - Label: a human-readable name distinguishing items within a tag.
//
// Every operation builds a fresh attribute query for that identity and
// hands it to an opaque Vault collaborator; the vault does the encryption
// at rest and access control, this package only speaks its query language
// and translates its status codes.
//
// Items are scoped device-only and never synchronized: the accessibility
// policy is when-unlocked-this-device-only.
//
// Values are stored as the caller supplies them. Encrypting the value
// before it reaches the vault (with the key, IV, and salt identities
// defined here) is the caller's responsibility and is not implemented by
// this package.
package keychain

import (
	"errors"
	"fmt"
)

// ErrDataValidation is returned when caller-supplied data cannot be
// converted to or from the required byte encoding, or when a vault result
// is not a byte payload. Wrap it with context via fmt.Errorf.
var ErrDataValidation = errors.New("data validation failed")

// StatusError reports a non-success status code returned by the vault.
type StatusError struct {
	Code Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vault status %d: %s", e.Code, e.Code.Describe())
}

// Store is the interface for credential operations. VaultStore is the
// canonical implementation; AuditedStore decorates it with audit logging.
type Store interface {
	Add(value string, query AttributeQuery) error
	Read(query AttributeQuery) (string, bool, error)
	Update(query, attrs AttributeQuery) error
	Remove(query AttributeQuery) error
	Clear(labels, tags []string) bool
}
