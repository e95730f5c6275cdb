package keychain

import (
	"fmt"
	"log/slog"
	"unicode/utf8"
)

// VaultStore executes credential operations against a Vault. Construct
// one explicitly with NewVaultStore and pass it to callers; there is no
// package-level singleton.
type VaultStore struct {
	vault Vault
	log   *slog.Logger
}

// NewVaultStore creates a store over the given vault. A nil logger falls
// back to slog.Default.
func NewVaultStore(vault Vault, log *slog.Logger) *VaultStore {
	if log == nil {
		log = slog.Default()
	}
	return &VaultStore{vault: vault, log: log}
}

// Add stores value under the identity the query addresses. Any existing
// item for that identity is removed first so repeated adds do not trip
// the vault's native duplicate rejection; the pre-delete is best-effort
// and its failure (usually item-not-found) is logged, never propagated.
func (s *VaultStore) Add(value string, query AttributeQuery) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: value is not valid UTF-8", ErrDataValidation)
	}

	if err := s.Remove(query); err != nil {
		s.log.Debug("pre-delete before add failed",
			"tag", query.Tag(), "label", query.Label(), "error", err)
	}

	q := query.Clone()
	q[AttrValueData] = BytesValue([]byte(value))
	if status := s.vault.Add(q); status != StatusSuccess {
		return &StatusError{Code: status}
	}
	return nil
}

// Read returns the value stored under the identity the query addresses.
// A payload that is not valid UTF-8 yields ok=false with a nil error; a
// payload that is not a byte sequence at all is a validation error.
func (s *VaultStore) Read(query AttributeQuery) (value string, ok bool, err error) {
	status, payload := s.vault.Lookup(query)
	if status != StatusSuccess {
		return "", false, &StatusError{Code: status}
	}

	data, isBytes := payload.([]byte)
	if !isBytes {
		return "", false, fmt.Errorf("%w: vault returned %T, want byte sequence", ErrDataValidation, payload)
	}
	if !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

// Update is declared for contract parity and deliberately does nothing.
// No update scheme is defined for this store; callers that need to change
// a value use Add, which replaces the existing item.
func (s *VaultStore) Update(query, attrs AttributeQuery) error {
	return nil
}

// Remove deletes the item the query addresses.
func (s *VaultStore) Remove(query AttributeQuery) error {
	if status := s.vault.Delete(query); status != StatusSuccess {
		return &StatusError{Code: status}
	}
	return nil
}

// Clear removes the items addressed by zipping labels and tags by
// position. It stops at the first failure and reports overall success as
// a bool; items removed before a mid-sequence failure stay removed. The
// failure reason is logged only — callers needing it must Remove items
// individually.
func (s *VaultStore) Clear(labels, tags []string) bool {
	if len(labels) != len(tags) {
		s.log.Error("clear aborted: label/tag count mismatch",
			"labels", len(labels), "tags", len(tags), "error", ErrDataValidation)
		return false
	}

	for i := range tags {
		query, err := BuildQuery(tags[i], labels[i], OpRemove)
		if err != nil {
			s.log.Error("clear: building remove query",
				"tag", tags[i], "label", labels[i], "error", err)
			return false
		}
		if err := s.Remove(query); err != nil {
			s.log.Error("clear: removing item",
				"tag", tags[i], "label", labels[i], "error", err)
			return false
		}
	}
	return true
}
