package keychain

import (
	"fmt"

	"github.com/benaskins/lockbox/internal/audit"
)

// AuditedStore wraps a Store and records every operation to an audit log.
type AuditedStore struct {
	inner Store
	audit *audit.Logger
	actor string // "cli" or the embedding application
}

// NewAuditedStore wraps an existing store with audit logging.
func NewAuditedStore(inner Store, auditLog *audit.Logger, actor string) *AuditedStore {
	return &AuditedStore{
		inner: inner,
		audit: auditLog,
		actor: actor,
	}
}

func (s *AuditedStore) Add(value string, query AttributeQuery) error {
	if err := s.inner.Add(value, query); err != nil {
		return fmt.Errorf("audited store add: %w", err)
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action: audit.ActionCredentialAdd,
		Tag:    query.Tag(),
		Label:  query.Label(),
		Actor:  s.actor,
	})

	return nil
}

func (s *AuditedStore) Read(query AttributeQuery) (string, bool, error) {
	value, ok, err := s.inner.Read(query)
	if err != nil {
		return "", false, fmt.Errorf("audited store read: %w", err)
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action: audit.ActionCredentialRead,
		Tag:    query.Tag(),
		Label:  query.Label(),
		Actor:  s.actor,
	})

	return value, ok, err
}

func (s *AuditedStore) Update(query, attrs AttributeQuery) error {
	return s.inner.Update(query, attrs)
}

func (s *AuditedStore) Remove(query AttributeQuery) error {
	if err := s.inner.Remove(query); err != nil {
		return fmt.Errorf("audited store remove: %w", err)
	}

	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(audit.Entry{
		Action: audit.ActionCredentialRemove,
		Tag:    query.Tag(),
		Label:  query.Label(),
		Actor:  s.actor,
	})

	return nil
}

// Clear records one entry for the whole sweep, including whether it
// completed. The per-item failure reason, if any, is only logged by the
// underlying store.
func (s *AuditedStore) Clear(labels, tags []string) bool {
	ok := s.inner.Clear(labels, tags)

	entry := audit.Entry{
		Action: audit.ActionCredentialClear,
		Actor:  s.actor,
		Count:  len(tags),
	}
	if !ok {
		entry.Error = "clear sweep did not complete"
	}
	// Audit logging is best-effort — a failure to log should not block the operation.
	s.audit.Log(entry)

	return ok
}
