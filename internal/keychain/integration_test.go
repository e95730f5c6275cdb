//go:build integration

package keychain

import (
	"errors"
	"testing"
)

// Integration tests use the real OS credential store.
// Run with: go test -tags integration ./internal/keychain/
//
// On macOS this requires an unlocked login Keychain and an interactive
// session (first run may prompt for Keychain access approval); on Linux a
// running Secret Service.

const (
	integrationTag   = "com.lockbox.test"
	integrationLabel = "Integration Item"
)

func integrationStore(t *testing.T) *VaultStore {
	t.Helper()
	return NewVaultStore(NewSystemVault(), testLogger())
}

func cleanupIntegration(t *testing.T, s *VaultStore) {
	t.Helper()
	q, err := BuildQuery(integrationTag, integrationLabel, OpRemove)
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	s.Remove(q)
}

func TestSystemVaultRoundTrip(t *testing.T) {
	s := integrationStore(t)
	defer cleanupIntegration(t, s)

	addQ, err := BuildQuery(integrationTag, integrationLabel, OpAdd)
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	if err := s.Add("hello-vault", addQ); err != nil {
		t.Fatalf("Add: %v", err)
	}

	readQ, err := BuildQuery(integrationTag, integrationLabel, OpRead)
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	value, ok, err := s.Read(readQ)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !ok || value != "hello-vault" {
		t.Errorf("expected 'hello-vault', got %q (ok=%v)", value, ok)
	}
}

func TestSystemVaultOverwrite(t *testing.T) {
	s := integrationStore(t)
	defer cleanupIntegration(t, s)

	addQ, _ := BuildQuery(integrationTag, integrationLabel, OpAdd)
	s.Add("first", addQ)
	if err := s.Add("second", addQ); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	readQ, _ := BuildQuery(integrationTag, integrationLabel, OpRead)
	value, _, err := s.Read(readQ)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if value != "second" {
		t.Errorf("expected 'second', got %q", value)
	}
}

func TestSystemVaultRemove(t *testing.T) {
	s := integrationStore(t)

	addQ, _ := BuildQuery(integrationTag, integrationLabel, OpAdd)
	s.Add("to-delete", addQ)

	removeQ, _ := BuildQuery(integrationTag, integrationLabel, OpRemove)
	if err := s.Remove(removeQ); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	readQ, _ := BuildQuery(integrationTag, integrationLabel, OpRead)
	_, _, err := s.Read(readQ)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != StatusItemNotFound {
		t.Errorf("expected item-not-found after remove, got %v", err)
	}
}
