package keychain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benaskins/lockbox/internal/audit"
)

func setupAuditedStore(t *testing.T) (*AuditedStore, string) {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "audit.log")

	auditLog, err := audit.NewLogger(auditPath, 10)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { auditLog.Close() })

	inner := NewVaultStore(NewMemoryVault(), testLogger())
	return NewAuditedStore(inner, auditLog, "cli"), auditPath
}

func readAuditEntries(t *testing.T, path string) []audit.Entry {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	entries := make([]audit.Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		var e audit.Entry
		json.Unmarshal([]byte(line), &e)
		entries = append(entries, e)
	}
	return entries
}

func TestAuditedStoreAddLogsEntry(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	q := mustQuery(t, TagSalt, LabelSalt, OpAdd)
	if err := store.Add("value", q); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionCredentialAdd {
		t.Errorf("expected credential_add, got %v", entries[0].Action)
	}
	if entries[0].Tag != TagSalt {
		t.Errorf("expected %q, got %q", TagSalt, entries[0].Tag)
	}
	if entries[0].Label != LabelSalt {
		t.Errorf("expected %q, got %q", LabelSalt, entries[0].Label)
	}
	if entries[0].Actor != "cli" {
		t.Errorf("expected cli, got %q", entries[0].Actor)
	}
}

func TestAuditedStoreReadLogsEntry(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	store.Add("value", mustQuery(t, TagSalt, LabelSalt, OpAdd))
	if _, _, err := store.Read(mustQuery(t, TagSalt, LabelSalt, OpRead)); err != nil {
		t.Fatalf("Read: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Action != audit.ActionCredentialRead {
		t.Errorf("expected credential_read, got %v", entries[1].Action)
	}
}

func TestAuditedStoreFailedReadNotLogged(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	if _, _, err := store.Read(mustQuery(t, TagSalt, LabelSalt, OpRead)); err == nil {
		t.Fatal("expected error for missing item")
	}

	if data, _ := os.ReadFile(auditPath); len(data) != 0 {
		t.Errorf("failed read must not produce an audit entry, got %q", data)
	}
}

func TestAuditedStoreRemoveLogsEntry(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	store.Add("value", mustQuery(t, TagSalt, LabelSalt, OpAdd))
	if err := store.Remove(mustQuery(t, TagSalt, LabelSalt, OpRemove)); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	last := entries[len(entries)-1]
	if last.Action != audit.ActionCredentialRemove {
		t.Errorf("expected credential_remove, got %v", last.Action)
	}
}

func TestAuditedStoreClearLogsSweep(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	labels, tags := AllLabels(), AllTags()
	for i := range tags {
		store.Add("value", mustQuery(t, tags[i], labels[i], OpAdd))
	}

	if !store.Clear(labels, tags) {
		t.Fatal("expected clear to succeed")
	}

	entries := readAuditEntries(t, auditPath)
	last := entries[len(entries)-1]
	if last.Action != audit.ActionCredentialClear {
		t.Errorf("expected credential_clear, got %v", last.Action)
	}
	if last.Count != 3 {
		t.Errorf("expected count 3, got %d", last.Count)
	}
	if last.Error != "" {
		t.Errorf("expected no error, got %q", last.Error)
	}
}

func TestAuditedStoreClearFailureRecorded(t *testing.T) {
	store, auditPath := setupAuditedStore(t)

	if store.Clear([]string{"one"}, []string{"tag-a", "tag-b"}) {
		t.Fatal("expected clear to fail on mismatched lengths")
	}

	entries := readAuditEntries(t, auditPath)
	last := entries[len(entries)-1]
	if last.Action != audit.ActionCredentialClear {
		t.Errorf("expected credential_clear, got %v", last.Action)
	}
	if last.Error == "" {
		t.Error("expected the sweep failure to be recorded")
	}
}
