package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `audit_log: /tmp/lockbox/audit.log
recent_entries: 50
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AuditLog != "/tmp/lockbox/audit.log" {
		t.Errorf("AuditLog = %q, want %q", cfg.AuditLog, "/tmp/lockbox/audit.log")
	}
	if cfg.RecentEntries != 50 {
		t.Errorf("RecentEntries = %d, want 50", cfg.RecentEntries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.AuditLog != "" {
		t.Errorf("AuditLog = %q, want empty", cfg.AuditLog)
	}
	if cfg.RecentEntries != 0 {
		t.Errorf("RecentEntries = %d, want 0", cfg.RecentEntries)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AuditLog != "" {
		t.Errorf("AuditLog = %q, want empty", cfg.AuditLog)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("audit_log: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
