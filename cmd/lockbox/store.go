package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/benaskins/lockbox/internal/audit"
	"github.com/benaskins/lockbox/internal/config"
	"github.com/benaskins/lockbox/internal/keychain"
)

// openStore builds the audited keychain store the CLI commands share.
// The returned closer flushes the audit log.
func openStore() (keychain.Store, func(), error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	auditPath := cfg.AuditLog
	if auditPath == "" {
		home, err := lockboxHome()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving lockbox home: %w", err)
		}
		auditPath = filepath.Join(home, "audit.log")
	}

	auditLog, err := audit.NewLogger(auditPath, cfg.RecentEntries)
	if err != nil {
		return nil, nil, err
	}

	inner := keychain.NewVaultStore(keychain.NewSystemVault(), slog.Default())
	store := keychain.NewAuditedStore(inner, auditLog, "cli")
	return store, func() { auditLog.Close() }, nil
}

// auditLogPath resolves the audit log location the same way openStore does.
func auditLogPath() (string, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	if cfg.AuditLog != "" {
		return cfg.AuditLog, nil
	}
	home, err := lockboxHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "audit.log"), nil
}
