package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DatabasePath != "taskdesk.db" {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath)
	}
	if cfg.AlertBuffer != 16 {
		t.Fatalf("unexpected alert buffer: %d", cfg.AlertBuffer)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Fatalf("unexpected refresh interval: %s", cfg.RefreshInterval)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TASKDESK_DB_PATH", "/tmp/other.db")
	t.Setenv("TASKDESK_LOG_LEVEL", "debug")
	t.Setenv("TASKDESK_REFRESH_INTERVAL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/other.db" {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if cfg.RefreshInterval != 30*time.Second {
		t.Fatalf("unexpected refresh interval: %s", cfg.RefreshInterval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("TASKDESK_ALERT_BUFFER", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero alert buffer")
	}
}
