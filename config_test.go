package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8613 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.System.Name != "PrintDesk" {
		t.Errorf("default system name = %q", cfg.System.Name)
	}
	if cfg.Database.EffectiveDriver() != "sqlite" {
		t.Errorf("default driver = %q", cfg.Database.EffectiveDriver())
	}
	if !cfg.DNSSD.Enabled {
		t.Error("dnssd should default to enabled")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, tracker, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8613 {
		t.Errorf("port = %d, want default", cfg.Server.Port)
	}
	if len(tracker.EnvKeys) != 0 {
		t.Errorf("unexpected env keys: %v", tracker.EnvKeys)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
port = 9000
bind_address = "127.0.0.1"

[system]
name = "Office Printers"
multi_queue = true

[database]
driver = "postgres"
host = "db.internal"
name = "printdesk"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Server.BindAddress != "127.0.0.1" {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.System.Name != "Office Printers" || !cfg.System.MultiQueue {
		t.Errorf("system config = %+v", cfg.System)
	}
	if cfg.Database.EffectiveDriver() != "postgres" || cfg.Database.Host != "db.internal" {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7777")
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("DNSSD_ENABLED", "false")

	cfg, tracker, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.DNSSD.Enabled {
		t.Error("dnssd should be disabled by env")
	}
	for _, key := range []string{"server.port", "logging.level", "dnssd.enabled"} {
		if !tracker.EnvKeys[key] {
			t.Errorf("tracker missing %q", key)
		}
	}
}

func TestWriteDefaultConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteDefaultConfig(path); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}
	if err := WriteDefaultConfig(path); err == nil {
		t.Error("expected error overwriting existing config")
	}

	// Round-trip: the generated file must load back to the defaults.
	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Errorf("round-trip port = %d", cfg.Server.Port)
	}
}
