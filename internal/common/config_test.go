package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Environment != "development" {
		t.Errorf("expected development environment, got %s", cfg.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("expected file backend, got %s", cfg.Storage.Backend)
	}
	if cfg.IsProduction() {
		t.Error("default config should not be production")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexus.toml")
	content := `
environment = "production"

[server]
host = "127.0.0.1"
port = 9090

[storage]
backend = "badger"
path = "/var/lib/nexus"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9090 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Storage.Backend != "badger" {
		t.Errorf("expected badger backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NEXUS_ENV", "prod")
	t.Setenv("NEXUS_PORT", "1234")
	t.Setenv("NEXUS_LOG_LEVEL", "error")
	t.Setenv("NEXUS_STORAGE_BACKEND", "BADGER")
	t.Setenv("NEXUS_DATA_PATH", "/tmp/nexus-data")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production from NEXUS_ENV")
	}
	if cfg.Server.Port != 1234 {
		t.Errorf("expected port 1234, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected error level, got %s", cfg.Logging.Level)
	}
	if cfg.Storage.Backend != "badger" {
		t.Errorf("expected lowercased badger backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/nexus-data" {
		t.Errorf("expected overridden data path, got %s", cfg.Storage.Path)
	}
}

func TestLoadConfig_UnknownBackendFallsBackToFile(t *testing.T) {
	t.Setenv("NEXUS_STORAGE_BACKEND", "surreal")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("expected fallback to file backend, got %s", cfg.Storage.Backend)
	}
}
