package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
payment:
  baseUrl: http://payments:8001
  timeout: 2s
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Payment.BaseURL != "http://payments:8001" {
		t.Errorf("unexpected payment base url %s", cfg.Payment.BaseURL)
	}
	if cfg.Payment.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %s", cfg.Payment.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFile("/does/not/exist.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigFile_BadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("payment:\n  timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	_, err := LoadConfigFile(path)
	if err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}
