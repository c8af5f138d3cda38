package config

import (
	"os"
	"path/filepath"
	"testing"

	"hello_connector/internal/shared/types"
)

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hello.ini")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write ini: %v", err)
	}
	return path
}

func TestLoadIni_MissingFileKeepsDefaults(t *testing.T) {
	cfg := types.DefaultConfig()
	if err := LoadIni(cfg, filepath.Join(t.TempDir(), "absent.ini")); err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Address != "127.0.0.1:6142" {
		t.Errorf("expected default address, got %s", cfg.Address)
	}
	if cfg.DialTimeout != 10 {
		t.Errorf("expected default dial timeout 10, got %d", cfg.DialTimeout)
	}
}

func TestLoadIni_MapsSections(t *testing.T) {
	path := writeIni(t, `
[client]
address = example.com:7000
dial_timeout = 3
write_timeout = 2
socks5_proxy = 127.0.0.1:1080
socks5_user = alice

[log]
level = debug
`)
	cfg := types.DefaultConfig()
	if err := LoadIni(cfg, path); err != nil {
		t.Fatalf("LoadIni failed: %v", err)
	}

	if cfg.Address != "example.com:7000" {
		t.Errorf("address: got %s", cfg.Address)
	}
	if cfg.DialTimeout != 3 || cfg.WriteTimeout != 2 {
		t.Errorf("timeouts: got dial=%d write=%d", cfg.DialTimeout, cfg.WriteTimeout)
	}
	if cfg.Socks5Proxy != "127.0.0.1:1080" || cfg.Socks5User != "alice" {
		t.Errorf("proxy: got %s user %s", cfg.Socks5Proxy, cfg.Socks5User)
	}
	if cfg.Level != "debug" {
		t.Errorf("log level: got %s", cfg.Level)
	}
}

func TestLoadIni_EnvOverride(t *testing.T) {
	t.Setenv("HELLO_ADDRESS", "10.0.0.1:9000")
	t.Setenv("HELLO_DIAL_TIMEOUT", "7")

	cfg := types.DefaultConfig()
	if err := LoadIni(cfg, writeIni(t, "[client]\naddress = 127.0.0.1:1\n")); err != nil {
		t.Fatalf("LoadIni failed: %v", err)
	}
	if cfg.Address != "10.0.0.1:9000" {
		t.Errorf("expected env address, got %s", cfg.Address)
	}
	if cfg.DialTimeout != 7 {
		t.Errorf("expected env dial timeout, got %d", cfg.DialTimeout)
	}
}

func TestLoadIni_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty address", "[client]\naddress =\n"},
		{"negative timeout", "[client]\nwrite_timeout = -1\n"},
		{"bad int", "[client]\ndial_timeout = soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.DefaultConfig()
			if err := LoadIni(cfg, writeIni(t, tt.content)); err == nil {
				t.Errorf("expected error for %q", tt.content)
			}
		})
	}
}
