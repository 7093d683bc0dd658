package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeFile(t, "config.yml", `
config:
  keystore:
    backend: bolt
    path: /var/lib/walletbot/keys.db
  wallet:
    default_scheme: schnorr-secp256k1
    recreate: overwrite
  dialog:
    midflow: reset
  bot:
    owner: 99
    username: alice
`)

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if cfg.Keystore.Backend != "bolt" {
		t.Errorf("backend = %s, want bolt", cfg.Keystore.Backend)
	}
	if cfg.Wallet.DefaultScheme != "schnorr-secp256k1" {
		t.Errorf("default scheme = %s", cfg.Wallet.DefaultScheme)
	}
	if cfg.Wallet.Recreate != "overwrite" {
		t.Errorf("recreate = %s", cfg.Wallet.Recreate)
	}
	if cfg.Dialog.Midflow != "reset" {
		t.Errorf("midflow = %s", cfg.Dialog.Midflow)
	}
	if cfg.Bot.Owner != 99 || cfg.Bot.Username != "alice" {
		t.Errorf("bot = %+v", cfg.Bot)
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	path := writeFile(t, "config.yml", "config: {}\n")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if cfg.Keystore.Backend != DefaultBackend {
		t.Errorf("backend = %s, want %s", cfg.Keystore.Backend, DefaultBackend)
	}
	if cfg.Wallet.DefaultScheme != DefaultScheme {
		t.Errorf("default scheme = %s, want %s", cfg.Wallet.DefaultScheme, DefaultScheme)
	}
	if cfg.Bot.Owner != DefaultOwner {
		t.Errorf("owner = %d, want %d", cfg.Bot.Owner, DefaultOwner)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if !os.IsNotExist(err) {
		t.Errorf("error = %v, want not-exist", err)
	}
}

func TestLoadTuning(t *testing.T) {
	path := writeFile(t, "tuning.ini", `
[metrics]
addr = :9100

[queue]
owner_depth = 32
`)

	metrics, err := LoadMetricsConfig(path)
	if err != nil {
		t.Fatalf("LoadMetricsConfig failed: %v", err)
	}
	if metrics.Addr != ":9100" {
		t.Errorf("metrics addr = %s, want :9100", metrics.Addr)
	}

	queue, err := LoadQueueConfig(path)
	if err != nil {
		t.Fatalf("LoadQueueConfig failed: %v", err)
	}
	if queue.OwnerDepth != 32 {
		t.Errorf("owner depth = %d, want 32", queue.OwnerDepth)
	}
}
