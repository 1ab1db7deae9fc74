package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))

	if !cfg.Oracle.Headless {
		t.Error("default config should run the oracle headless")
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("default serve addr = %q, want :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[oracle]
address = "localhost:8765"
headless = true
fps = 5000

[sweep]
charges = [5, 15, 30, 60]
max_layers = 2

[store]
mongo_uri = "mongodb://localhost:27017"

[cache]
redis_addr = "localhost:6379"

[serve]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfigFile(path)

	if cfg.Oracle.Address != "localhost:8765" {
		t.Errorf("oracle address = %q, want localhost:8765", cfg.Oracle.Address)
	}
	if cfg.Oracle.FPS != 5000 {
		t.Errorf("oracle fps = %d, want 5000", cfg.Oracle.FPS)
	}
	if want := []int{5, 15, 30, 60}; !reflect.DeepEqual(cfg.Sweep.Charges, want) {
		t.Errorf("sweep charges = %v, want %v", cfg.Sweep.Charges, want)
	}
	if cfg.Sweep.MaxLayers != 2 {
		t.Errorf("sweep max_layers = %d, want 2", cfg.Sweep.MaxLayers)
	}
	if cfg.Store.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("store mongo_uri = %q", cfg.Store.MongoURI)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache redis_addr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("serve addr = %q, want :9090", cfg.Serve.Addr)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfigFile(path)

	// Malformed files fall back to defaults rather than failing the CLI.
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("malformed config should yield defaults, got serve addr %q", cfg.Serve.Addr)
	}
}

func TestOracleConfigRuntimeConfig(t *testing.T) {
	rc := OracleConfig{Headless: true}.RuntimeConfig()
	if rc.FPS == 0 {
		t.Error("zero FPS should be replaced with the default")
	}

	rc = OracleConfig{FPS: 60, Paused: true}.RuntimeConfig()
	if rc.FPS != 60 || !rc.Paused {
		t.Errorf("RuntimeConfig() = %+v, want FPS 60 paused", rc)
	}
}
