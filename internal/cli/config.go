package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lgoulart/jumpmap/pkg/oracle"
)

// configFileName is the config file looked up under the XDG config dir.
const configFileName = "config.toml"

// Config holds the on-disk CLI configuration. Every field has a working
// zero-value default; command-line flags override file values.
type Config struct {
	Oracle OracleConfig `toml:"oracle"`
	Sweep  SweepConfig  `toml:"sweep"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Serve  ServeConfig  `toml:"serve"`
}

// OracleConfig configures the connection to the instrumented game.
type OracleConfig struct {
	// Address is the WebSocket address of the oracle (e.g. "localhost:8765").
	// Empty means no remote oracle is configured.
	Address string `toml:"address"`

	Headless bool `toml:"headless"`
	FPS      int  `toml:"fps"`
	Paused   bool `toml:"paused"`
}

// RuntimeConfig converts the oracle section into the adapter's runtime config.
func (c OracleConfig) RuntimeConfig() oracle.RuntimeConfig {
	rc := oracle.RuntimeConfig{
		Headless: c.Headless,
		FPS:      c.FPS,
		Paused:   c.Paused,
	}
	if rc.FPS == 0 {
		rc.FPS = oracle.DefaultRuntimeConfig().FPS
	}
	return rc
}

// SweepConfig holds default sweep parameters.
type SweepConfig struct {
	Charges    []int    `toml:"charges"`
	Directions []string `toml:"directions"`
	WindPhase  float64  `toml:"wind_phase"`
	MaxLayers  int      `toml:"max_layers"`
	YTolerance float64  `toml:"y_tolerance"`
}

// StoreConfig selects the run archive backend.
type StoreConfig struct {
	// Dir is the file store directory. Empty uses ~/.config/jumpmap/runs.
	Dir string `toml:"dir"`

	// MongoURI switches the archive to MongoDB when set.
	MongoURI string `toml:"mongo_uri"`
}

// CacheConfig selects the pipeline cache backend.
type CacheConfig struct {
	// RedisAddr switches caching to Redis when set; empty uses the file cache.
	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in configuration used when no config
// file exists.
func DefaultConfig() *Config {
	return &Config{
		Oracle: OracleConfig{Headless: true, FPS: oracle.DefaultRuntimeConfig().FPS},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the config file from the XDG config dir. A missing or
// unreadable file yields the defaults; a malformed file also yields the
// defaults since config problems should never block the CLI.
func LoadConfig() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	return loadConfigFile(filepath.Join(dir, configFileName))
}

// loadConfigFile parses a single TOML config file, split out for tests.
func loadConfigFile(path string) *Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}
