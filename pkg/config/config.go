// Package config loads server settings from a TOML file and the environment.
//
// Precedence, lowest to highest: [Default], the TOML file passed to [Load],
// then PATHFINDER_* environment variables applied by [Config.ApplyEnv].
// Command-line flags are applied by the CLI on top of that.
//
// Example file:
//
//	addr            = ":8080"
//	log_level       = "info"
//	request_timeout = "10s"
//	max_nodes       = 5000
//	max_edges       = 50000
//
//	[cache]
//	backend   = "redis"
//	redis_url = "redis://localhost:6379/0"
//	ttl       = "1h"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathfinder/pkg/cache"
	perrors "github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/graph"
)

// Duration is a time.Duration that decodes from strings like "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds server settings.
type Config struct {
	Addr           string   `toml:"addr"`
	LogLevel       string   `toml:"log_level"`
	RequestTimeout Duration `toml:"request_timeout"`
	MaxNodes       int      `toml:"max_nodes"`
	MaxEdges       int      `toml:"max_edges"`
	Cache          Cache    `toml:"cache"`
}

// Cache configures the result cache.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisURL  string   `toml:"redis_url"`
	KeyPrefix string   `toml:"key_prefix"`
	TTL       Duration `toml:"ttl"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:           ":8080",
		LogLevel:       "info",
		RequestTimeout: Duration{10 * time.Second},
		MaxNodes:       5000,
		MaxEdges:       50000,
		Cache: Cache{
			Backend: cache.BackendNone,
			TTL:     Duration{cache.TTLPath},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "config file not found")
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides settings from PATHFINDER_* variables. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("PATHFINDER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("PATHFINDER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("PATHFINDER_CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := getenv("PATHFINDER_CACHE_DIR"); v != "" {
		c.Cache.Dir = v
	}
	if v := getenv("PATHFINDER_REDIS_URL"); v != "" {
		c.Cache.RedisURL = v
	}
	if v := getenv("PATHFINDER_MAX_NODES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "PATHFINDER_MAX_NODES")
		}
		c.MaxNodes = n
	}
	if v := getenv("PATHFINDER_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "PATHFINDER_REQUEST_TIMEOUT")
		}
		c.RequestTimeout = Duration{d}
	}
	return nil
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return perrors.New(perrors.ErrCodeInvalidConfig, "addr must not be empty")
	}
	if !contains(logLevels, c.LogLevel) {
		return perrors.New(perrors.ErrCodeInvalidConfig, "log_level must be one of %s", strings.Join(logLevels, ", "))
	}
	if c.RequestTimeout.Duration < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "request_timeout must not be negative")
	}
	if c.MaxNodes < 0 || c.MaxEdges < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "max_nodes and max_edges must not be negative")
	}

	switch c.Cache.Backend {
	case "", cache.BackendNone, cache.BackendFile:
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			return perrors.New(perrors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "unknown cache.backend %q", c.Cache.Backend)
	}
	return nil
}

// Limits returns the graph size limits.
func (c *Config) Limits() graph.Limits {
	return graph.Limits{MaxNodes: c.MaxNodes, MaxEdges: c.MaxEdges}
}

// CacheOptions returns the options for cache.Open. defaultDir is used for
// the file backend when no directory is configured.
func (c *Config) CacheOptions(defaultDir string) cache.Options {
	dir := c.Cache.Dir
	if dir == "" {
		dir = defaultDir
	}
	return cache.Options{
		Backend:  c.Cache.Backend,
		Dir:      dir,
		RedisURL: c.Cache.RedisURL,
	}
}

// String renders the effective configuration as TOML.
func (c *Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
