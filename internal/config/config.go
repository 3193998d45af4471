// Package config loads Deskwalk settings from an optional TOML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	// storage
	Backend       string `toml:"backend"`
	DBPath        string `toml:"db_path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	StrictStorage bool   `toml:"strict_storage"`
	CacheSizeMB   int    `toml:"cache_size_mb"`
	// logging
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	// metrics
	MetricsFile string `toml:"metrics_file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Backend:   BackendSQLite,
		DBPath:    "./data/deskwalk.db",
		RedisAddr: "localhost:6379",
		LogLevel:  "info",
	}
}

// Load builds a Config from defaults, then the TOML file at path (skipped if
// path is empty or the file does not exist), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Backend = getEnv("DESKWALK_BACKEND", c.Backend)
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)
	c.MetricsFile = getEnv("METRICS_FILE", c.MetricsFile)

	var err error
	if c.RedisDB, err = getEnvInt("REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.CacheSizeMB, err = getEnvInt("CACHE_SIZE_MB", c.CacheSizeMB); err != nil {
		return err
	}
	if v := os.Getenv("DESKWALK_STRICT_STORAGE"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DESKWALK_STRICT_STORAGE %q: %w", v, err)
		}
		c.StrictStorage = strict
	}
	return nil
}

// Validate rejects settings the program cannot act on.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(c.Backend)
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for the sqlite backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	if c.CacheSizeMB < 0 {
		return fmt.Errorf("cache_size_mb cannot be negative: %d", c.CacheSizeMB)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
