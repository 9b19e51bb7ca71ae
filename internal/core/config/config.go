// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in config and on the serve command.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// Config holds the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig holds persistence-service settings, used both by the serve
// command (listen address) and by remote-synced clients (base URL).
type ServerConfig struct {
	Listen string `yaml:"listen"`
	URL    string `yaml:"url"`
}

// StorageConfig selects the canonical store behind the persistence service.
type StorageConfig struct {
	Backend string      `yaml:"backend"`
	Path    string      `yaml:"path"` // file backend
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr string `yaml:"addr"`
	Key  string `yaml:"key"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Listen: ":8088",
			URL:    "http://localhost:8088",
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
			Path:    "todos.json",
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "todos",
			},
		},
	}
}

// Load reads the config file at configPath, if it exists, over the defaults.
// A missing file is not an error; a malformed or invalid one is.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.Listen == "" {
		c.Server.Listen = defaults.Server.Listen
	}
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.Path == "" {
		c.Storage.Path = defaults.Storage.Path
	}
	if c.Storage.Redis.Addr == "" {
		c.Storage.Redis.Addr = defaults.Storage.Redis.Addr
	}
	if c.Storage.Redis.Key == "" {
		c.Storage.Redis.Key = defaults.Storage.Redis.Key
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageFile, StorageRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
