package capture

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Store backends
const (
	STOREBOLT   = "bolt"
	STOREMEMORY = "memory"
)

// Config holds capture settings. Values come from the YAML file, then from the
// environment.
type Config struct {
	Database   string `yaml:"database" env:"CAPTURE_DATABASE"`
	Store      string `yaml:"store" env:"CAPTURE_STORE"`
	SessionTTL uint64 `yaml:"session_ttl_ticks" env:"CAPTURE_SESSION_TTL"`
}

// DefaultConfig is used for anything the file and environment leave unset
func DefaultConfig() Config {
	return Config{
		Database:   "./captures.db",
		Store:      STOREBOLT,
		SessionTTL: 20,
	}
}

// LoadConfig reads a YAML config file over the defaults and applies environment
// overrides. A missing file is logged and skipped.
func LoadConfig(configFile string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(configFile)
	if err == nil {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse %s: %w", configFile, err)
		}
	} else {
		log.Printf("Error reading %s: %v", configFile, err)
	}

	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("parse env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks the store selection
func (c Config) Validate() error {
	switch c.Store {
	case STOREMEMORY:
		return nil
	case STOREBOLT:
		if c.Database == "" {
			return fmt.Errorf("config: bolt store needs a database path")
		}
		return nil
	}
	return fmt.Errorf("config: unknown store %q", c.Store)
}

// OpenStore opens the item store the config selects
func OpenStore(c Config) (ItemStore, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Store == STOREMEMORY {
		return NewMemoryStore(), nil
	}
	return OpenBoltStore(c.Database)
}
