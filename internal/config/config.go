// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all contacts configuration.
type Config struct {
	Store Store `yaml:"store"`
	UI    UI    `yaml:"ui"`
	Log   Log   `yaml:"log"`
	Seed  Seed  `yaml:"seed"`
}

// Store holds contact store settings.
type Store struct {
	IDStrategy string `yaml:"id_strategy"` // "uuid" | "sequential"
}

// UI holds terminal interface settings.
type UI struct {
	AltScreen     bool `yaml:"alt_screen"`
	ConfirmRemove bool `yaml:"confirm_remove"` // Ask before removing a contact
}

// Log holds log file settings. An empty Path disables logging.
type Log struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// Seed points at an optional read-only file of initial contacts.
type Seed struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Store: Store{
			IDStrategy: "uuid",
		},
		UI: UI{
			AltScreen:     true,
			ConfirmRemove: true,
		},
		Log: Log{
			Path:  "",
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	switch c.Store.IDStrategy {
	case "uuid", "sequential":
		// valid
	default:
		return fmt.Errorf("config: store.id_strategy must be \"uuid\" or \"sequential\", got %q", c.Store.IDStrategy)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_ID_STRATEGY, CONTACTS_LOG_PATH,
// CONTACTS_LOG_LEVEL, CONTACTS_SEED.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTACTS_ID_STRATEGY"); v != "" {
		c.Store.IDStrategy = v
	}
	// An explicitly empty CONTACTS_LOG_PATH disables logging.
	if v, ok := os.LookupEnv("CONTACTS_LOG_PATH"); ok {
		c.Log.Path = v
	}
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CONTACTS_SEED"); v != "" {
		c.Seed.Path = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Store *rawStore `yaml:"store"`
	UI    *rawUI    `yaml:"ui"`
	Log   *rawLog   `yaml:"log"`
	Seed  *rawSeed  `yaml:"seed"`
}

type rawStore struct {
	IDStrategy *string `yaml:"id_strategy"`
}

type rawUI struct {
	AltScreen     *bool `yaml:"alt_screen"`
	ConfirmRemove *bool `yaml:"confirm_remove"`
}

type rawLog struct {
	Path  *string `yaml:"path"`
	Level *string `yaml:"level"`
}

type rawSeed struct {
	Path *string `yaml:"path"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Store != nil && layer.Store.IDStrategy != nil {
		c.Store.IDStrategy = *layer.Store.IDStrategy
	}
	if layer.UI != nil {
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
		if layer.UI.ConfirmRemove != nil {
			c.UI.ConfirmRemove = *layer.UI.ConfirmRemove
		}
	}
	if layer.Log != nil {
		if layer.Log.Path != nil {
			c.Log.Path = *layer.Log.Path
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
	if layer.Seed != nil && layer.Seed.Path != nil {
		c.Seed.Path = *layer.Seed.Path
	}
}
