// Package config provides configuration loading and management for AIFR.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete AIFR configuration
type Config struct {
	KB   KBConfig   `yaml:"knowledge_base"`
	NATS NATSConfig `yaml:"nats"`
}

// KBConfig configures the knowledge base
type KBConfig struct {
	// Path is the knowledge-base directory
	Path string `yaml:"path"`
	// Patterns lists glob patterns for knowledge-base documents
	Patterns []string `yaml:"patterns"`
	// Watch configures hot reload of knowledge-base documents
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures knowledge-base hot reload
type WatchConfig struct {
	// Enabled controls whether hot reload is active
	Enabled bool `yaml:"enabled"`
	// DebounceDelay is how long to wait for more changes before reloading
	// (duration string, e.g. "500ms")
	DebounceDelay string `yaml:"debounce_delay"`
}

// GetDebounceDelay returns the debounce delay as a duration.
func (c *WatchConfig) GetDebounceDelay() time.Duration {
	if c.DebounceDelay == "" {
		return 500 * time.Millisecond
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// NATSConfig configures knowledge-graph publishing
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		KB: KBConfig{
			Path:     "knowledge-base",
			Patterns: []string{"*.jsonld"},
			Watch: WatchConfig{
				Enabled:       false,
				DebounceDelay: "500ms",
			},
		},
		NATS: NATSConfig{
			URL: "", // Publishing disabled
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.KB.Path == "" {
		return fmt.Errorf("knowledge_base.path is required")
	}
	if len(c.KB.Patterns) == 0 {
		return fmt.Errorf("knowledge_base.patterns must not be empty")
	}
	if c.KB.Watch.DebounceDelay != "" {
		if _, err := time.ParseDuration(c.KB.Watch.DebounceDelay); err != nil {
			return fmt.Errorf("knowledge_base.watch.debounce_delay is not a valid duration: %w", err)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge overlays non-zero fields from other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.KB.Path != "" {
		c.KB.Path = other.KB.Path
	}
	if len(other.KB.Patterns) > 0 {
		c.KB.Patterns = other.KB.Patterns
	}
	if other.KB.Watch.Enabled {
		c.KB.Watch.Enabled = true
	}
	if other.KB.Watch.DebounceDelay != "" {
		c.KB.Watch.DebounceDelay = other.KB.Watch.DebounceDelay
	}
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
}
