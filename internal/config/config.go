// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sensor source kinds.
const (
	SourceYHub = "yhub" // VirtualHub-style REST endpoint
	SourceSim  = "sim"  // simulated values, no hardware
)

type Config struct {
	Bridge BridgeConfig `yaml:"bridge"`
}

// ---- BRIDGE ----

type BridgeConfig struct {
	Listen      string       `yaml:"listen"`
	MappingFile string       `yaml:"mapping_file"`
	Poll        PollConfig   `yaml:"poll"`
	Source      SourceConfig `yaml:"source"`

	// Status block base address (optional, opt-in)
	StatusAddress *uint16 `yaml:"status_address"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Kind      string `yaml:"kind"`
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Load reads and decodes the YAML settings file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}
