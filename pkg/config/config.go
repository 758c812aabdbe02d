// Package config provides configuration loading and management for bedges.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"bedges/pkg/bedges"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Feature extraction parameters
	Features struct {
		// K is how many of the 6 contrast comparisons must hold (0-6)
		K int `yaml:"k"`

		// Inflate is the inflation mode: box, along or none
		Inflate string `yaml:"inflate"`

		// Radius controls the extent of the inflation
		Radius int `yaml:"radius"`

		// LastAxis puts the direction axis last in the output
		LastAxis bool `yaml:"lastAxis"`
	} `yaml:"features"`

	// Processing parameters
	Processing struct {
		// NumCores specifies how many images or channels are processed concurrently
		NumCores int `yaml:"numCores"`
	} `yaml:"processing"`

	// Output parameters
	Output struct {
		// Dir is where the feature planes are written
		Dir string `yaml:"dir"`

		// SaveIntermediaryResults determines whether to save intermediary processing results
		SaveIntermediaryResults bool `yaml:"saveIntermediaryResults"`

		// IntermediaryDir is where intermediary results are written
		IntermediaryDir string `yaml:"intermediaryDir"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	defaults := bedges.DefaultOptions()
	cfg.Features.K = defaults.K
	cfg.Features.Inflate = string(defaults.Inflate)
	cfg.Features.Radius = defaults.Radius
	cfg.Features.LastAxis = defaults.LastAxis

	cfg.Processing.NumCores = runtime.NumCPU() // Use all available cores by default

	cfg.Output.Dir = "edges"
	cfg.Output.SaveIntermediaryResults = false
	cfg.Output.IntermediaryDir = "intermediary_results"
	cfg.Output.Verbose = true

	return cfg
}

// FeatureOptions converts the features section into extraction options
func (c *Config) FeatureOptions() (bedges.Options, error) {
	mode, err := bedges.ParseInflateMode(c.Features.Inflate)
	if err != nil {
		return bedges.Options{}, err
	}
	opts := bedges.Options{
		K:        c.Features.K,
		Inflate:  mode,
		Radius:   c.Features.Radius,
		LastAxis: c.Features.LastAxis,
	}
	if err := opts.Validate(); err != nil {
		return bedges.Options{}, err
	}
	return opts, nil
}

// Validate checks the configuration for values the extractor would reject
func (c *Config) Validate() error {
	if _, err := c.FeatureOptions(); err != nil {
		return fmt.Errorf("invalid features section: %w", err)
	}
	if c.Processing.NumCores < 0 {
		return fmt.Errorf("invalid processing section: numCores must be non-negative, got %d", c.Processing.NumCores)
	}
	return nil
}

// ApplyFlags overrides the configuration with the flags explicitly set on fs.
// Flags that were left at their defaults do not touch the loaded values.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		value := getter.Get()
		switch f.Name {
		case "output":
			c.Output.Dir, ok = value.(string)
		case "k":
			c.Features.K, ok = value.(int)
		case "inflate":
			c.Features.Inflate, ok = value.(string)
		case "radius":
			c.Features.Radius, ok = value.(int)
		case "lastaxis":
			c.Features.LastAxis, ok = value.(bool)
		case "cores":
			c.Processing.NumCores, ok = value.(int)
		case "save-intermediary":
			c.Output.SaveIntermediaryResults, ok = value.(bool)
		case "intermediary-dir":
			c.Output.IntermediaryDir, ok = value.(string)
		case "verbose":
			c.Output.Verbose, ok = value.(bool)
		}
		if !ok {
			err = fmt.Errorf("flag -%s has unexpected type %T", f.Name, value)
		}
	})
	return err
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
