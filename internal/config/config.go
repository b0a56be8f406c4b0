// Package config provides configuration management for backman using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/nmiranda/backman/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "backman"

// Config represents the top-level configuration structure.
type Config struct {
	Version     int         `mapstructure:"version" yaml:"version"`
	Destination string      `mapstructure:"destination" yaml:"destination"`
	Export      ExportConf  `mapstructure:"export" yaml:"export"`
	State       StateConf   `mapstructure:"state" yaml:"state"`
	Logging     LoggingConf `mapstructure:"logging" yaml:"logging"`
}

// ExportConf configures list export behavior.
type ExportConf struct {
	// Format is the default interchange encoding when the export path has no
	// recognized extension: json, yaml or toml.
	Format string `mapstructure:"format" yaml:"format"`
}

// StateConf configures persistence of the list state between runs.
type StateConf struct {
	// Autosave controls whether the CLI snapshots the list state to the data
	// dir after each command. When false, state is ephemeral unless exported.
	Autosave bool `mapstructure:"autosave" yaml:"autosave"`

	// File overrides the state file location. Empty means paths.StateFile().
	File string `mapstructure:"file" yaml:"file"`
}

// LoggingConf configures default log output.
type LoggingConf struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support (BACKMAN_DESTINATION, ...)
	viper.SetEnvPrefix("BACKMAN")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("destination", "")
	viper.SetDefault("export.format", "json")
	viper.SetDefault("state.autosave", true)
	viper.SetDefault("state.file", "")
	viper.SetDefault("logging.format", "text")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If the user asked for a specific file, missing is an error;
			// an implicit load simply falls back to defaults.
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
