// Package config loads the loom.toml project configuration using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/loomgen/loom/errors"
)

// Config is the project configuration for one generation session.
type Config struct {
	// OutputDir is the root under which derived output paths are written.
	OutputDir string `mapstructure:"output_dir"`
	// Units are glob patterns selecting unit description files.
	Units []string `mapstructure:"units"`
	// Generators selects which registered generators run; empty means all.
	Generators []string `mapstructure:"generators"`
	// Parallelism bounds concurrent unit processing.
	Parallelism int `mapstructure:"parallelism"`
	// LogJSON switches logging to JSON output.
	LogJSON bool        `mapstructure:"log_json"`
	Watch   WatchConfig `mapstructure:"watch"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	// DebounceMS is the quiet period before a change triggers regeneration.
	DebounceMS int `mapstructure:"debounce_ms"`
}

var globalConfig *Config

// SetDefaults applies the default configuration values to a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_dir", ".")
	v.SetDefault("units", []string{"units/*.yaml"})
	v.SetDefault("parallelism", 4)
	v.SetDefault("log_json", false)
	v.SetDefault("watch.debounce_ms", 500)
}

// Load reads loom.toml from the working directory, caching the result for
// the session.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}
	v := viper.New()
	v.SetConfigName("loom")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("LOOM")
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read loom.toml")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing
// the session cache.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
}
