// File: load.go
// Role: viper wiring - defaults, config-file merging, environment
// overrides, the cached Load and the explicit-path LoadFile.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the configuration once and caches it. Sources, lowest
// precedence first: built-in defaults, the user file under
// $HOME/.config/chipfire/, the project file ./chipfire.toml, then
// CHIPFIRE_* environment variables.
// Errors: ErrBadLevel, ErrBadOutput, wrapped decode failures.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	globalConfig = &cfg

	return globalConfig, nil
}

// LoadFile reads configuration from one explicit TOML file, bypassing
// the search path, the environment and the cache. Missing keys fall back
// to defaults.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Reset clears the cached configuration and viper state (test hook).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper builds the shared viper instance on first use.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// 1. Environment overrides: CHIPFIRE_ prefix, dots become underscores.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 2. Built-in defaults, so every key is known to Unmarshal.
	setDefaults(v)

	// 3. Config files, lowest precedence first. A later merge overrides
	//    an earlier one, and the environment overrides both.
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		_ = v.MergeInConfig()
	}

	viperInstance = v

	return v
}

// setDefaults registers the Default() values with viper.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("output", def.Output)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.json", def.Log.JSON)
}

// configPaths lists candidate config files, lowest precedence first: the
// user file, then the project file in the working directory.
func configPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chipfire", FileName))
	}
	paths = append(paths, FileName)

	return paths
}

// validate rejects values nothing downstream could honor.
func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
	}
	switch c.Output {
	case OutputHuman, OutputJSON:
	default:
		return fmt.Errorf("%w: %q", ErrBadOutput, c.Output)
	}

	return nil
}
