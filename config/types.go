// File: types.go
// Role: configuration schema, defaults and sentinel errors.

package config

import "errors"

// Environment and file-location constants.
const (
	// EnvPrefix namespaces environment overrides, so log.level is read
	// from CHIPFIRE_LOG_LEVEL and so on.
	EnvPrefix = "CHIPFIRE"

	// FileName is the config file looked up in the working directory and
	// under $HOME/.config/chipfire/.
	FileName = "chipfire.toml"
)

// Output modes for CLI rendering.
const (
	// OutputHuman renders tables and colored terminal output.
	OutputHuman = "human"

	// OutputJSON renders plain JSON on stdout for scripting.
	OutputJSON = "json"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadLevel is returned when log.level is not a zap level name.
	ErrBadLevel = errors.New("config: unknown log level")

	// ErrBadOutput is returned when output is neither "human" nor "json".
	ErrBadOutput = errors.New("config: unknown output mode")
)

// Config is the CLI configuration, merged from defaults, TOML files and
// CHIPFIRE_* environment variables. Scalar keys come before the [log]
// table so the TOML rendering stays well-formed.
type Config struct {
	// NoColor disables ANSI color in terminal output.
	NoColor bool `mapstructure:"no_color" toml:"no_color" json:"no_color"`

	// Output selects the rendering mode: OutputHuman or OutputJSON.
	Output string `mapstructure:"output" toml:"output" json:"output"`

	// Log configures the logger built by Logger().
	Log LogConfig `mapstructure:"log" toml:"log" json:"log"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level"`

	// JSON switches from console lines to structured JSON records.
	JSON bool `mapstructure:"json" toml:"json" json:"json"`
}

// Default returns the built-in configuration: info-level colored console
// logging with human output.
func Default() Config {
	return Config{
		NoColor: false,
		Output:  OutputHuman,
		Log:     LogConfig{Level: "info", JSON: false},
	}
}
