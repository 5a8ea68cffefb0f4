// Package config merges CLI settings from files and the environment.
//
// What:
//
// One Config drives the chipfire CLI: the output mode (human tables or
// plain JSON), color, and the log level and encoding behind Logger().
// Load reads it once and caches the result; Reset clears the cache for
// tests. Sources merge lowest precedence first: built-in defaults, the
// user file under $HOME/.config/chipfire/, the project file
// ./chipfire.toml, and finally CHIPFIRE_* environment variables.
// WriteDefault materializes the defaults as a TOML starting point, and
// LoadFile reads one explicit file when the search path should not apply.
//
// Keys:
//
//	log.level   zap level name: debug, info, warn, error (default info)
//	log.json    structured JSON records instead of console lines
//	no_color    disable ANSI color in terminal output
//	output      "human" or "json"
//
// Environment names derive from keys by prefixing CHIPFIRE_ and replacing
// dots with underscores: CHIPFIRE_LOG_LEVEL, CHIPFIRE_NO_COLOR.
//
// Logger() builds the zap.SugaredLogger the Log section describes. Both
// encodings write to stderr, so stdout stays free for command output.
//
// Usage:
//
//	cfg, err := config.Load()
//	...
//	log, err := cfg.Logger()
//
// Errors:
//
//	ErrBadLevel   – log.level is not a zap level name
//	ErrBadOutput  – output is neither "human" nor "json"
package config
