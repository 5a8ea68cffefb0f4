// File: logger.go
// Role: construct the zap logger the configuration describes.

package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger builds a SugaredLogger per the Log section: structured JSON
// records when log.json is set, console lines otherwise. Both encodings
// write to stderr, leaving stdout to command output.
// Errors: ErrBadLevel, wrapped zap build failures.
func (c *Config) Logger() (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLevel, c.Log.Level)
	}

	var zc zap.Config
	if c.Log.JSON {
		// Machine consumption: production encoder, sampling left on.
		zc = zap.NewProductionConfig()
	} else {
		// Terminal consumption: console encoder, color unless disabled.
		zc = zap.NewDevelopmentConfig()
		if !c.NoColor {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}

	return logger.Sugar(), nil
}
