// File: types.go
// Role: sentinel errors and functional options for session construction.

package game

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for session construction.
var (
	// ErrGraphNil is returned when the graph pointer is nil.
	ErrGraphNil = errors.New("game: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("game: invalid option supplied")
)

// Option configures a DollarGame session via functional arguments.
type Option func(*Options)

// Options holds session construction parameters.
type Options struct {
	// Logger receives move and lifecycle events at debug level.
	// Defaults to a no-op logger.
	Logger *zap.SugaredLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop().Sugar(),
		err:    nil,
	}
}

// WithLogger installs a session logger. The session names it "game"
// and stamps every entry with the session id.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
