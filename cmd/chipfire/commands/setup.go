// File: setup.go
// Role: wiring shared by every command - configuration, logger, output
// helpers and board loading.

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/chipfire/config"
	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
	"github.com/katalvlaran/chipfire/persist"
)

// Package-wide state, wired by Setup before any RunE fires.
var (
	cfg *config.Config
	log *zap.SugaredLogger
)

// Setup is the root PersistentPreRunE: load the configuration, apply
// global flag overrides, honor no_color and build the logger.
func Setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")

	var loaded *config.Config
	var err error
	if path != "" {
		loaded, err = config.LoadFile(path)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return err
	}

	// Work on a copy; flag overrides must not poison the cache.
	c := *loaded
	cfg = &c

	if cmd.Flags().Changed("output") {
		mode, _ := cmd.Flags().GetString("output")
		switch mode {
		case config.OutputHuman, config.OutputJSON:
			cfg.Output = mode
		default:
			return fmt.Errorf("%w: %q", config.ErrBadOutput, mode)
		}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	log = logger.Named("cli")

	return nil
}

// jsonMode reports whether plain JSON was selected for this run.
func jsonMode() bool { return cfg != nil && cfg.Output == config.OutputJSON }

// emitJSON prints v as indented JSON on the command's stdout.
func emitJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return nil
}

// loadBoard reads a board document. The divisor is nil when the document
// carries no chip placement.
func loadBoard(path string) (*core.Graph, *divisor.Divisor, string, error) {
	g, d, q, err := persist.Load(path)
	if err != nil {
		return nil, nil, "", err
	}
	log.Debugw("board loaded",
		"path", path, "vertices", g.VertexCount(), "edges", g.EdgeTotal(), "q", q)

	return g, d, q, nil
}

// boardDivisor returns the board's divisor, or the all-zero placement
// when the document carries none.
func boardDivisor(g *core.Graph, d *divisor.Divisor) (*divisor.Divisor, error) {
	if d != nil {
		return d, nil
	}

	return divisor.NewDivisor(g, nil)
}
