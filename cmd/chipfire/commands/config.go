// File: config.go
// Role: the config command group - show the active configuration, write
// the default file.

package commands

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/config"
)

// ConfigCmd groups configuration subcommands.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration",
	Long: `Inspect the active configuration (after files, environment and flags)
or write a default chipfire.toml to edit.

Sources merge lowest precedence first: built-in defaults, the user file
under $HOME/.config/chipfire/, the project file ./chipfire.toml, then
CHIPFIRE_* environment variables.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long: `Write the built-in defaults as TOML to path (default ./chipfire.toml).
An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if jsonMode() {
		return emitJSON(cmd, cfg)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# chipfire configuration\n%s", data)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	log.Infow("default configuration written", "path", path)

	if jsonMode() {
		return emitJSON(cmd, struct {
			Path string `json:"path"`
		}{path})
	}
	pterm.Success.Printf("Wrote default configuration to %s\n", path)

	return nil
}
