// File: main.go
// Role: CLI entry point - root command, global flags and command
// registration.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/cmd/chipfire/commands"
)

var rootCmd = &cobra.Command{
	Use:   "chipfire",
	Short: "Play and measure chip-firing boards",
	Long: `chipfire - the dollar game on multigraphs.

Boards are JSON or YAML documents: vertices in play order, weighted
edges, an optional chip placement and an optional distinguished vertex
q. Commands load a board, run the exact chip-firing machinery and print
a human report, or plain JSON with -o json.

Available commands:
  analyze   - degree statistics, invariants and gonality bounds
  winnable  - decide the dollar game and print a winning strategy
  reduce    - q-reduced form of the board's divisor
  rank      - Baker-Norine rank of the board's divisor
  gonality  - exact gonality by bounded search
  solids    - canned boards: the five platonic solids
  render    - renderer-ready layout JSON
  config    - show or initialize the configuration

Examples:
  chipfire solids build octahedron --out octa.json
  chipfire analyze octa.json
  chipfire winnable board.yaml -o json
  chipfire reduce board.yaml --q v0`,
	PersistentPreRunE: commands.Setup,
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "output mode: human or json (default from config)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI color")
	rootCmd.PersistentFlags().String("config", "", "explicit config file (skips the search path)")

	rootCmd.AddCommand(commands.AnalyzeCmd)
	rootCmd.AddCommand(commands.WinnableCmd)
	rootCmd.AddCommand(commands.ReduceCmd)
	rootCmd.AddCommand(commands.RankCmd)
	rootCmd.AddCommand(commands.GonalityCmd)
	rootCmd.AddCommand(commands.SolidsCmd)
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
