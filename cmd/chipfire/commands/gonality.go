// File: gonality.go
// Role: the gonality command - exact gonality by bounded search.

package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/gonality"
)

var gonalityMaxDegree int

// gonalityReport is the JSON shape of the search result.
type gonalityReport struct {
	Board    string          `json:"board"`
	Gonality int             `json:"gonality"`
	Bounds   *gonality.Range `json:"bounds"`
}

// GonalityCmd searches for the board's exact gonality.
var GonalityCmd = &cobra.Command{
	Use:   "gonality <board>",
	Short: "Exact gonality by bounded search",
	Long: `Search degree by degree for the cheapest positive-rank divisor on the
board's graph. The cap defaults to the proven upper bound, so
termination is a theorem; --max-degree trades completeness for time and
fails with a budget error when set too low.`,
	Args: cobra.ExactArgs(1),
	RunE: runGonality,
}

func init() {
	GonalityCmd.Flags().IntVar(&gonalityMaxDegree, "max-degree", 0, "search cap (default: proven upper bound)")
}

func runGonality(cmd *cobra.Command, args []string) error {
	g, _, _, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	bounds, err := gonality.Bounds(g)
	if err != nil {
		return err
	}

	var opts []gonality.Option
	if cmd.Flags().Changed("max-degree") {
		opts = append(opts, gonality.WithMaxDegree(gonalityMaxDegree))
	}
	gon, err := gonality.Gonality(g, opts...)
	if err != nil {
		return err
	}
	log.Infow("gonality found", "board", args[0], "gonality", gon)

	if jsonMode() {
		return emitJSON(cmd, gonalityReport{Board: args[0], Gonality: gon, Bounds: bounds})
	}

	pterm.Success.Printf("Gonality %d (proven bracket [%d, %d])\n", gon, bounds.Lower, bounds.Upper)

	return nil
}
