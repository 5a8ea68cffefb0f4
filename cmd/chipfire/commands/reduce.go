// File: reduce.go
// Role: the reduce command - q-reduction of the board's divisor.

package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/dhar"
)

var reduceQ string

// reduceReport is the JSON shape of a q-reduction.
type reduceReport struct {
	Board      string           `json:"board"`
	Q          string           `json:"q"`
	Reduced    map[string]int64 `json:"reduced"`
	Script     map[string]int64 `json:"script"`
	DebtRounds int              `json:"debt_rounds"`
	FireRounds int              `json:"fire_rounds"`
	Winnable   bool             `json:"winnable"`
}

// ReduceCmd computes the q-reduced form of a board's divisor.
var ReduceCmd = &cobra.Command{
	Use:   "reduce <board>",
	Short: "q-reduced form of the board's divisor",
	Long: `Run the burning algorithm to the unique q-reduced divisor linearly
equivalent to the board's placement. The distinguished vertex is --q,
falling back to the document's q and then to the first declared vertex.
The reduced board answers winnability at a glance: the game is winnable
exactly when q is out of debt afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runReduce,
}

func init() {
	ReduceCmd.Flags().StringVar(&reduceQ, "q", "", "distinguished vertex (default: document q, then first declared)")
}

func runReduce(cmd *cobra.Command, args []string) error {
	g, d, docQ, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	if d, err = boardDivisor(g, d); err != nil {
		return err
	}

	q := reduceQ
	if q == "" {
		q = docQ
	}
	if q == "" && g.VertexCount() > 0 {
		q = g.Vertices()[0]
	}

	res, err := dhar.Reduce(d, q)
	if err != nil {
		return err
	}

	chipsAtQ, err := res.Reduced.Get(res.Q)
	if err != nil {
		return err
	}
	log.Infow("board reduced",
		"board", args[0], "q", res.Q, "debt_rounds", res.DebtRounds, "fire_rounds", res.FireRounds)

	report := reduceReport{
		Board:      args[0],
		Q:          res.Q,
		Reduced:    res.Reduced.ToMap(),
		Script:     res.Script.ToMap(),
		DebtRounds: res.DebtRounds,
		FireRounds: res.FireRounds,
		Winnable:   chipsAtQ >= 0,
	}

	if jsonMode() {
		return emitJSON(cmd, report)
	}

	pterm.DefaultSection.Printf("Reduced at q = %s", res.Q)
	pterm.Printf("  reduced: %s\n", res.Reduced.String())
	pterm.Printf("  script:  %s\n", res.Script.String())
	pterm.Printf("  rounds:  %d debt + %d fire\n", res.DebtRounds, res.FireRounds)
	if chipsAtQ >= 0 {
		pterm.Success.Println("Winnable: q is out of debt in the reduced board")
	} else {
		pterm.Error.Printf("Not winnable: q holds %d in the reduced board\n", chipsAtQ)
	}

	return nil
}
