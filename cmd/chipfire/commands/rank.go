// File: rank.go
// Role: the rank command - Baker-Norine rank of the board's divisor.

package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/gonality"
)

// rankReport is the JSON shape of the rank verdict.
type rankReport struct {
	Board  string `json:"board"`
	Degree int64  `json:"degree"`
	Rank   int    `json:"rank"`
}

// RankCmd computes the Baker-Norine rank of the board's divisor.
var RankCmd = &cobra.Command{
	Use:   "rank <board>",
	Short: "Baker-Norine rank of the board's divisor",
	Long: `Compute the exact rank of the board's chip placement: -1 when the
game is unwinnable, otherwise the largest k such that the game survives
every removal of k chips. The search is exponential in the worst case;
the placement's degree caps the work.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	g, d, _, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	if d, err = boardDivisor(g, d); err != nil {
		return err
	}

	r, err := gonality.Rank(d)
	if err != nil {
		return err
	}
	log.Infow("rank computed", "board", args[0], "rank", r)

	if jsonMode() {
		return emitJSON(cmd, rankReport{Board: args[0], Degree: d.Degree(), Rank: r})
	}

	if r < 0 {
		pterm.Error.Println("Rank -1: the game is unwinnable")
		return nil
	}
	pterm.Success.Printf("Rank %d (degree %d)\n", r, d.Degree())

	return nil
}
