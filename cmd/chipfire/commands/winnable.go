// File: winnable.go
// Role: the winnable command - dollar-game verdict and strategy.

package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/dhar"
)

// winnableReport is the JSON shape of the verdict.
type winnableReport struct {
	Board    string           `json:"board"`
	Degree   int64            `json:"degree"`
	Winnable bool             `json:"winnable"`
	Q        string           `json:"q,omitempty"`
	Script   map[string]int64 `json:"script,omitempty"`
	Final    map[string]int64 `json:"final,omitempty"`
}

// WinnableCmd decides the dollar game for a board.
var WinnableCmd = &cobra.Command{
	Use:   "winnable <board>",
	Short: "Decide the dollar game and print a winning strategy",
	Long: `Load a board and decide whether its chip placement can be freed of
debt by firing moves. A board without a placement plays the all-zero
board, which is already debt-free. When the game is winnable the
strategy (fires per vertex) and the resulting debt-free board are
printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runWinnable,
}

func runWinnable(cmd *cobra.Command, args []string) error {
	g, d, q, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	if d, err = boardDivisor(g, d); err != nil {
		return err
	}

	var opts []dhar.Option
	if q != "" {
		opts = append(opts, dhar.WithDistinguished(q))
	}
	strategy, ok, err := dhar.WinningStrategy(d, opts...)
	if err != nil {
		return err
	}
	log.Infow("winnability decided", "board", args[0], "winnable", ok)

	report := winnableReport{Board: args[0], Degree: d.Degree(), Winnable: ok}
	if ok {
		report.Q = strategy.Q
		report.Script = strategy.Script.ToMap()
		report.Final = strategy.Effective.ToMap()
	}

	if jsonMode() {
		return emitJSON(cmd, report)
	}

	if !ok {
		pterm.Error.Printf("Not winnable: no play clears the debt (degree %d)\n", d.Degree())
		return nil
	}
	pterm.Success.Printf("Winnable (q = %s)\n", strategy.Q)
	pterm.Printf("  script: %s\n", strategy.Script.String())
	pterm.Printf("  final:  %s\n", strategy.Effective.String())

	return nil
}
