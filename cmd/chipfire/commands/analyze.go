// File: analyze.go
// Role: the analyze command - structural properties and gonality bounds.

package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/gonality"
)

// AnalyzeCmd reports degree statistics, invariants and gonality bounds.
var AnalyzeCmd = &cobra.Command{
	Use:   "analyze <board>",
	Short: "Degree statistics, invariants and gonality bounds",
	Long: `Load a board and report its structural properties: sizes, degree
statistics, independence number, treewidth upper bound, genus and the
proven gonality bracket. The chip placement, if present, is ignored;
this command inspects the graph alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, _, _, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	props, err := gonality.Analyze(g)
	if err != nil {
		return err
	}
	log.Infow("board analyzed", "board", args[0], "vertices", props.Vertices)

	if jsonMode() {
		return emitJSON(cmd, props)
	}

	return renderProperties(args[0], props)
}

// renderProperties prints the property and bounds tables.
func renderProperties(board string, p *gonality.Properties) error {
	pterm.DefaultSection.Printf("Board %s", board)

	rows := pterm.TableData{
		{"property", "value"},
		{"vertices", strconv.Itoa(p.Vertices)},
		{"edges", strconv.FormatInt(p.Edges, 10)},
		{"simple", yesNo(p.Simple)},
		{"connected", yesNo(p.Connected)},
		{"bipartite", yesNo(p.Bipartite)},
		{"regular", yesNo(p.Regular)},
		{"tree", yesNo(p.Tree)},
		{"complete", yesNo(p.Complete)},
		{"degree min/max", fmt.Sprintf("%d / %d", p.MinDegree, p.MaxDegree)},
		{"degree sequence", int64Seq(p.DegreeSequence)},
		{"independence number", strconv.Itoa(p.IndependenceNumber)},
		{"treewidth (upper)", strconv.Itoa(p.TreewidthUpperBound)},
	}
	if p.Connected {
		rows = append(rows, []string{"genus", strconv.Itoa(p.Genus)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	if p.Gonality == nil {
		pterm.Warning.Println("Gonality bounds need a connected board")
		return nil
	}

	b := p.Gonality
	bounds := pterm.TableData{
		{"bound", "value"},
		{"min degree (lower)", strconv.Itoa(b.MinDegree)},
		{"n-1 (upper)", orDash(b.Trivial)},
		{"n-α (upper)", orDash(b.Independence)},
		{"Brill-Noether (upper)", strconv.Itoa(b.BrillNoether)},
		{"bracket", fmt.Sprintf("[%d, %d]", b.Lower, b.Upper)},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(bounds).Render()
}

// yesNo renders a bool for table cells.
func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// orDash renders a bound value, with "-" for an inapplicable theorem.
func orDash(n int) string {
	if n == 0 {
		return "-"
	}

	return strconv.Itoa(n)
}

// int64Seq renders a degree sequence as "3 3 2 2".
func int64Seq(seq []int64) string {
	parts := make([]string, len(seq))
	for i, d := range seq {
		parts[i] = strconv.FormatInt(d, 10)
	}

	return strings.Join(parts, " ")
}
