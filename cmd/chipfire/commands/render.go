// File: render.go
// Role: the render command - layout JSON for external renderers.

package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chipfire/layout"
)

var renderOut string

// RenderCmd projects a board into renderer-ready layout JSON.
var RenderCmd = &cobra.Command{
	Use:   "render <board>",
	Short: "Renderer-ready layout JSON",
	Long: `Project a board into the layout model consumed by external renderers:
unit-circle positions, sign-coded colors and collapsed edge
multiplicities. The output is always JSON, whatever the output mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	RenderCmd.Flags().StringVar(&renderOut, "out", "", "target file; stdout when empty")
}

func runRender(cmd *cobra.Command, args []string) error {
	g, d, _, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	m, err := layout.Build(g, d)
	if err != nil {
		return err
	}

	if renderOut == "" {
		return m.WriteJSON(cmd.OutOrStdout())
	}

	file, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", renderOut, err)
	}
	if err = m.WriteJSON(file); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	log.Infow("layout written", "board", args[0], "path", renderOut)

	if jsonMode() {
		return emitJSON(cmd, struct {
			Board string `json:"board"`
			Path  string `json:"path"`
		}{args[0], renderOut})
	}
	pterm.Success.Printf("Wrote layout to %s\n", renderOut)

	return nil
}
