// File: layout/layout.go
// Role: projecting a board into the renderer model.

package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// Build projects g, and the chips of d when given, into a Model. A nil d
// renders a bare graph: zero values, neutral colors, HasDivisor false.
// The divisor must live on g itself.
func Build(g *core.Graph, d *divisor.Divisor) (*Model, error) {
	// 1) Preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	if d != nil && d.Graph() != g {
		return nil, fmt.Errorf("layout: divisor: %w", divisor.ErrGraphMismatch)
	}

	// 2) Nodes on the unit circle, first declared vertex at twelve
	//    o'clock in screen coordinates.
	order := g.Vertices()
	n := len(order)
	nodes := make([]Node, 0, n)
	for i, v := range order {
		node := Node{ID: v, Color: ColorNeutral}
		if d != nil {
			chips, err := d.Get(v)
			if err != nil {
				return nil, fmt.Errorf("layout: %w", err)
			}
			node.Value = chips
			node.InDebt = chips < 0
			node.Color = colorFor(chips)
		}
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		node.X = math.Cos(angle)
		node.Y = math.Sin(angle)
		nodes = append(nodes, node)
	}

	// 3) Links in canonical edge order, parallel edges collapsed.
	edges := g.Edges()
	links := make([]Link, 0, len(edges))
	for _, e := range edges {
		links = append(links, Link{Source: e.U, Target: e.V, Count: e.Count})
	}

	m := &Model{
		Nodes: nodes,
		Links: links,
		Meta: Meta{
			GeneratedAt: time.Now(),
			Stats:       Stats{TotalNodes: n, TotalEdges: int(g.EdgeTotal())},
			HasDivisor:  d != nil,
		},
	}
	if d != nil {
		m.Meta.Degree = d.Degree()
	}
	return m, nil
}

// colorFor maps a chip count to its sign class.
func colorFor(chips int64) string {
	switch {
	case chips < 0:
		return ColorDebt
	case chips > 0:
		return ColorCredit
	default:
		return ColorNeutral
	}
}

// EncodeJSON renders the model as indented JSON with a trailing newline.
func (m *Model) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("layout: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteJSON writes the indented JSON model to w.
func (m *Model) WriteJSON(w io.Writer) error {
	data, err := m.EncodeJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("layout: write: %w", err)
	}
	return nil
}
