// File: layout/types.go
// Role: the JSON model handed to external renderers, plus the sign palette.

package layout

import (
	"errors"
	"time"
)

// ErrGraphNil is returned when the graph argument is nil.
var ErrGraphNil = errors.New("layout: graph is nil")

// Sign palette. Hex codes, not names, so renderers need no lookup table.
const (
	// ColorDebt marks vertices below zero.
	ColorDebt = "#c0392b"
	// ColorNeutral marks vertices at exactly zero, and every vertex of a
	// bare graph.
	ColorNeutral = "#7f8c8d"
	// ColorCredit marks vertices above zero.
	ColorCredit = "#2ecc71"
)

// Model is the complete picture of one board.
type Model struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`
}

// Node is one vertex with its state and its place on the unit circle.
type Node struct {
	ID     string `json:"id"`
	Value  int64  `json:"value"`
	InDebt bool   `json:"in_debt,omitempty"`
	Color  string `json:"color"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Link is one vertex pair; parallel edges collapse into Count. The weight
// field is named "value" in JSON because that is what D3 reads.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Count  int64  `json:"value"`
}

// Meta describes the picture as a whole.
type Meta struct {
	GeneratedAt time.Time `json:"generated_at"`
	Stats       Stats     `json:"stats"`

	// HasDivisor tells a renderer whether Value and InDebt mean anything.
	HasDivisor bool `json:"has_divisor"`
	// Degree is the total chip count when a divisor was rendered.
	Degree int64 `json:"degree,omitempty"`
}

// Stats counts the board. TotalEdges includes parallel multiplicity.
type Stats struct {
	TotalNodes int `json:"total_nodes,omitempty"`
	TotalEdges int `json:"total_edges,omitempty"`
}
