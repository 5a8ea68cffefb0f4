// Package layout turns a board into a serialization-ready picture.
//
// What:
//
// Build projects a graph, optionally with a divisor on it, into a Model of
// nodes and links that any external renderer (D3 and friends) can consume:
// unit-circle positions, sign-coded colors (debt red, zero neutral, credit
// green), chip counts and parallel-edge multiplicities, plus generation
// metadata. WriteJSON and EncodeJSON emit the model as indented JSON.
//
// Why:
//
// Rendering is someone else's job; this package only fixes the data
// contract. Positions are computed here, deterministically, so two runs of
// the same board produce byte-comparable pictures: vertex i of n sits at
// angle 2πi/n minus a quarter turn, which puts the first declared vertex
// at twelve o'clock in screen coordinates.
//
// This is the one package where floating point is welcome. Coordinates
// are presentation, not game state; everything the game decides stays in
// exact integers elsewhere.
//
// Usage:
//
//	g, _ := builder.Cycle(4)
//	d, _ := divisor.NewDivisor(g, map[string]int64{"v0": 2, "v1": -1})
//	m, _ := layout.Build(g, d)
//	_ = m.WriteJSON(os.Stdout)
//
// Errors:
//
//	ErrGraphNil                – graph argument is nil
//	divisor.ErrGraphMismatch   – divisor belongs to a different graph
package layout
