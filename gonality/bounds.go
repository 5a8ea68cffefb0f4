// File: gonality/bounds.go
// Role: proven gonality bounds that need no search.

package gonality

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
)

// Bounds brackets the gonality of a connected graph between theorems.
//
// Lower bound: gonality is at least the treewidth, and the treewidth is at
// least the minimum distinct-neighbor degree, so Lower is that degree
// clamped to 1. Upper bounds: n-1 and n minus the independence number
// hold on simple graphs with at least two vertices; the Brill-Noether
// bound floor((genus+3)/2) holds on every connected multigraph. Upper is
// the smallest applicable candidate, and Lower <= gonality <= Upper.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrDisconnected.
func Bounds(g *core.Graph) (*Range, error) {
	// 1) Preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.IsConnected() {
		return nil, ErrDisconnected
	}

	n := g.VertexCount()
	r := &Range{}

	// 2) Lower: minimum distinct-neighbor degree, clamped to 1. Parallel
	//    edges are collapsed because the treewidth chain ignores them.
	minSimple := -1
	for _, v := range g.Vertices() {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("gonality: bounds: %w", err)
		}
		if minSimple < 0 || len(nbrs) < minSimple {
			minSimple = len(nbrs)
		}
	}
	r.MinDegree = minSimple
	r.Lower = minSimple
	if r.Lower < 1 {
		r.Lower = 1
	}

	// 3) Upper: Brill-Noether always applies; the simple-graph bounds join
	//    in when the graph qualifies.
	genus, err := Genus(g)
	if err != nil {
		return nil, err
	}
	r.BrillNoether = (genus + 3) / 2
	r.Upper = r.BrillNoether
	if g.IsSimple() && n >= 2 {
		r.Trivial = n - 1
		alpha, err := IndependenceNumber(g)
		if err != nil {
			return nil, err
		}
		r.Independence = n - alpha
		if r.Trivial < r.Upper {
			r.Upper = r.Trivial
		}
		if r.Independence < r.Upper {
			r.Upper = r.Independence
		}
	}
	return r, nil
}
