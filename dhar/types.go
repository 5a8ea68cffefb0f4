// File: types.go
// Role: sentinel errors, vertex sets and the burn report.

package dhar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// Sentinel errors for Dhar engine operations.
var (
	// ErrDivisorNil is returned when a nil divisor is passed.
	ErrDivisorNil = errors.New("dhar: divisor is nil")

	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("dhar: graph is nil")

	// ErrEmptyGraph is returned when the underlying graph has no vertices.
	ErrEmptyGraph = errors.New("dhar: graph has no vertices")

	// ErrDisconnected is returned for graphs where debt cannot reach
	// every vertex; reduction is only defined on connected graphs.
	ErrDisconnected = errors.New("dhar: graph is not connected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dhar: invalid option supplied")
)

// VertexSet is a plain membership set over vertex IDs.
type VertexSet map[string]bool

// NewVertexSet builds a set from the given IDs.
func NewVertexSet(ids ...string) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = true
	}

	return s
}

// Has reports membership of id.
func (s VertexSet) Has(id string) bool { return s[id] }

// OutdegreeToSet counts the edges from v to vertices outside s, with
// multiplicity: degree(v) − Σ_{u∈s} w(v,u). This is the number of chips
// v loses when the set s fires, so v survives firing s iff
// D(v) ≥ OutdegreeToSet(g, v, s). IDs in s that the graph does not know
// contribute nothing.
//
// Complexity: O(deg v)
// Errors: ErrGraphNil; wraps core.ErrVertexNotFound for unknown v.
func OutdegreeToSet(g *core.Graph, v string, s VertexSet) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	out, err := g.Degree(v)
	if err != nil {
		return 0, fmt.Errorf("dhar: outdegree of %q: %w", v, err)
	}
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return 0, fmt.Errorf("dhar: outdegree of %q: %w", v, err)
	}
	for _, u := range nbrs {
		if !s.Has(u) {
			continue
		}
		w, err := g.EdgeCount(v, u)
		if err != nil {
			return 0, fmt.Errorf("dhar: outdegree of %q: %w", v, err)
		}
		out -= w
	}

	return out, nil
}

// BurnResult reports one run of the burning algorithm.
type BurnResult struct {
	// Legal is the maximal legal firing set avoiding q, in vertex
	// declaration order. Empty means the divisor is saturated at q.
	Legal []string

	// BurnOrder lists every burnt vertex in ignition order, starting
	// with q itself.
	BurnOrder []string

	// IgnitedBy maps each burnt vertex to the neighbor whose fire
	// tipped it. q and vertices that ignited through their own debt
	// map to the empty string.
	IgnitedBy map[string]string
}

// Has reports whether v is part of the legal firing set.
func (r *BurnResult) Has(v string) bool {
	for _, id := range r.Legal {
		if id == v {
			return true
		}
	}

	return false
}

// Empty reports whether no legal firing set exists.
func (r *BurnResult) Empty() bool { return len(r.Legal) == 0 }

// validate runs the shared precondition checks and returns the graph
// behind d. Check order: nil divisor, empty graph, unknown q,
// disconnected graph.
func validate(d *divisor.Divisor, q string) (*core.Graph, error) {
	if d == nil {
		return nil, ErrDivisorNil
	}
	g := d.Graph()
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(q) {
		return nil, fmt.Errorf("dhar: distinguished vertex %q: %w", q, core.ErrVertexNotFound)
	}
	if !g.IsConnected() {
		return nil, ErrDisconnected
	}

	return g, nil
}
