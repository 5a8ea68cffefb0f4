// File: script.go
// Role: firing scripts, the single primitive move of the game.

package divisor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chipfire/core"
)

// Script maps each vertex of one graph to a signed firing count:
// positive means the vertex fires that many times, negative means it
// borrows. "Fire v" is +1 at v; "borrow at v" is -1 at v; "fire the set
// S" is +1 on every vertex of S.
type Script struct {
	g     *core.Graph
	fires map[string]int64
}

// NewScript creates the all-zero script over g.
// Errors: ErrGraphNil.
func NewScript(g *core.Graph) (*Script, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := &Script{g: g, fires: make(map[string]int64, g.VertexCount())}
	for _, v := range g.Vertices() {
		s.fires[v] = 0
	}

	return s, nil
}

// NewScriptFrom creates a script with the given firing counts; vertices
// missing from fires stay at zero.
// Errors: ErrGraphNil; unknown keys wrap core.ErrVertexNotFound.
func NewScriptFrom(g *core.Graph, fires map[string]int64) (*Script, error) {
	s, err := NewScript(g)
	if err != nil {
		return nil, err
	}
	for v, n := range fires {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
		}
		s.fires[v] = n
	}

	return s, nil
}

// Graph returns the graph this script is defined over.
func (s *Script) Graph() *core.Graph { return s.g }

// FireOne increments the firing count of v.
// Errors: wraps core.ErrVertexNotFound.
func (s *Script) FireOne(v string) error {
	if !s.g.HasVertex(v) {
		return fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
	}
	s.fires[v]++

	return nil
}

// BorrowOne decrements the firing count of v.
// Errors: wraps core.ErrVertexNotFound.
func (s *Script) BorrowOne(v string) error {
	if !s.g.HasVertex(v) {
		return fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
	}
	s.fires[v]--

	return nil
}

// FireSet increments the firing count of every vertex in set once.
// Duplicates in set are counted once; the set semantics of "fire S".
// Validation happens before any mutation, so a failed call leaves the
// script untouched.
// Errors: wraps core.ErrVertexNotFound.
func (s *Script) FireSet(set []string) error {
	seen := make(map[string]bool, len(set))
	for _, v := range set {
		if !s.g.HasVertex(v) {
			return fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
		}
		seen[v] = true
	}
	for v := range seen {
		s.fires[v]++
	}

	return nil
}

// Get returns the firing count of v.
// Errors: wraps core.ErrVertexNotFound.
func (s *Script) Get(v string) (int64, error) {
	if !s.g.HasVertex(v) {
		return 0, fmt.Errorf("divisor: unknown vertex %q: %w", v, core.ErrVertexNotFound)
	}

	return s.fires[v], nil
}

// Add returns the pointwise sum s + o as a new script. Scripts compose:
// applying s then o equals applying their sum.
// Errors: ErrScriptNil, ErrGraphMismatch.
func (s *Script) Add(o *Script) (*Script, error) {
	if o == nil {
		return nil, ErrScriptNil
	}
	if s.g != o.g {
		return nil, ErrGraphMismatch
	}
	out := s.Clone()
	for v, n := range o.fires {
		out.fires[v] += n
	}

	return out, nil
}

// Neg returns -s as a new script, the exact undo of s.
func (s *Script) Neg() *Script {
	out := s.Clone()
	for v := range out.fires {
		out.fires[v] = -out.fires[v]
	}

	return out
}

// Normalize shifts all firing counts by a common constant so the
// minimum becomes zero, returning a new script. On a connected graph
// firing every vertex once is a no-op (L·1 = 0), so the normalized
// script moves chips exactly like the original while using no borrows.
func (s *Script) Normalize() *Script {
	out := s.Clone()
	if len(out.fires) == 0 {
		return out
	}
	var min int64
	first := true
	for _, n := range out.fires {
		if first || n < min {
			min = n
			first = false
		}
	}
	if min == 0 {
		return out
	}
	for v := range out.fires {
		out.fires[v] -= min
	}

	return out
}

// IsZero reports whether every firing count is zero.
func (s *Script) IsZero() bool {
	for _, n := range s.fires {
		if n != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy sharing the same graph.
func (s *Script) Clone() *Script {
	fires := make(map[string]int64, len(s.fires))
	for v, n := range s.fires {
		fires[v] = n
	}

	return &Script{g: s.g, fires: fires}
}

// ToMap returns a copy of the full vertex→count mapping.
func (s *Script) ToMap() map[string]int64 {
	out := make(map[string]int64, len(s.fires))
	for v, n := range s.fires {
		out[v] = n
	}

	return out
}

// ToVector returns the firing counts in vertex declaration order.
func (s *Script) ToVector() []int64 {
	order := s.g.Vertices()
	out := make([]int64, len(order))
	for i, v := range order {
		out[i] = s.fires[v]
	}

	return out
}

// String renders the script as {A:1, B:0, ...} in declaration order.
func (s *Script) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.g.Vertices() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s:%d", v, s.fires[v])
	}
	b.WriteByte('}')

	return b.String()
}
