// File: burn.go
// Role: the burning walker behind LegalFiringSet and IsReduced.

package dhar

import (
	"fmt"

	"github.com/katalvlaran/chipfire/core"
	"github.com/katalvlaran/chipfire/divisor"
)

// burner holds the mutable state of one burning run.
type burner struct {
	g    *core.Graph
	vals map[string]int64 // chip snapshot, never written
	q    string
	opts Options

	burnt map[string]bool
	heat  map[string]int64 // edges from key into the burnt region
	queue []string
	res   *BurnResult
}

// LegalFiringSet runs the burning algorithm and returns the maximal
// legal firing set avoiding q together with the full burn trace.
// The divisor is read, never modified.
//
// Complexity: O(V + E)
// Errors: ErrDivisorNil, ErrEmptyGraph, ErrDisconnected,
// ErrOptionViolation; wraps core.ErrVertexNotFound for unknown q.
func LegalFiringSet(d *divisor.Divisor, q string, opts ...Option) (*BurnResult, error) {
	if d == nil {
		return nil, ErrDivisorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := validate(d, q)
	if err != nil {
		return nil, err
	}

	b := newBurner(g, d, q, o)
	if err := b.run(); err != nil {
		return nil, err
	}

	return b.res, nil
}

// IsReduced reports whether d is q-reduced: every non-q vertex out of
// debt and no legal firing set left.
//
// Complexity: O(V + E)
// Errors: same set as LegalFiringSet.
func IsReduced(d *divisor.Divisor, q string, opts ...Option) (bool, error) {
	if d == nil {
		return false, ErrDivisorNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	g, err := validate(d, q)
	if err != nil {
		return false, err
	}
	for _, v := range g.Vertices() {
		if v == q {
			continue
		}
		chips, err := d.Get(v)
		if err != nil {
			return false, fmt.Errorf("dhar: reduced check: %w", err)
		}
		if chips < 0 {
			return false, nil
		}
	}

	b := newBurner(g, d, q, o)
	if err := b.run(); err != nil {
		return false, err
	}

	return b.res.Empty(), nil
}

// newBurner snapshots the divisor and prepares a cold board.
func newBurner(g *core.Graph, d *divisor.Divisor, q string, o Options) *burner {
	n := g.VertexCount()

	return &burner{
		g:     g,
		vals:  d.ToMap(),
		q:     q,
		opts:  o,
		burnt: make(map[string]bool, n),
		heat:  make(map[string]int64, n),
		queue: make([]string, 0, n),
		res: &BurnResult{
			BurnOrder: make([]string, 0, n),
			IgnitedBy: make(map[string]string, n),
		},
	}
}

// run executes the fixed point: ignite q and every vertex in debt,
// spread heat, collect the survivors.
func (b *burner) run() error {
	// 1) q always burns; it is the fire source.
	b.ignite(b.q, "")
	// 2) Debt ignites on its own, in declaration order.
	for _, v := range b.g.Vertices() {
		if v != b.q && b.vals[v] < 0 {
			b.ignite(v, "")
		}
	}
	// 3) Spread until the queue drains.
	for len(b.queue) > 0 {
		select {
		case <-b.opts.Ctx.Done():
			return b.opts.Ctx.Err()
		default:
		}
		if err := b.spread(b.dequeue()); err != nil {
			return err
		}
	}
	// 4) Survivors form the maximal legal set, declaration order.
	for _, v := range b.g.Vertices() {
		if !b.burnt[v] {
			b.res.Legal = append(b.res.Legal, v)
		}
	}

	return nil
}

// ignite marks v burnt, records the trace and queues it for spreading.
func (b *burner) ignite(v, source string) {
	b.burnt[v] = true
	b.res.BurnOrder = append(b.res.BurnOrder, v)
	if v != b.q {
		b.res.IgnitedBy[v] = source
	}
	b.opts.OnBurn(v, source)
	b.queue = append(b.queue, v)
}

// dequeue pops the oldest burning vertex.
func (b *burner) dequeue() string {
	v := b.queue[0]
	b.queue = b.queue[1:]

	return v
}

// spread pushes u's heat onto each unburnt neighbor; a neighbor whose
// chips can no longer block the incoming edges ignites.
func (b *burner) spread(u string) error {
	nbrs, err := b.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dhar: burn at %q: %w", u, err)
	}
	for _, v := range nbrs {
		if b.burnt[v] {
			continue
		}
		w, err := b.g.EdgeCount(u, v)
		if err != nil {
			return fmt.Errorf("dhar: burn at %q: %w", u, err)
		}
		b.heat[v] += w
		if b.vals[v] < b.heat[v] {
			b.ignite(v, u)
		}
	}

	return nil
}
