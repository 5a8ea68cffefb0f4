// File: gonality/properties.go
// Role: combinatorial graph invariants feeding the gonality bounds and the
//       Analyze report.

package gonality

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chipfire/core"
)

// MinDegree returns the smallest vertex degree, counting parallel edges.
// An empty graph has minimum degree 0.
func MinDegree(g *core.Graph) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	var min int64
	for i, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return 0, fmt.Errorf("gonality: min degree: %w", err)
		}
		if i == 0 || deg < min {
			min = deg
		}
	}
	return min, nil
}

// MaxDegree returns the largest vertex degree, counting parallel edges.
// An empty graph has maximum degree 0.
func MaxDegree(g *core.Graph) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	var max int64
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return 0, fmt.Errorf("gonality: max degree: %w", err)
		}
		if deg > max {
			max = deg
		}
	}
	return max, nil
}

// DegreeSequence returns all vertex degrees sorted in descending order,
// counting parallel edges.
func DegreeSequence(g *core.Graph) ([]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seq := make([]int64, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("gonality: degree sequence: %w", err)
		}
		seq = append(seq, deg)
	}
	sort.Slice(seq, func(i, j int) bool { return seq[i] > seq[j] })
	return seq, nil
}

// IsRegular reports whether every vertex has the same degree. Graphs with
// fewer than two vertices are regular vacuously.
func IsRegular(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	var want int64
	for i, v := range g.Vertices() {
		deg, err := g.Degree(v)
		if err != nil {
			return false, fmt.Errorf("gonality: regular: %w", err)
		}
		if i == 0 {
			want = deg
			continue
		}
		if deg != want {
			return false, nil
		}
	}
	return true, nil
}

// IsTree reports whether g is connected with exactly V-1 edges, counting
// parallel edges. The empty graph is not a tree.
func IsTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return false, nil
	}
	return g.IsConnected() && g.EdgeTotal() == int64(g.VertexCount()-1), nil
}

// IsBipartite reports whether the vertices split into two classes with all
// edges crossing between them, via breadth-first 2-coloring. Parallel
// edges do not affect the answer; every component is checked.
func IsBipartite(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	color := make(map[string]int, g.VertexCount())
	for _, src := range g.Vertices() {
		if _, seen := color[src]; seen {
			continue
		}
		color[src] = 0
		queue := []string{src}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return false, fmt.Errorf("gonality: bipartite: %w", err)
			}
			for _, v := range nbrs {
				if c, seen := color[v]; seen {
					if c == color[u] {
						return false, nil
					}
					continue
				}
				color[v] = 1 - color[u]
				queue = append(queue, v)
			}
		}
	}
	return true, nil
}

// Genus returns the first Betti number E-V+1 of a connected multigraph,
// the "genus" of chip-firing theory. Trees have genus 0.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrDisconnected.
func Genus(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return 0, ErrEmptyGraph
	}
	if !g.IsConnected() {
		return 0, ErrDisconnected
	}
	return int(g.EdgeTotal()) - g.VertexCount() + 1, nil
}

// IndependenceNumber returns the size of a largest independent set, by
// branch and bound over the declaration order. Exact and exponential in
// the worst case; fast for the boards this package targets.
func IndependenceNumber(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	order := g.Vertices()
	n := len(order)
	if n == 0 {
		return 0, nil
	}

	// Distinct-neighbor adjacency by index; multiplicities are irrelevant.
	idx := make(map[string]int, n)
	for i, v := range order {
		idx[v] = i
	}
	nbrs := make([][]int, n)
	for i, v := range order {
		list, err := g.Neighbors(v)
		if err != nil {
			return 0, fmt.Errorf("gonality: independence: %w", err)
		}
		nbrs[i] = make([]int, 0, len(list))
		for _, u := range list {
			nbrs[i] = append(nbrs[i], idx[u])
		}
	}

	s := &independenceSolver{nbrs: nbrs}
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	s.search(active, 0, 0, n)
	return s.best, nil
}

// independenceSolver carries the shared best across the recursion.
type independenceSolver struct {
	nbrs [][]int
	best int
}

// search branches on the first active vertex at or after start: include it
// (dropping its neighborhood) or exclude it. chosen+left is an upper bound
// on what this subtree can reach, so subtrees that cannot beat best are
// pruned.
func (s *independenceSolver) search(active []bool, start, chosen, left int) {
	if chosen+left <= s.best {
		return
	}
	i := start
	for i < len(active) && !active[i] {
		i++
	}
	if i == len(active) {
		if chosen > s.best {
			s.best = chosen
		}
		return
	}

	// Include i: i and its active neighbors leave the pool.
	removed := []int{i}
	active[i] = false
	for _, j := range s.nbrs[i] {
		if active[j] {
			active[j] = false
			removed = append(removed, j)
		}
	}
	s.search(active, i+1, chosen+1, left-len(removed))
	for _, j := range removed {
		active[j] = true
	}

	// Exclude i.
	active[i] = false
	s.search(active, i+1, chosen, left-1)
	active[i] = true
}

// TreewidthUpperBound returns the width of a min-degree elimination order,
// an upper bound on the treewidth. Each round removes a vertex of minimum
// remaining degree (earliest declared on ties), turns its neighborhood
// into a clique and records the neighborhood size; the largest recorded
// size is the width. Parallel edges are collapsed first.
func TreewidthUpperBound(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	order := g.Vertices()
	if len(order) <= 1 {
		return 0, nil
	}

	adj := make(map[string]map[string]bool, len(order))
	for _, v := range order {
		adj[v] = make(map[string]bool)
	}
	for _, e := range g.Edges() {
		adj[e.U][e.V] = true
		adj[e.V][e.U] = true
	}

	width := 0
	remaining := append([]string(nil), order...)
	for len(remaining) > 0 {
		// 1) Pick the min-degree vertex, earliest declared on ties.
		pick := 0
		for i := 1; i < len(remaining); i++ {
			if len(adj[remaining[i]]) < len(adj[remaining[pick]]) {
				pick = i
			}
		}
		v := remaining[pick]
		if len(adj[v]) > width {
			width = len(adj[v])
		}

		// 2) Clique the neighborhood, then eliminate v.
		nbrs := make([]string, 0, len(adj[v]))
		for u := range adj[v] {
			nbrs = append(nbrs, u)
		}
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				adj[nbrs[i]][nbrs[j]] = true
				adj[nbrs[j]][nbrs[i]] = true
			}
		}
		for _, u := range nbrs {
			delete(adj[u], v)
		}
		delete(adj, v)
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}
	return width, nil
}

// Analyze computes the full invariant report for g. Genus and Gonality are
// filled only when the graph is connected and non-empty; Gonality stays
// nil otherwise.
func Analyze(g *core.Graph) (*Properties, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	p := &Properties{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeTotal(),
		Simple:    g.IsSimple(),
		Connected: g.IsConnected(),
	}

	var err error
	if p.Bipartite, err = IsBipartite(g); err != nil {
		return nil, err
	}
	if p.Regular, err = IsRegular(g); err != nil {
		return nil, err
	}
	if p.Tree, err = IsTree(g); err != nil {
		return nil, err
	}
	if p.MinDegree, err = MinDegree(g); err != nil {
		return nil, err
	}
	if p.MaxDegree, err = MaxDegree(g); err != nil {
		return nil, err
	}
	if p.DegreeSequence, err = DegreeSequence(g); err != nil {
		return nil, err
	}
	if p.IndependenceNumber, err = IndependenceNumber(g); err != nil {
		return nil, err
	}
	if p.TreewidthUpperBound, err = TreewidthUpperBound(g); err != nil {
		return nil, err
	}

	n := int64(p.Vertices)
	p.Complete = p.Simple && p.Edges == n*(n-1)/2

	if p.Connected && p.Vertices > 0 {
		if p.Genus, err = Genus(g); err != nil {
			return nil, err
		}
		if p.Gonality, err = Bounds(g); err != nil {
			return nil, err
		}
	}
	return p, nil
}
