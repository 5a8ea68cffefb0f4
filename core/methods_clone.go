// File: methods_clone.go
// Role: cloning and connectivity.

package core

// Clone returns a deep copy of the graph: same declaration order, same
// multiplicities, fully independent storage.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	out := &Graph{
		order: make([]string, len(g.order)),
		index: make(map[string]int, len(g.index)),
		adj:   make(map[string]map[string]int64, len(g.adj)),
		total: g.total,
	}
	copy(out.order, g.order)
	for id, i := range g.index {
		out.index[id] = i
	}
	for u, row := range g.adj {
		cp := make(map[string]int64, len(row))
		for v, count := range row {
			cp[v] = count
		}
		out.adj[u] = cp
	}

	return out
}

// IsConnected reports whether every vertex is reachable from every
// other. Graphs with zero or one vertex count as connected; a vertex
// with no edges in a larger graph does not.
//
// Complexity: O(V + E)
func (g *Graph) IsConnected() bool {
	if len(g.order) <= 1 {
		return true
	}
	// Breadth-first sweep from the first declared vertex. Visit order is
	// irrelevant for a yes/no answer, so the adjacency rows are walked
	// directly.
	seen := make(map[string]bool, len(g.order))
	queue := []string{g.order[0]}
	seen[g.order[0]] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, count := range g.adj[u] {
			if count > 0 && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(g.order)
}
