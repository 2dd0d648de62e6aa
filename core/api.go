// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Directed reports whether edges are one-way.
// Complexity: O(1); acquires g.mu.RLock.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) returns ErrLoopNotAllowed.
// Complexity: O(1); acquires g.mu.RLock.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes, including the count of isolated vertices and the union
// of attribute names.
//
// Complexity:
//   - Time O(V + E·A), Space O(N) for N distinct attribute names.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
		Attributes:  g.attributeNamesLocked(),
	}

	// A vertex is isolated when nothing leaves it and nothing enters it.
	incoming := make(map[string]bool, len(g.vertices))
	for _, bucket := range g.adjacency {
		for to := range bucket {
			incoming[to] = true
		}
	}
	for id, bucket := range g.adjacency {
		if len(bucket) == 0 && !incoming[id] {
			stats.IsolatedCount++
		}
	}

	return &stats
}
