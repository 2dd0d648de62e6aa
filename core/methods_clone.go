// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source for snapshotting; the source is never mutated.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// attribute maps. Mutating the clone never affects g, and undirected edges in
// the clone keep sharing one *Edge between both endpoints.
//
// Complexity: O(V + E·A)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.allowLoops = g.allowLoops
	for id := range g.vertices {
		clone.ensureVertex(id)
	}

	copied := make(map[*Edge]*Edge, g.edgeCount)
	for from, bucket := range g.adjacency {
		for to, e := range bucket {
			ne, ok := copied[e]
			if !ok {
				ne = e.copy()
				copied[e] = ne
			}
			clone.adjacency[from][to] = ne
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
