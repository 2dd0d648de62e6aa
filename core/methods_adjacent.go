// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and catalog queries (Neighbors, AdjacencyList, Vertices, Edges).
// Determinism:
//   - Neighbors() returns unique IDs sorted lex asc.
//   - Vertices() sorted lex asc; Edges() sorted by (From, To).
//   - AdjacencyList() returns independent, sorted slices.
// Concurrency:
//   - Read operations hold g.mu.RLock for a consistent snapshot.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the IDs of the vertices directly reachable from id,
// sorted lexicographically ascending.
//
// Neighborhood policy:
//   - Directed graphs: only outgoing edges (id→x) contribute.
//   - Undirected graphs: every incident edge contributes its other endpoint.
//   - A self-loop (WithLoops) lists id itself.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// A present vertex without outgoing edges yields an empty, non-nil slice.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(bucket), nil
}

// AdjacencyList returns a snapshot mapping every vertex to its sorted neighbor IDs.
// Isolated vertices map to an empty slice. The result shares no memory with g.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id, bucket := range g.adjacency {
		out[id] = sortedKeys(bucket)
	}

	return out
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns copies of all edges, each undirected edge exactly once,
// sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|; an undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AttributeNames returns the union of attribute names across all edges, sorted.
// Complexity: O(E·A + N log N) with A attributes per edge and N distinct names.
func (g *Graph) AttributeNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.attributeNamesLocked()
}

func (g *Graph) edgesLocked() []*Edge {
	seen := make(map[*Edge]struct{}, g.edgeCount)
	out := make([]*Edge, 0, g.edgeCount)
	for _, bucket := range g.adjacency {
		for _, e := range bucket {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e.copy())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

func (g *Graph) attributeNamesLocked() []string {
	set := make(Attributes)
	for _, bucket := range g.adjacency {
		for _, e := range bucket {
			for name := range e.Attributes {
				set[name] = 0
			}
		}
	}

	return set.Names()
}

// sortedKeys returns the keys of bucket in ascending order.
func sortedKeys(bucket map[string]*Edge) []string {
	out := make([]string, 0, len(bucket))
	for to := range bucket {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}
