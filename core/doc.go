// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory Graph store used by every lvroute algorithm.
//
// The Graph G = (V,E) holds string-labelled vertices and edges that carry a map of
// named, non-negative numeric attributes (for example "cost" in RM and "time" in hours).
// Algorithms choose which attribute acts as the weight at query time, so one graph
// can answer "cheapest" and "fastest" questions without being rebuilt.
//
//   - Directed vs. undirected edges (WithDirected). Undirected edges are stored once
//     and are traversable from both endpoints.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Parallel edges do not exist: a second AddEdge between the same endpoints
//     replaces the attribute map of the first (last-write-wins).
//   - Isolated vertices are supported via AddVertex.
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                   // O(1)
//	HasVertex(id string) bool                    // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, attrs Attributes) error   // O(|attrs|)
//	HasEdge(from, to string) bool                      // O(1)
//	Edge(from, to string) (*Edge, error)               // O(|attrs|), returns a copy
//	Attribute(from, to, name string) (float64, error)  // O(1)
//
//	// Query
//	Neighbors(id string) ([]string, error)       // O(d log d), unique, sorted
//	AdjacencyList() map[string][]string          // O(V + E log E)
//	Vertices() []string                          // O(V log V)
//	Edges() []*Edge                              // O(E log E)
//	AttributeNames() []string                    // O(E·A)
//
//	// Snapshot
//	Stats() *GraphStats                          // O(V + E)
//	Clone() *Graph                               // O(V + E·A)
//
// Neighbor policy for unknown vertices: Neighbors returns ErrVertexNotFound.
// A present vertex without outgoing edges yields an empty slice and a nil error.
//
// Errors:
//
//	ErrEmptyVertexID     - zero-length vertex ID
//	ErrVertexNotFound    - missing vertex
//	ErrEdgeNotFound      - missing edge
//	ErrAttributeNotFound - edge exists but lacks the requested attribute
//	ErrBadAttribute      - negative, NaN or infinite attribute value
//	ErrLoopNotAllowed    - self-loop when loops are disabled
//
// A Graph is guarded by a sync.RWMutex. The intended lifecycle is build once,
// then share read-only between any number of concurrent queries.
package core
