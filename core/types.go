// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types, the Attributes map,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrAttributeNotFound indicates the edge exists but does not carry the attribute.
	ErrAttributeNotFound = errors.New("core: edge attribute not found")

	// ErrBadAttribute indicates a negative, NaN or infinite attribute value,
	// or an empty attribute name.
	ErrBadAttribute = errors.New("core: bad edge attribute")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Attributes maps an attribute name (e.g. "cost", "time") to its numeric value.
type Attributes map[string]float64

// Clone returns an independent copy of a. A nil receiver yields an empty map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Names returns the attribute names sorted lexicographically.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Edge represents a connection between two vertices.
//
// In undirected graphs From/To keep the orientation of the first insertion;
// the edge is still traversable both ways.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool

	// Attributes holds the named numeric weights of the edge.
	Attributes Attributes
}

// Attribute returns the value of the named attribute and whether it is present.
func (e *Edge) Attribute(name string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	v, ok := e.Attributes[name]

	return v, ok
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// adjacency[from][to] points at the stored *Edge. Undirected edges appear
// under both endpoints and share one *Edge, so a replacement is visible
// from either side.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	vertices  map[string]struct{}
	adjacency map[string]map[string]*Edge
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	Directed      bool
	AllowsLoops   bool
	VertexCount   int
	EdgeCount     int
	IsolatedCount int      // vertices with no incident edges
	Attributes    []string // union of attribute names, sorted
}
