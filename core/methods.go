// SPDX-License-Identifier: MIT
//
// Package core: vertex and edge mutation.
//
// AddEdge is last-write-wins: an existing edge between the same endpoints keeps
// its identity and orientation but receives a fresh copy of the new attributes.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty; an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an edge from→to carrying a copy of attrs.
// Missing endpoints are declared automatically.
//
// If the graph is undirected the edge is traversable both ways, and AddEdge(to, from)
// addresses the same edge. If the edge already exists its attributes are replaced.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed or ErrBadAttribute (wrapped with the
// offending name and value).
// Complexity: O(|attrs|).
func (g *Graph) AddEdge(from, to string, attrs Attributes) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if err := validateAttributes(attrs); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)

	if e, ok := g.adjacency[from][to]; ok {
		e.Attributes = attrs.Clone()
		return nil
	}

	e := &Edge{From: from, To: to, Directed: g.directed, Attributes: attrs.Clone()}
	g.adjacency[from][to] = e
	if !g.directed {
		g.adjacency[to][from] = e
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether to is directly reachable from from.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge traversed when moving from→to.
// Returns ErrVertexNotFound if from is absent, ErrEdgeNotFound if no edge exists.
// Complexity: O(|attrs|).
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return e.copy(), nil
}

// Attribute returns the named attribute of the edge from→to.
// Returns the errors of Edge, or ErrAttributeNotFound if the edge lacks name.
// Complexity: O(1).
func (g *Graph) Attribute(from, to, name string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	e, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	v, ok := e.Attributes[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q on %s→%s", ErrAttributeNotFound, name, from, to)
	}

	return v, nil
}

// ensureVertex declares id and its adjacency bucket. Caller holds g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]*Edge)
}

// copy returns a deep copy of e.
func (e *Edge) copy() *Edge {
	return &Edge{From: e.From, To: e.To, Directed: e.Directed, Attributes: e.Attributes.Clone()}
}

// validateAttributes rejects empty names and values that would break
// shortest-path comparisons (negative, NaN, ±Inf).
func validateAttributes(attrs Attributes) error {
	for name, v := range attrs {
		if name == "" {
			return fmt.Errorf("%w: empty attribute name", ErrBadAttribute)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrBadAttribute, name, v)
		}
	}

	return nil
}
