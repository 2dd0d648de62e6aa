// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // vertex and all its descendants fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort for undirected graphs.
	ErrNotDirected = errors.New("dfs: directed graph required")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order). Returning an error aborts traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	// In full-traversal mode vertices cut off this way become later roots.
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return false to skip it; skips are counted in DFSResult.SkippedNeighbors.
	FilterNeighbor func(curr, neighbor string) bool

	// SingleComponent stops after the start vertex's component is exhausted.
	SingleComponent bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Full-graph traversal (SingleComponent = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only roots are visited; a negative limit removes the cap.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters edges curr→neighbor.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithSingleComponent returns an Option that disables the restart over
// unvisited vertices.
func WithSingleComponent() Option {
	return func(o *DFSOptions) {
		o.SingleComponent = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	Order []string

	// PostOrder records vertices in the sequence they finished.
	PostOrder []string

	// Depth maps each vertex ID to its distance (#edges) from the root of its tree.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Roots do not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// Roots lists the root of every DFS tree, start first.
	Roots []string

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}
