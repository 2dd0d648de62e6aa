// SPDX-License-Identifier: MIT

// Package traversal selects between breadth-first and depth-first full-graph
// traversal by name, for callers that receive the kind as text.
package traversal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
)

// ErrUnknownKind is returned for a traversal kind other than "bfs" or "dfs".
var ErrUnknownKind = errors.New("traversal: unknown kind")

// Kind names a traversal strategy.
type Kind string

// Supported kinds.
const (
	BFS Kind = "bfs"
	DFS Kind = "dfs"
)

// ParseKind maps "bfs" or "dfs" (case-insensitive, surrounding space ignored) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case BFS, DFS:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Result is the common shape of a full traversal.
//   - Order: every vertex exactly once, in visit sequence.
//   - Depth: component-relative depth per vertex for BFS; nil for DFS.
//   - Roots: start followed by each restart root.
type Result struct {
	Kind  Kind
	Order []string
	Depth map[string]int
	Roots []string
}

// Run traverses all of g starting at start with the given kind.
// Errors from the underlying traversal are returned unchanged, so callers can
// match bfs.ErrStartVertexNotFound or dfs.ErrStartVertexNotFound.
func Run(g *core.Graph, start string, kind Kind) (*Result, error) {
	switch kind {
	case BFS:
		res, err := bfs.BFS(g, start)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: BFS, Order: res.Order, Depth: res.Depth, Roots: res.Roots}, nil
	case DFS:
		res, err := dfs.DFS(g, start)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: DFS, Order: res.Order, Roots: res.Roots}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Levels groups a BFS result's vertices by depth, each level in visit order.
// Returns nil for DFS results.
func (r *Result) Levels() [][]string {
	if r.Depth == nil {
		return nil
	}
	var levels [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], id)
	}

	return levels
}
