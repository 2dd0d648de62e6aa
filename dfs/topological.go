// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[string]int // White, Gray, Black
	order []string       // post-order
}

// TopologicalSort computes a linear ordering of all vertices in g such that
// for every edge u→v, u appears before v. Roots are tried in lexicographic order
// and neighbors in sorted order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected, ErrNeighborFetch, ctx.Err().
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return Reverse(sorter.order), nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back edge into %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
