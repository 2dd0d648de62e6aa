// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g starting at startID, then continues
// from every unvisited vertex in lexicographic order unless WithSingleComponent
// is given. An empty graph with an empty startID yields an empty result.
// Returns DFSResult (partial on abort) or an error from validation, context or hooks.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:     make([]string, 0, len(vertices)),
		PostOrder: make([]string, 0, len(vertices)),
		Depth:     make(map[string]int, len(vertices)),
		Parent:    make(map[string]string, len(vertices)),
		Visited:   make(map[string]bool, len(vertices)),
	}
	if len(vertices) == 0 && startID == "" {
		return res, nil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 4. Start tree, then the forest
	if err := walker.root(startID); err != nil {
		return res, err
	}
	if !dopts.SingleComponent {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			if err := walker.root(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// root opens a new DFS tree at id.
func (w *dfsWalker) root(id string) error {
	w.res.Roots = append(w.res.Roots, id)

	return w.traverse(id, 0)
}

// traverse visits vertex id at the given depth, recursing into sorted neighbors.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth and pre-order position
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Explore neighbors unless the depth cap is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
		}
		for _, nid := range nbs {
			if w.res.Visited[nid] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
