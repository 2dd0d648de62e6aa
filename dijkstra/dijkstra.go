// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's algorithm over attribute-weighted graphs.
package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// ShortestPath computes a minimum-weight path from start to end, using the edge
// attribute attr as weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. attr must be non-empty (ErrEmptyAttribute).
//  3. start and end must exist in g (ErrVertexNotFound).
//
// Returns ErrNoPath when end is unreachable, and ErrInvalidWeightAttribute when an
// edge examined before end was settled lacks attr. Every edge leaving a settled
// vertex is examined, so an unreachable end can still surface
// ErrInvalidWeightAttribute first; callers that branch on ErrNoPath do not see it then.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end, attr string, opts ...Option) (*Path, error) {
	r, err := newRunner(g, start, attr, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(end) {
		return nil, fmt.Errorf("%w: end %q", ErrVertexNotFound, end)
	}

	r.target = end
	if err = r.process(); err != nil {
		return nil, err
	}
	if !r.visited[end] {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, start, end)
	}

	return &Path{Nodes: r.pathTo(end), Weight: r.dist[end], Attribute: attr}, nil
}

// Distances computes shortest distances from source to every vertex of g using attr.
//
// Returns:
//   - dist: vertex → minimum distance (math.Inf(1) if unreachable or beyond MaxDistance).
//   - prev: vertex → predecessor on one shortest path; "" for source and unreachable vertices.
//   - err:  ErrNilGraph, ErrEmptyAttribute, ErrVertexNotFound, ErrInvalidWeightAttribute.
//
// Unlike ShortestPath, every edge leaving a reachable vertex is examined, so a
// missing attribute anywhere in the reachable region is reported.
func Distances(g *core.Graph, source, attr string, opts ...Option) (map[string]float64, map[string]string, error) {
	r, err := newRunner(g, source, attr, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}
	for v := range r.dist {
		if !r.visited[v] {
			r.dist[v] = math.Inf(1)
			r.prev[v] = ""
		}
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	attr    string
	source  string
	target  string // "" means settle everything reachable

	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     uint64
}

// newRunner validates the common preconditions and seeds the frontier with source.
func newRunner(g *core.Graph, source, attr string, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if attr == "" {
		return nil, ErrEmptyAttribute
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, source)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		attr:    attr,
		source:  source,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	return r, nil
}

// process repeatedly settles the closest frontier vertex and relaxes its edges.
//
// Loop termination conditions:
//   - The heap becomes empty (all reachable vertices settled).
//   - The target vertex has been settled.
//   - The minimum frontier distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u in sorted neighbor order and improves
// tentative distances. Only strictly shorter candidates replace an existing one.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, v := range neighbors {
		w, err := r.g.Attribute(u, v, r.attr)
		if err != nil {
			if errors.Is(err, core.ErrAttributeNotFound) {
				return fmt.Errorf("%w: %q on %s→%s", ErrInvalidWeightAttribute, r.attr, u, v)
			}
			return fmt.Errorf("dijkstra: edge %s→%s: %w", u, v, err)
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s %s=%g", ErrNegativeWeight, u, v, r.attr, w)
		}
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// pathTo walks prev back from dest to the source and returns it in forward order.
func (r *runner) pathTo(dest string) []string {
	var path []string
	for cur := dest; ; cur = r.prev[cur] {
		path = append(path, cur)
		if cur == r.source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry: a vertex with its tentative distance and the
// sequence number of its insertion.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
