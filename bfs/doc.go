// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, covering the
// whole graph by default and returning visit order, depths, parent links and roots.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - When the start's component is exhausted, restart from each unvisited
//     vertex in lexicographic order. Every restart is a new root at depth 0.
//   - Returns a BFSResult containing:
//   - Order: visit sequence, each vertex exactly once
//   - Depth: vertex → hop count from the root of its sub-traversal
//   - Parent: vertex → predecessor in the BFS forest
//   - Roots: the start vertex followed by every restart root
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes single edges; WithMaxDepth caps expansion.
//   - WithSingleComponent keeps the search inside the start's component.
//
// Determinism
//
//	core.Graph.Neighbors returns neighbor IDs sorted lexicographically and the
//	restart roots are taken from the sorted vertex list, so for a fixed graph and
//	start the result is identical across runs.
//
// Directed graphs
//
//	Only outgoing edges are followed. A vertex reachable from the start solely
//	via incoming edges is visited later as a root of its own.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus O(d log d) neighbor sorting per vertex
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Port Klang")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	    // ctx.Err(), or a hook error
//	}
//	for _, id := range res.Order {
//	    fmt.Println(id, res.Depth[id])
//	}
package bfs
