// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle detection
// and topological sort on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     taking neighbors in lexicographic order. By default it covers the whole
//     graph: once the start's component is exhausted it continues from the
//     next unvisited vertex in sorted order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - DetectCycles: reports the simple cycles closed by back edges, using
//     vertex coloring (White, Gray, Black) and canonical signature deduplication.
//   - TopologicalSort: linear ordering of a directed acyclic graph,
//     ErrCycleDetected if a cycle exists.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option / DFSOptions: functional options for DFS behavior
//   - DFSResult: pre-order Order, PostOrder, Depth, Parent, Visited, Roots
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrNotDirected          TopologicalSort on an undirected graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
