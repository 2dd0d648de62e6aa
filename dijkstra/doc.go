// SPDX-License-Identifier: MIT
//
// Package dijkstra finds minimum-weight paths on a core.Graph whose edges carry
// named, non-negative attributes.
//
// Overview:
//
//   - The caller picks the weight at query time by naming an edge attribute
//     ("cost", "time", ...). The algorithm is unit-agnostic.
//   - ShortestPath(g, start, end, attr) returns the node sequence start…end and its
//     total weight. The search stops as soon as end is popped from the frontier.
//   - Distances(g, source, attr) runs the single-source variant and returns the
//     distance and predecessor maps for every vertex.
//
// Determinism:
//
//   - Neighbors are relaxed in lexicographic order (core.Graph.Neighbors is sorted).
//   - Frontier ties on distance are broken by insertion sequence.
//   - A tentative distance is replaced only by a strictly smaller one, so among
//     equal-weight paths the one discovered first wins. Repeated calls with the
//     same graph and query return identical output.
//
// Error handling (sentinel errors, branch with errors.Is):
//
//   - ErrNilGraph:               g is nil.
//   - ErrEmptyAttribute:         the weight attribute name is empty.
//   - ErrVertexNotFound:         start or end is absent from the graph.
//   - ErrNoPath:                 start and end are not connected. This is the
//     distinguished "no result" outcome; fallback policies belong to the caller.
//   - ErrInvalidWeightAttribute: an edge examined during the search lacks the
//     attribute. Missing weights are never treated as zero.
//   - ErrNegativeWeight:         an edge carries a negative value (core rejects these on insert).
//
// Options:
//
//   - WithMaxDistance(d):      the frontier is not expanded beyond distance d (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//
// Option constructors panic on meaningless values; the algorithm itself never panics.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E) for distance/predecessor maps and stale heap entries.
package dijkstra
