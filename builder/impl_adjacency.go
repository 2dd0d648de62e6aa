// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_adjacency.go - Adjacency constructor.
//
// Contract:
//   - Keys are processed in sorted order, neighbors in list order.
//   - Every key becomes a vertex even with an empty neighbor list (isolated node).
//   - Edges carry no attributes; on an undirected graph each entry is
//     traversable both ways, on a directed graph only key → neighbor.
//
// Complexity: O(V log V + E).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

const methodAdjacency = "Adjacency"

// Adjacency returns a Constructor that adds the connectivity described by adj.
func Adjacency(adj map[string][]string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		keys := make([]string, 0, len(adj))
		for k := range adj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, raw := range keys {
			u := cfg.normalize(raw)
			if u == "" {
				return fmt.Errorf("%s: key %q: %w", methodAdjacency, raw, ErrEmptyID)
			}
			if err := g.AddVertex(u); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodAdjacency, u, err)
			}
			for _, rawV := range adj[raw] {
				v := cfg.normalize(rawV)
				if v == "" {
					return fmt.Errorf("%s: neighbor %q of %s: %w", methodAdjacency, rawV, u, ErrEmptyID)
				}
				if err := g.AddEdge(u, v, nil); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodAdjacency, u, v, err)
				}
			}
		}

		return nil
	}
}
