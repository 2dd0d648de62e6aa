// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_generated.go - Path, Cycle and RandomSparse fixtures.
//
// Contract:
//   - Vertices are added via cfg.idFn in ascending index order.
//   - Every edge carries cfg.attrs, each drawn from cfg.weightFn(cfg.rng).
//   - Edges are emitted in stable increasing order, so output is deterministic
//     for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"

	minPathNodes         = 2
	minCycleNodes        = 3
	minRandomSparseNodes = 1
)

// Path returns a Constructor that builds P_n: 0 → 1 → … → n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 1; i < n; i++ {
			if err := addGeneratedEdge(g, cfg, i-1, i); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: a Path closed by n-1 → 0 (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		if err := addGeneratedEdge(g, cfg, n-1, 0); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		return nil
	}
}

// RandomSparse returns a Constructor that samples each pair (each ordered pair
// on directed graphs) independently with probability p. Requires WithSeed or WithRand.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexedVertices(g, cfg, n); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addGeneratedEdge(g, cfg, i, j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

func addIndexedVertices(g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", id, err)
		}
	}

	return nil
}

func addGeneratedEdge(g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v, cfg.generatedAttributes()); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", u, v, err)
	}

	return nil
}
