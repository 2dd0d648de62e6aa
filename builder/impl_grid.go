// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid: a cell matrix as a road grid.
//
// Contract:
//   - cells[y][x] ≥ landThreshold is passable and becomes vertex "x,y";
//     anything below is water and is left out.
//   - Vertices are added row-major (y, then x).
//   - Passable neighbors are linked per Connectivity, each edge carrying
//     cfg.attrs drawn from cfg.weightFn. Undirected graphs get every link once;
//     directed graphs get both arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodGrid = "Grid"

// Connectivity selects grid neighbors: orthogonal (Conn4) or with diagonals (Conn8).
type Connectivity int

const (
	// Conn4 links N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links the four diagonals.
	Conn8
)

// Forward halves; their negations complete each neighborhood.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// GridVertexID formats the vertex ID of cell (x, y).
func GridVertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Grid returns a Constructor over a non-empty rectangular cell matrix.
// Complexity: O(W·H) time and memory.
func Grid(cells [][]int, conn Connectivity, landThreshold int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(cells) == 0 || len(cells[0]) == 0 {
			return fmt.Errorf("%s: empty grid: %w", methodGrid, ErrTooFewVertices)
		}
		w := len(cells[0])
		for y, row := range cells {
			if len(row) != w {
				return fmt.Errorf("%s: row %d has %d cells, want %d: %w", methodGrid, y, len(row), w, ErrConstructFailed)
			}
		}
		var offsets [][2]int
		switch conn {
		case Conn4:
			offsets = forward4
		case Conn8:
			offsets = forward8
		default:
			return fmt.Errorf("%s: unknown connectivity %d: %w", methodGrid, conn, ErrConstructFailed)
		}

		land := func(x, y int) bool {
			return y >= 0 && y < len(cells) && x >= 0 && x < w && cells[y][x] >= landThreshold
		}
		for y := range cells {
			for x := 0; x < w; x++ {
				if !land(x, y) {
					continue
				}
				if err := g.AddVertex(GridVertexID(x, y)); err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
			}
		}

		directed := g.Directed()
		for y := range cells {
			for x := 0; x < w; x++ {
				if !land(x, y) {
					continue
				}
				u := GridVertexID(x, y)
				for _, d := range offsets {
					nx, ny := x+d[0], y+d[1]
					if !land(nx, ny) {
						continue
					}
					v := GridVertexID(nx, ny)
					if err := g.AddEdge(u, v, cfg.generatedAttributes()); err != nil {
						return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodGrid, u, v, err)
					}
					if directed {
						if err := g.AddEdge(v, u, cfg.generatedAttributes()); err != nil {
							return fmt.Errorf("%s: AddEdge(%s,%s): %w", methodGrid, v, u, err)
						}
					}
				}
			}
		}

		return nil
	}
}
