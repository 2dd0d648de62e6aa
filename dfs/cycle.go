// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

// cycleFinder holds the state of a DetectCycles run.
type cycleFinder struct {
	g      *core.Graph
	state  map[string]int
	path   []string            // current DFS stack
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// DetectCycles reports the simple cycles closed by back edges in g.
// Each cycle is returned closed ([v0, ..., v0]) in its canonical rotation,
// and the list is sorted by signature for deterministic output.
//
// In undirected graphs the edge back to the DFS parent is not a cycle, and
// neither is any two-vertex segment. Self-loops count only when g allows loops.
// A nil graph is treated as cycle-free.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	f := &cycleFinder{
		g:     g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}, len(verts)),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v, ""); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(f.cycles, func(i, j int) bool {
		return JoinSig(f.cycles[i]) < JoinSig(f.cycles[j])
	})

	return true, f.cycles, nil
}

// visit explores id, whose DFS parent is parent ("" for roots).
func (f *cycleFinder) visit(id, parent string) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbrs, err := f.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
	}

	for _, nbr := range nbrs {
		if !f.g.Directed() && nbr == parent {
			continue
		}
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			segLen := len(f.path) - IndexOf(f.path, nbr)
			if segLen == 2 && !f.g.Directed() {
				continue
			}
			f.record(nbr)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record stores the cycle from start to the top of the stack if unseen.
func (f *cycleFinder) record(start string) {
	idx := IndexOf(f.path, start)
	seq := append([]string(nil), f.path[idx:]...)
	seq = append(seq, start)

	sig, canon := canonical(seq, f.g.Directed())
	if _, exists := f.seen[sig]; !exists {
		f.seen[sig] = struct{}{}
		f.cycles = append(f.cycles, canon)
	}
}

// canonical returns the signature and closed form of cycle ([v0, ..., v0]) under
// its lexicographically minimal rotation. For undirected graphs the reversed
// traversal is also considered.
func canonical(cycle []string, directed bool) (string, []string) {
	base := cycle[:len(cycle)-1]

	picker := MinimalRotation(base)
	if !directed {
		if rotB := MinimalRotation(Reverse(base)); Compare(rotB, picker) < 0 {
			picker = rotB
		}
	}

	closed := append(append([]string(nil), picker...), picker[0])

	return JoinSig(closed), closed
}
