// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

const (
	nWriters = 20
	nReaders = 50
)

// TestGraph_ConcurrentAccess runs writers and readers in parallel; with -race it
// locks in the RWMutex discipline. Goroutines never touch *testing.T.
func TestGraph_ConcurrentAccess(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	errs := make(chan error, nWriters)

	for i := 0; i < nWriters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := g.AddEdge("Hub", fmt.Sprintf("N%02d", i), core.Attributes{"cost": float64(i)}); err != nil {
				errs <- err
			}
		}(i)
	}
	for i := 0; i < nReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.AdjacencyList()
			_ = g.Stats()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbrs, err := g.Neighbors("Hub")
	require.NoError(t, err)
	require.Len(t, nbrs, nWriters)
	require.Equal(t, nWriters, g.EdgeCount())
}
