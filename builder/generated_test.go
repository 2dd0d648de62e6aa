// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func TestPathAndCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn), builder.WithAttributes("cost", "time")},
		builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("D", "A"))

	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Attributes{"cost": 1, "time": 1}, e.Attributes)

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithIDScheme(builder.PrefixIDFn("V", 2)),
			builder.WithWeightFn(builder.IntWeightFn(1, 20)),
		}
	}
	g1, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(nil, opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges(), "same seed must give the same graph")
	assert.Equal(t, 12, g1.VertexCount())

	for _, e := range g1.Edges() {
		w := e.Attributes[builder.DefaultAttribute]
		assert.GreaterOrEqual(t, w, 1.0)
		assert.LessOrEqual(t, w, 20.0)
	}

	full, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "V07", builder.PrefixIDFn("V", 2)(7))
	assert.Equal(t, "Ipoh", builder.TrimNormalize(" Ipoh\t"))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.PrefixIDFn("V", -1) })
}

func TestWeightFns(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(r))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(r))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(r))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 3)(r)
		assert.True(t, w >= 2 && w < 3, "w=%g", w)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 2) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithNormalizer(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithAttributes() })
	assert.Panics(t, func() { builder.WithAttributes("cost", "") })
	assert.Panics(t, func() { builder.WithRequiredAttributes("") })
}

func TestGrid(t *testing.T) {
	full := [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}

	g4, err := builder.BuildGraph(nil, nil, builder.Grid(full, builder.Conn4, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, g4.VertexCount())
	assert.Equal(t, 12, g4.EdgeCount())
	assert.True(t, g4.HasEdge("1,1", "1,0"))
	assert.False(t, g4.HasEdge("0,0", "1,1"))

	g8, err := builder.BuildGraph(nil, nil, builder.Grid(full, builder.Conn8, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, g8.EdgeCount())
	assert.True(t, g8.HasEdge("0,0", "1,1"))
	assert.True(t, g8.HasEdge("2,0", "1,1"))

	lake := [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	ring, err := builder.BuildGraph(nil, nil, builder.Grid(lake, builder.Conn4, 1))
	require.NoError(t, err)
	assert.Equal(t, 8, ring.VertexCount())
	assert.Equal(t, 8, ring.EdgeCount())
	assert.False(t, ring.HasVertex("1,1"))

	dg, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil,
		builder.Grid([][]int{{1, 1}}, builder.Conn4, 1))
	require.NoError(t, err)
	assert.True(t, dg.HasEdge("0,0", "1,0"))
	assert.True(t, dg.HasEdge("1,0", "0,0"))
}

func TestGridErrors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Grid(nil, builder.Conn4, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, nil, builder.Grid([][]int{{1, 1}, {1}}, builder.Conn4, 1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.Grid([][]int{{1}}, builder.Connectivity(7), 1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
