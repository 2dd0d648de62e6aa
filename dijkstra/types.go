// SPDX-License-Identifier: MIT
//
// Package dijkstra defines sentinel errors, the Path result and the functional
// options for the shortest-path finder.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by the shortest-path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyAttribute indicates that no weight attribute name was given.
	ErrEmptyAttribute = errors.New("dijkstra: weight attribute name is empty")

	// ErrVertexNotFound indicates that the start or end vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the end vertex is unreachable from the start vertex.
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrInvalidWeightAttribute indicates that an examined edge lacks the weight attribute.
	ErrInvalidWeightAttribute = errors.New("dijkstra: edge lacks weight attribute")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative or NaN value.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Path is a minimum-weight route between two vertices.
type Path struct {
	// Nodes lists the vertices from start to end, both inclusive.
	Nodes []string

	// Weight is the sum of Attribute over consecutive edges of Nodes.
	Weight float64

	// Attribute is the edge attribute used as weight.
	Attribute string
}

// Hops returns the number of edges on the path.
func (p *Path) Hops() int {
	if p == nil || len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// String renders the path as "A → B → C (cost=7)".
func (p *Path) String() string {
	if p == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (%s=%g)", strings.Join(p.Nodes, " → "), p.Attribute, p.Weight)
}

// Options configures the search.
//
// MaxDistance      – vertices farther than this are not expanded. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance caps exploration at distance max.
// Panics with ErrBadMaxDistance if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
// Panics with ErrBadInfThreshold if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
