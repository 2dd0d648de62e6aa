// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator used by generated constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithNormalizer sets how labels from Triples, Adjacency and Network inputs
// are canonicalized. Panics on nil.
func WithNormalizer(fn NormalizeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNormalizer(nil)")
	}
	return func(c *builderConfig) {
		c.normalize = fn
	}
}

// WithRand supplies the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithWeightFn sets the value generator for generated edge attributes. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAttributes sets the attribute names stamped on generated edges,
// e.g. WithAttributes("cost", "time"). Panics if names is empty or holds "".
func WithAttributes(names ...string) BuilderOption {
	if len(names) == 0 {
		panic("builder: WithAttributes() needs at least one name")
	}
	for _, n := range names {
		if n == "" {
			panic("builder: WithAttributes: empty attribute name")
		}
	}
	cp := append([]string(nil), names...)
	return func(c *builderConfig) {
		c.attrs = cp
	}
}

// WithRequiredAttributes makes loaded records without every named attribute
// fail with ErrMissingAttribute, so a later shortest-path query cannot meet a
// half-annotated edge. Panics on an empty name.
func WithRequiredAttributes(names ...string) BuilderOption {
	for _, n := range names {
		if n == "" {
			panic("builder: WithRequiredAttributes: empty attribute name")
		}
	}
	cp := append([]string(nil), names...)
	return func(c *builderConfig) {
		c.required = cp
	}
}
