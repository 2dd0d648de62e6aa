// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn       ("0","1","2",...)
//   - normalize  = TrimNormalize
//   - rng        = nil               (pure unless seeded)
//   - weightFn   = DefaultWeightFn
//   - attrs      = ["weight"]        (attribute names for generated edges)
//   - required   = none

package builder

import "math/rand"

// DefaultAttribute names the attribute generated constructors emit when
// WithAttributes is not given.
const DefaultAttribute = "weight"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn      IDFn        // index → vertex ID for generated constructors
	normalize NormalizeFn // label cleanup for loaded inputs
	rng       *rand.Rand  // nil means no randomness
	weightFn  WeightFn    // attribute values for generated edges
	attrs     []string    // attribute names stamped on generated edges
	required  []string    // attributes every loaded record must carry
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		normalize: TrimNormalize,
		weightFn:  DefaultWeightFn,
		attrs:     []string{DefaultAttribute},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// generatedAttributes draws one value per configured attribute name.
func (c builderConfig) generatedAttributes() map[string]float64 {
	out := make(map[string]float64, len(c.attrs))
	for _, name := range c.attrs {
		out[name] = c.weightFn(c.rng)
	}

	return out
}
