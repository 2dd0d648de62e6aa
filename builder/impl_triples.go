// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_triples.go - Triples constructor.
//
// Contract:
//   - Endpoints pass through cfg.normalize; an empty result → ErrEmptyID.
//   - Every cfg.required attribute must be present → else ErrMissingAttribute.
//   - Records are applied in input order; a repeated pair replaces the earlier
//     attributes (core last-write-wins).
//   - Attribute validation (non-negative, finite) is delegated to core.AddEdge.
//
// Complexity: O(T·A) for T triples with A attributes each.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodTriples = "Triples"

// Triples returns a Constructor adding one edge per record.
func Triples(ts []Triple) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, t := range ts {
			if err := addTriple(g, cfg, t); err != nil {
				return fmt.Errorf("%s: record %d: %w", methodTriples, i, err)
			}
		}

		return nil
	}
}

// addTriple validates and inserts one record.
func addTriple(g *core.Graph, cfg builderConfig, t Triple) error {
	from, to := cfg.normalize(t.From), cfg.normalize(t.To)
	if from == "" || to == "" {
		return fmt.Errorf("%q→%q: %w", t.From, t.To, ErrEmptyID)
	}
	for _, name := range cfg.required {
		if _, ok := t.Attributes[name]; !ok {
			return fmt.Errorf("%s→%s lacks %q: %w", from, to, name, ErrMissingAttribute)
		}
	}
	if err := g.AddEdge(from, to, t.Attributes); err != nil {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, err)
	}

	return nil
}
