// SPDX-License-Identifier: MIT

// Package builder populates a core.Graph from external descriptions: route
// triples, connectivity adjacency lists, YAML network documents and a few
// generated fixtures, all composed through one orchestrator, BuildGraph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Constructor:       a deterministic graph mutation.
//     – BuildGraph:        creates the graph, resolves options, runs constructors in order.
//   - Input constructors:
//     – Triples:           (from, to, attributes) records, in input order.
//     – Adjacency:         vertex → neighbor list, edges carry no attributes.
//     – Network:           a parsed NetworkDoc (ParseNetwork / LoadNetwork, YAML).
//   - Generated constructors (fixtures and benchmarks):
//     – Path, Cycle:       fixed topologies over cfg.idFn IDs.
//     – RandomSparse:      Erdős–Rényi-like sampling, requires WithSeed or WithRand.
//   - Presets:
//     – MalaysiaLogistics: the 29-route Malaysian delivery network (cost RM, time hours).
//     – LabTraversal:      the directed eight-vertex traversal exercise graph.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: ID scheme, ID normalizer, RNG, weight function,
//       generated attribute names, required attribute names.
//     – IDFn / NormalizeFn / WeightFn implementations.
//
// Guarantees:
//
//   - Determinism: same inputs, options and constructor order give identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
//   - Last-write-wins: a repeated edge replaces the attributes of the earlier one.
package builder
