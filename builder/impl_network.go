// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_network.go - YAML network documents.
//
// Document shape:
//
//	name: malaysia
//	directed: false
//	vertices: [Keningau]          # optional, declares isolated nodes
//	required: [cost, time]        # optional, like WithRequiredAttributes
//	edges:
//	  - {from: Port Klang, to: Shah Alam, attributes: {cost: 5, time: 0.5}}
//
// Contract:
//   - ParseNetwork rejects unknown keys and documents without any vertex or edge.
//   - Network applies vertices first (document order), then edges via Triples.
//   - Document-level required attributes are merged with cfg.required.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

const methodNetwork = "Network"

// NetworkDoc is the decoded form of a YAML network file.
type NetworkDoc struct {
	Name     string   `yaml:"name"`
	Directed bool     `yaml:"directed"`
	Vertices []string `yaml:"vertices"`
	Required []string `yaml:"required"`
	Edges    []Triple `yaml:"edges"`
}

// GraphOptions returns the core options implied by the document.
func (d *NetworkDoc) GraphOptions() []core.GraphOption {
	return []core.GraphOption{core.WithDirected(d.Directed)}
}

// Build is shorthand for BuildGraph(d.GraphOptions(), bopts, Network(d)).
func (d *NetworkDoc) Build(bopts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(d.GraphOptions(), bopts, Network(d))
}

// ParseNetwork decodes a YAML network document.
func ParseNetwork(data []byte) (*NetworkDoc, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc NetworkDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Vertices) == 0 && len(doc.Edges) == 0 {
		return nil, fmt.Errorf("%w: no vertices or edges", ErrBadDocument)
	}

	return &doc, nil
}

// LoadNetwork reads and decodes the YAML network file at path.
func LoadNetwork(path string) (*NetworkDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read network %s: %w", path, err)
	}
	doc, err := ParseNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Marshal encodes the document back to YAML.
func (d *NetworkDoc) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("builder: encode network: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("builder: encode network: %w", err)
	}

	return buf.Bytes(), nil
}

// Network returns a Constructor applying doc's vertices and edges.
func Network(doc *NetworkDoc) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if doc == nil {
			return fmt.Errorf("%s: nil document: %w", methodNetwork, ErrConstructFailed)
		}
		for _, raw := range doc.Vertices {
			id := cfg.normalize(raw)
			if id == "" {
				return fmt.Errorf("%s: vertex %q: %w", methodNetwork, raw, ErrEmptyID)
			}
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodNetwork, id, err)
			}
		}
		if len(doc.Required) > 0 {
			cfg.required = append(append([]string(nil), cfg.required...), doc.Required...)
		}
		if err := Triples(doc.Edges)(g, cfg); err != nil {
			return fmt.Errorf("%s %q: %w", methodNetwork, doc.Name, err)
		}

		return nil
	}
}

// Document converts g back into a NetworkDoc: every vertex that has no edge is
// listed under vertices, and every edge appears once in (From, To) order.
func Document(name string, g *core.Graph) *NetworkDoc {
	doc := &NetworkDoc{Name: name, Directed: g.Directed()}
	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Triple{From: e.From, To: e.To, Attributes: e.Attributes})
		touched[e.From], touched[e.To] = true, true
	}
	for _, v := range g.Vertices() {
		if !touched[v] {
			doc.Vertices = append(doc.Vertices, v)
		}
	}

	return doc
}
