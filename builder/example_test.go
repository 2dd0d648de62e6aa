// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleBuildGraph composes route triples into an attribute-weighted graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRequiredAttributes("cost", "time")},
		builder.Triples([]builder.Triple{
			{From: "Port Klang", To: "Shah Alam", Attributes: core.Attributes{"cost": 5, "time": 0.5}},
			{From: "Shah Alam", To: "Petaling Jaya", Attributes: core.Attributes{"cost": 5, "time": 0.4}},
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount())
	// Output:
	// [Petaling Jaya Port Klang Shah Alam]
	// 2
}

// ExampleParseNetwork decodes a YAML network document.
func ExampleParseNetwork() {
	doc, err := builder.ParseNetwork([]byte(`
name: lab
directed: true
vertices: [F]
edges:
  - {from: G, to: F}
  - {from: H, to: G}
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := doc.Build()
	nbrs, _ := g.Neighbors("H")
	fmt.Println(doc.Name, g.VertexCount(), nbrs)
	// Output:
	// lab 3 [G]
}
