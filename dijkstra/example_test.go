// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ExampleShortestPath picks the weight attribute per query: the same network
// answers "cheapest" and "fastest".
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("Port Klang", "Kuala Lumpur", core.Attributes{"cost": 10, "time": 1.0})
	_ = g.AddEdge("Port Klang", "Shah Alam", core.Attributes{"cost": 5, "time": 0.5})
	_ = g.AddEdge("Shah Alam", "Petaling Jaya", core.Attributes{"cost": 5, "time": 0.4})
	_ = g.AddEdge("Kuala Lumpur", "Petaling Jaya", core.Attributes{"cost": 4, "time": 0.3})

	cheap, _ := dijkstra.ShortestPath(g, "Port Klang", "Petaling Jaya", "cost")
	fast, _ := dijkstra.ShortestPath(g, "Port Klang", "Petaling Jaya", "time")
	fmt.Println(cheap)
	fmt.Println(fast)

	// Output:
	// Port Klang → Shah Alam → Petaling Jaya (cost=10)
	// Port Klang → Shah Alam → Petaling Jaya (time=0.9)
}

// ExampleShortestPath_noPath shows the distinguished "no result" outcome.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", core.Attributes{"cost": 1})
	_ = g.AddEdge("X", "Y", core.Attributes{"cost": 1})

	_, err := dijkstra.ShortestPath(g, "A", "Y", "cost")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))

	// Output:
	// true
}
