// SPDX-License-Identifier: MIT

// Package lvroute is an in-memory toolkit for weighted route networks:
// build a graph whose edges carry named numeric attributes, find the
// cheapest path on any one of them, walk every vertex breadth- or
// depth-first, and plan parcel deliveries on top.
//
// What is inside?
//
//	core/       thread-safe Graph with attribute maps per edge
//	builder/    constructors: triples, adjacency maps, YAML network documents,
//	            generated topologies and the built-in Malaysian network
//	dijkstra/   shortest path on a selectable attribute, deterministic ties
//	bfs/        multi-root breadth-first traversal with depths and hooks
//	dfs/        depth-first traversal, cycle detection, topological sort
//	traversal/  one entry point over bfs and dfs
//	logistics/  order files, cost/time criteria, fallback hub, batch planning
//	cmd/lvroute command-line front end
//
// Quick example:
//
//	  Port Klang ──5── Shah Alam
//	      │               │
//	     10               5
//	      │               │
//	  Kuala Lumpur ──4── Petaling Jaya
//
//	dijkstra.ShortestPath(g, "Port Klang", "Petaling Jaya", "cost")
//	// Port Klang → Shah Alam → Petaling Jaya (cost=10)
//
//	go get github.com/katalvlaran/lvroute
package lvroute
