// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// presets.go - fixed reference networks.

package builder

import "github.com/katalvlaran/lvroute/core"

// Attribute names used by the Malaysian network.
const (
	AttrCost = "cost" // Malaysian ringgit
	AttrTime = "time" // hours
)

// MalaysiaHub is the origin of every delivery in the Malaysian network.
const MalaysiaHub = "Port Klang"

// route is a compact (from, to, cost RM, time h) record.
type route struct {
	from, to   string
	cost, time float64
}

// malaysiaRoutes lists the undirected road, sea and air links of the network.
var malaysiaRoutes = []route{
	// Central region
	{"Port Klang", "Shah Alam", 5, 0.5},
	{"Port Klang", "Kuala Lumpur", 10, 1.0},
	{"Port Klang", "Putrajaya", 15, 1.2},
	{"Shah Alam", "Petaling Jaya", 5, 0.4},
	{"Kuala Lumpur", "Petaling Jaya", 4, 0.3},
	{"Kuala Lumpur", "Ampang", 5, 0.5},

	// Northern region
	{"Kuala Lumpur", "Ipoh", 40, 2.5},
	{"Ipoh", "Taiping", 20, 1.0},
	{"Ipoh", "Pulau Pinang", 35, 2.0},
	{"Pulau Pinang", "Alor Setar", 30, 1.5},
	{"Alor Setar", "Kangar", 15, 1.0},

	// Southern region
	{"Putrajaya", "Seremban", 20, 1.0},
	{"Seremban", "Melaka", 30, 1.5},
	{"Melaka", "Muar", 25, 1.2},
	{"Muar", "Batu Pahat", 20, 1.0},
	{"Batu Pahat", "Johor Bahru", 35, 1.5},
	{"Johor Bahru", "Pasir Gudang", 10, 0.5},
	{"Johor Bahru", "Kota Tinggi", 15, 1.0},

	// East coast
	{"Kuala Lumpur", "Kuantan", 60, 3.5},
	{"Kuantan", "Kuala Terengganu", 50, 2.5},
	{"Kuala Terengganu", "Kota Bharu", 45, 2.5},

	// East Malaysia, sea or air freight
	{"Port Klang", "Kuching", 300, 24},
	{"Kuching", "Sibu", 50, 3.0},
	{"Sibu", "Bintulu", 60, 3.5},
	{"Bintulu", "Miri", 55, 3.0},
	{"Port Klang", "Kota Kinabalu", 350, 26},
	{"Kota Kinabalu", "Sandakan", 70, 5.0},
	{"Kota Kinabalu", "Tawau", 80, 6.0},
	{"Kota Kinabalu", "Keningau", 40, 2.5},
}

// MalaysiaLogistics returns the Malaysian delivery network as triples carrying
// AttrCost and AttrTime. The slice is freshly allocated on every call.
func MalaysiaLogistics() []Triple {
	out := make([]Triple, len(malaysiaRoutes))
	for i, r := range malaysiaRoutes {
		out[i] = Triple{
			From:       r.from,
			To:         r.to,
			Attributes: core.Attributes{AttrCost: r.cost, AttrTime: r.time},
		}
	}

	return out
}

// MalaysiaNetwork wraps MalaysiaLogistics in an undirected NetworkDoc that
// requires both attributes.
func MalaysiaNetwork() *NetworkDoc {
	return &NetworkDoc{
		Name:     "malaysia",
		Required: []string{AttrCost, AttrTime},
		Edges:    MalaysiaLogistics(),
	}
}

// LabTraversal returns the directed eight-vertex traversal exercise graph.
// F has no outgoing edges and is kept as an isolated key.
func LabTraversal() map[string][]string {
	return map[string][]string{
		"A": {"B", "D"},
		"B": {"C", "E", "G"},
		"C": {"A"},
		"D": {"C"},
		"E": {"H"},
		"F": {},
		"G": {"F"},
		"H": {"F", "G"},
	}
}

// LabGraph builds LabTraversal as a directed core.Graph.
func LabGraph() (*core.Graph, error) {
	return BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, Adjacency(LabTraversal()))
}
