// SPDX-License-Identifier: MIT

// Package logistics plans parcel deliveries over a weighted route network.
//
// An Order (read from a customer CSV through OrderBook) names a destination
// city. The Planner routes from a fixed origin hub to that city with
// dijkstra.ShortestPath, optimizing either cost (RM) or time (hours). When the
// city is not on the network, or the network offers no path to it, a single
// FallbackPolicy reroutes the parcel to a default hub and the plan records why.
//
// The Planner only reads the graph it is given, so PlanBatch may fan out over
// many orders concurrently. Each plan carries a UUID, is logged through logrus
// and is counted in Prometheus counters registered by the caller.
package logistics
