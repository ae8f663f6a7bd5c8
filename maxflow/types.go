// Package maxflow implements the shortest-augmenting-path (Edmonds–Karp)
// maximum-flow / minimum-cut solver for a network.FlowNetwork, as
// specified for the segmentation core's L2 layer.
//
// Solve runs breadth-first search over the implicit residual graph,
// augmenting along the shortest s→t path found, until no augmenting path
// remains. BFS visits each vertex's neighbors in network.Neighbors order
// (out-edges then in-edges, each in insertion order); the first discovery
// of a vertex wins, which makes the chosen augmenting path — and therefore
// which of several optimal min cuts is returned when more than one
// exists — fully deterministic for a given input.
//
// Complexity: O(V·E²) worst case; each BFS is O(V+E) and there are
// O(V·E) augmentations.
package maxflow

import "errors"

// Sentinel errors for Solve's preconditions.
var (
	// ErrSourceNotFound is returned when s is not a vertex of the network.
	ErrSourceNotFound = errors.New("maxflow: source not found in network")

	// ErrSinkNotFound is returned when t is not a vertex of the network.
	ErrSinkNotFound = errors.New("maxflow: sink not found in network")

	// ErrSourceEqualsSink is returned when s == t.
	ErrSourceEqualsSink = errors.New("maxflow: source equals sink")

	// ErrInitialFlowInfeasible is returned when the network's starting
	// flow violates capacity constraints or conservation at a
	// non-terminal vertex.
	ErrInitialFlowInfeasible = errors.New("maxflow: initial flow is infeasible")
)
