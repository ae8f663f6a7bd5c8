// Package network implements the flow-network data structure: a directed
// multigraph of comparable vertices with integer capacity/flow edges and
// residual-capacity semantics, as specified for the segmentation core's
// L1 layer.
//
// FlowNetwork is generic over its vertex type: the segmentation builder
// instantiates it over voxel.Voxel, while the max-flow solver's own tests
// instantiate it over plain strings.
//
// FlowNetwork is single-threaded and non-suspending: vertices and edges are
// created during construction only, and the max-flow solver mutates only
// an Edge's Flow field plus its own bookkeeping. Nothing is ever deleted.
//
// Iteration order of incidence lists is deterministic — edges are returned
// in insertion order — because the max-flow solver's tie-breaking (and
// therefore which of several optimal min cuts is returned) depends on it.
//
// Invariants (always true between public operations):
//
//   - For every edge e: 0 ≤ e.Flow ≤ e.Capacity.
//   - residual(e, e.Destination) + residual(e, e.Source) == e.Capacity.
package network
