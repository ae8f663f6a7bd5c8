package network

import "fmt"

// FlowNetwork is a directed multigraph of V vertices, with per-vertex
// ordered incoming/outgoing edge lists. Parallel edges and self-loops are
// permitted; nothing is deduplicated.
type FlowNetwork[V comparable] struct {
	out map[V][]*Edge[V]
	in  map[V][]*Edge[V]
}

// New constructs an empty FlowNetwork. Vertices and edges are added by
// AddEdge only; there is no separate AddVertex — the vertex set is always
// the union of endpoints of added edges.
func New[V comparable]() *FlowNetwork[V] {
	return &FlowNetwork[V]{
		out: make(map[V][]*Edge[V]),
		in:  make(map[V][]*Edge[V]),
	}
}

// AddEdge appends e to the outgoing list of e.Source and the incoming list
// of e.Destination, creating empty incidence lists for either endpoint on
// first sight. Complexity: O(1) amortized. No deduplication: adding the
// same (source, destination, capacity) twice yields two parallel edges.
func (g *FlowNetwork[V]) AddEdge(e *Edge[V]) error {
	if e.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, e.Capacity)
	}

	g.ensureVertex(e.Source)
	g.ensureVertex(e.Destination)
	g.out[e.Source] = append(g.out[e.Source], e)
	g.in[e.Destination] = append(g.in[e.Destination], e)

	return nil
}

// ensureVertex registers v with empty incidence lists if this is its first
// appearance, so Contains/OutEdges/InEdges see it immediately.
func (g *FlowNetwork[V]) ensureVertex(v V) {
	if _, ok := g.out[v]; !ok {
		g.out[v] = nil
	}
	if _, ok := g.in[v]; !ok {
		g.in[v] = nil
	}
}

// Contains reports whether v has appeared as the source or destination of
// any added edge.
func (g *FlowNetwork[V]) Contains(v V) bool {
	_, ok := g.out[v]

	return ok
}

// Vertices returns the set of known vertices, in no particular order.
func (g *FlowNetwork[V]) Vertices() []V {
	vs := make([]V, 0, len(g.out))
	for v := range g.out {
		vs = append(vs, v)
	}

	return vs
}

// OutEdges returns an independently mutable copy of v's outgoing edge
// list, in insertion order. Fails with ErrUnknownVertex if v was never
// added.
func (g *FlowNetwork[V]) OutEdges(v V) ([]*Edge[V], error) {
	edges, ok := g.out[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}

	return append([]*Edge[V](nil), edges...), nil
}

// InEdges returns an independently mutable copy of v's incoming edge list,
// in insertion order. Fails with ErrUnknownVertex if v was never added.
func (g *FlowNetwork[V]) InEdges(v V) ([]*Edge[V], error) {
	edges, ok := g.in[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}

	return append([]*Edge[V](nil), edges...), nil
}

// Neighbors returns OutEdges(v) concatenated with InEdges(v), in that
// order. This concatenation order is observable by the max-flow solver's
// breadth-first search and determines its tie-breaking.
func (g *FlowNetwork[V]) Neighbors(v V) ([]*Edge[V], error) {
	out, err := g.OutEdges(v)
	if err != nil {
		return nil, err
	}
	in, err := g.InEdges(v)
	if err != nil {
		return nil, err
	}

	return append(out, in...), nil
}
