package maxflow

import (
	"fmt"
	"math"

	"github.com/flooose01/image-segmentation/network"
)

// Assert gates the optional post-condition sanity checks run at the end of
// Solve: feasibility, s∈cut, t∉cut, and cut-capacity==flow-value.
// They cost an extra O(V+E) pass and are recommended during development;
// set Assert=false in a release build to skip them.
var Assert = true

// Result holds the outcome of a completed Solve: the max-flow value and
// the source-side reachable set in the final residual graph (the min cut).
type Result[V comparable] struct {
	value int
	cut   map[V]struct{}
}

// MaxFlow returns the computed maximum s→t flow value.
func (r *Result[V]) MaxFlow() int { return r.value }

// MinCut returns the set of vertices on the source side of the minimum
// s-t cut (including s, excluding t).
func (r *Result[V]) MinCut() map[V]struct{} {
	cut := make(map[V]struct{}, len(r.cut))
	for v := range r.cut {
		cut[v] = struct{}{}
	}

	return cut
}

// InCut reports whether v is on the source side of the minimum cut.
func (r *Result[V]) InCut(v V) bool {
	_, ok := r.cut[v]

	return ok
}

// Solve computes the maximum flow from s to t in g and the corresponding
// minimum cut, using the shortest-augmenting-path (Edmonds–Karp) method.
//
// Preconditions: s and t must both be vertices of g, s != t, and g's
// starting flow must already be feasible (every edge within
// [0, Capacity], and net flow zero at every vertex other than s and t).
// A freshly built network with zero flow on every edge always satisfies
// this. Violating any precondition fails with a specific sentinel error
// and performs no mutation.
func Solve[V comparable](g *network.FlowNetwork[V], s, t V) (*Result[V], error) {
	if !g.Contains(s) {
		return nil, ErrSourceNotFound
	}
	if !g.Contains(t) {
		return nil, ErrSinkNotFound
	}
	if s == t {
		return nil, ErrSourceEqualsSink
	}
	if err := checkFeasible(g, s, t); err != nil {
		return nil, err
	}

	value, err := excess(g, t)
	if err != nil {
		return nil, err
	}

	for {
		path, bottleneck, err := shortestAugmentingPath(g, s, t)
		if err != nil {
			return nil, err
		}
		if path == nil {
			break
		}

		for i := 1; i < len(path); i++ {
			w := path[i].vertex
			if err := path[i].via.AddResidualFlow(w, bottleneck); err != nil {
				return nil, err
			}
		}
		value += bottleneck
	}

	cut, err := residualReachable(g, s)
	if err != nil {
		return nil, err
	}
	res := &Result[V]{value: value, cut: cut}

	if Assert {
		if err := assertPostConditions(g, s, t, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// pathNode pairs a BFS-discovered vertex with the edge used to reach it.
type pathNode[V comparable] struct {
	vertex V
	via    *network.Edge[V]
}

// shortestAugmentingPath runs breadth-first search from s over the
// implicit residual graph (an edge (v,w) is traversable iff its residual
// capacity toward w is positive), in network.Neighbors(v) order. It
// returns the discovered s→t path (nil if t is unreachable) and the
// bottleneck residual capacity along that path.
func shortestAugmentingPath[V comparable](g *network.FlowNetwork[V], s, t V) ([]pathNode[V], int, error) {
	cameVia := map[V]*network.Edge[V]{}
	visited := map[V]struct{}{s: {}}
	queue := []V{s}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range nbrs {
			w, err := e.Other(v)
			if err != nil {
				return nil, 0, err
			}
			if _, seen := visited[w]; seen {
				continue
			}
			rc, err := e.ResidualCapacity(w)
			if err != nil {
				return nil, 0, err
			}
			if rc <= 0 {
				continue
			}
			visited[w] = struct{}{}
			cameVia[w] = e
			if w == t {
				return reconstructPath(cameVia, s, t), bottleneckOf(cameVia, s, t), nil
			}
			queue = append(queue, w)
		}
	}

	return nil, 0, nil
}

// reconstructPath walks cameVia backward from t to s and returns the path
// from s to t as a sequence of pathNode, each carrying the edge used to
// reach it from its predecessor (nil for s, which has no predecessor on
// the path).
func reconstructPath[V comparable](cameVia map[V]*network.Edge[V], s, t V) []pathNode[V] {
	var rev []V
	cur := t
	for {
		rev = append(rev, cur)
		if cur == s {
			break
		}
		e := cameVia[cur]
		cur, _ = e.Other(cur)
	}

	path := make([]pathNode[V], len(rev))
	for i, v := range rev {
		j := len(rev) - 1 - i
		path[j] = pathNode[V]{vertex: v}
	}
	for i := 1; i < len(path); i++ {
		path[i].via = cameVia[path[i].vertex]
	}

	return path
}

// bottleneckOf computes the minimum residual capacity along the path
// reconstructed from cameVia.
func bottleneckOf[V comparable](cameVia map[V]*network.Edge[V], s, t V) int {
	bottleneck := math.MaxInt
	cur := t
	for cur != s {
		e := cameVia[cur]
		rc, _ := e.ResidualCapacity(cur)
		if rc < bottleneck {
			bottleneck = rc
		}
		cur, _ = e.Other(cur)
	}

	return bottleneck
}

// residualReachable returns the set of vertices reachable from s in the
// final residual graph: the minimum cut's source side.
func residualReachable[V comparable](g *network.FlowNetwork[V], s V) (map[V]struct{}, error) {
	visited := map[V]struct{}{s: {}}
	queue := []V{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, e := range nbrs {
			w, err := e.Other(v)
			if err != nil {
				return nil, err
			}
			if _, seen := visited[w]; seen {
				continue
			}
			rc, err := e.ResidualCapacity(w)
			if err != nil {
				return nil, err
			}
			if rc <= 0 {
				continue
			}
			visited[w] = struct{}{}
			queue = append(queue, w)
		}
	}

	return visited, nil
}

// excess returns net in-flow minus net out-flow at v: Σ in-flow(v) − Σ
// out-flow(v).
func excess[V comparable](g *network.FlowNetwork[V], v V) (int, error) {
	in, err := g.InEdges(v)
	if err != nil {
		return 0, err
	}
	out, err := g.OutEdges(v)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, e := range in {
		total += e.Flow
	}
	for _, e := range out {
		total -= e.Flow
	}

	return total, nil
}

// checkFeasible verifies every edge satisfies its capacity bounds and that
// net flow is zero at every vertex other than s and t.
func checkFeasible[V comparable](g *network.FlowNetwork[V], s, t V) error {
	for _, v := range g.Vertices() {
		out, err := g.OutEdges(v)
		if err != nil {
			return err
		}
		for _, e := range out {
			if e.Flow < 0 || e.Flow > e.Capacity {
				return fmt.Errorf("%w: edge %v violates capacity bounds", ErrInitialFlowInfeasible, e)
			}
		}
		if v == s || v == t {
			continue
		}
		ex, err := excess(g, v)
		if err != nil {
			return err
		}
		if ex != 0 {
			return fmt.Errorf("%w: non-terminal vertex %v has non-zero excess %d", ErrInitialFlowInfeasible, v, ex)
		}
	}

	return nil
}

// assertPostConditions re-validates the optimality conditions listed on
// Assert. It is only invoked when Assert is true.
func assertPostConditions[V comparable](g *network.FlowNetwork[V], s, t V, res *Result[V]) error {
	if err := checkFeasible(g, s, t); err != nil {
		return err
	}
	if !res.InCut(s) {
		return fmt.Errorf("maxflow: postcondition violated: source not in min cut")
	}
	if res.InCut(t) {
		return fmt.Errorf("maxflow: postcondition violated: sink in min cut")
	}

	cutValue := 0
	for v := range res.cut {
		out, err := g.OutEdges(v)
		if err != nil {
			return err
		}
		for _, e := range out {
			if !res.InCut(e.Destination) {
				cutValue += e.Capacity
			}
		}
	}
	if cutValue != res.value {
		return fmt.Errorf("maxflow: postcondition violated: cut capacity %d != max flow %d", cutValue, res.value)
	}

	return nil
}
