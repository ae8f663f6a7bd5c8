// Package network_test verifies FlowNetwork's method-level contracts
// with plain testing.T cases and no third-party assertion library.
package network_test

import (
	"errors"
	"testing"

	"github.com/flooose01/image-segmentation/network"
)

func TestAddEdgeAndIncidence(t *testing.T) {
	g := network.New[string]()
	e1 := &network.Edge[string]{Source: "s", Destination: "v0", Capacity: 3}
	e2 := &network.Edge[string]{Source: "v0", Destination: "t", Capacity: 2}

	if err := g.AddEdge(e1); err != nil {
		t.Fatalf("AddEdge(e1): %v", err)
	}
	if err := g.AddEdge(e2); err != nil {
		t.Fatalf("AddEdge(e2): %v", err)
	}

	out, err := g.OutEdges("s")
	if err != nil {
		t.Fatalf("OutEdges(s): %v", err)
	}
	if len(out) != 1 || out[0] != e1 {
		t.Fatalf("OutEdges(s) = %v, want [e1]", out)
	}

	in, err := g.InEdges("t")
	if err != nil {
		t.Fatalf("InEdges(t): %v", err)
	}
	if len(in) != 1 || in[0] != e2 {
		t.Fatalf("InEdges(t) = %v, want [e2]", in)
	}
}

func TestOutEdgesCopyIsIndependent(t *testing.T) {
	g := network.New[string]()
	e1 := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 1}
	_ = g.AddEdge(e1)

	copy1, _ := g.OutEdges("s")
	copy1[0] = &network.Edge[string]{Source: "s", Destination: "t", Capacity: 99}

	copy2, _ := g.OutEdges("s")
	if copy2[0].Capacity != 1 {
		t.Fatalf("mutating one OutEdges() copy leaked into another")
	}
}

func TestUnknownVertex(t *testing.T) {
	g := network.New[string]()
	if _, err := g.OutEdges("nope"); !errors.Is(err, network.ErrUnknownVertex) {
		t.Fatalf("OutEdges(unknown) = %v, want ErrUnknownVertex", err)
	}
	if _, err := g.InEdges("nope"); !errors.Is(err, network.ErrUnknownVertex) {
		t.Fatalf("InEdges(unknown) = %v, want ErrUnknownVertex", err)
	}
	if g.Contains("nope") {
		t.Fatalf("Contains(unknown) = true")
	}
}

func TestNeighborsConcatenatesOutThenIn(t *testing.T) {
	g := network.New[string]()
	eOut := &network.Edge[string]{Source: "v", Destination: "a", Capacity: 1}
	eIn := &network.Edge[string]{Source: "b", Destination: "v", Capacity: 1}
	_ = g.AddEdge(eOut)
	_ = g.AddEdge(eIn)

	nbrs, err := g.Neighbors("v")
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(nbrs) != 2 || nbrs[0] != eOut || nbrs[1] != eIn {
		t.Fatalf("Neighbors(v) = %v, want [eOut, eIn] in that order", nbrs)
	}
}

func TestParallelEdgesAndSelfLoopsPermitted(t *testing.T) {
	g := network.New[string]()
	e1 := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 1}
	e2 := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 2}
	loop := &network.Edge[string]{Source: "s", Destination: "s", Capacity: 5}

	for _, e := range []*network.Edge[string]{e1, e2, loop} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	out, _ := g.OutEdges("s")
	if len(out) != 3 {
		t.Fatalf("OutEdges(s) has %d edges, want 3 (parallel pair + self-loop)", len(out))
	}
}

func TestResidualCapacityLaw(t *testing.T) {
	e := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 10, Flow: 4}
	fwd, err := e.ResidualCapacity("t")
	if err != nil || fwd != 6 {
		t.Fatalf("forward residual = %d, %v, want 6, nil", fwd, err)
	}
	rev, err := e.ResidualCapacity("s")
	if err != nil || rev != 4 {
		t.Fatalf("reverse residual = %d, %v, want 4, nil", rev, err)
	}
	if fwd+rev != e.Capacity {
		t.Fatalf("residual(dst)+residual(src) = %d, want capacity %d", fwd+rev, e.Capacity)
	}
	if _, err := e.ResidualCapacity("other"); !errors.Is(err, network.ErrEndpointMismatch) {
		t.Fatalf("ResidualCapacity(non-endpoint) = %v, want ErrEndpointMismatch", err)
	}
}

func TestAddResidualFlowForwardAndReverse(t *testing.T) {
	e := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 10}

	if err := e.AddResidualFlow("t", 7); err != nil {
		t.Fatalf("forward AddResidualFlow: %v", err)
	}
	if e.Flow != 7 {
		t.Fatalf("Flow = %d, want 7", e.Flow)
	}

	if err := e.AddResidualFlow("s", 3); err != nil {
		t.Fatalf("reverse AddResidualFlow: %v", err)
	}
	if e.Flow != 4 {
		t.Fatalf("Flow = %d, want 4", e.Flow)
	}
}

func TestAddResidualFlowRejectsInfeasibleDelta(t *testing.T) {
	e := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 5}
	if err := e.AddResidualFlow("t", 6); !errors.Is(err, network.ErrInfeasibleDelta) {
		t.Fatalf("over-capacity push = %v, want ErrInfeasibleDelta", err)
	}

	e2 := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 5}
	if err := e2.AddResidualFlow("s", 1); !errors.Is(err, network.ErrInfeasibleDelta) {
		t.Fatalf("negative-flow push = %v, want ErrInfeasibleDelta", err)
	}

	if err := e.AddResidualFlow("t", -1); !errors.Is(err, network.ErrNegativeDelta) {
		t.Fatalf("negative delta = %v, want ErrNegativeDelta", err)
	}
}

func TestOtherHandlesSelfLoop(t *testing.T) {
	loop := &network.Edge[string]{Source: "s", Destination: "s", Capacity: 1}
	other, err := loop.Other("s")
	if err != nil || other != "s" {
		t.Fatalf("Other(self-loop) = %v, %v, want s, nil", other, err)
	}

	e := &network.Edge[string]{Source: "s", Destination: "t", Capacity: 1}
	if _, err := e.Other("nope"); !errors.Is(err, network.ErrEndpointMismatch) {
		t.Fatalf("Other(non-endpoint) = %v, want ErrEndpointMismatch", err)
	}
}

func TestNegativeCapacityRejected(t *testing.T) {
	g := network.New[string]()
	err := g.AddEdge(&network.Edge[string]{Source: "s", Destination: "t", Capacity: -1})
	if !errors.Is(err, network.ErrNegativeCapacity) {
		t.Fatalf("AddEdge(negative capacity) = %v, want ErrNegativeCapacity", err)
	}
}
