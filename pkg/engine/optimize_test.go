package engine

import (
	"context"
	"testing"

	"github.com/matzehuels/lineorder/pkg/config"
	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
)

func TestOptimizeRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := graph.New()
	_, _, err := Optimize(ctx, g, nil, config.Default())
	if err == nil {
		t.Fatal("Optimize with a cancelled context should return an error immediately")
	}
}

func TestToDOTRendersNodesAndSegments(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)

	dot := toDOT(optgraph.Build(g), g)
	if dot == "" {
		t.Fatal("toDOT returned empty output")
	}
}
