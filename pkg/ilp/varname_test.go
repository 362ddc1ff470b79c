package ilp

import (
	"testing"

	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
)

// Two parallel edges between the same ordered node pair (e.g. two tracks
// running the same nominal direction between the same stations) must get
// distinct segment names, or their assignment variables alias onto the
// same ILP columns.
func TestSegNameDisambiguatesParallelEdgesBetweenSameNodes(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e1, _ := g.AddEdge(u, v)
	e2, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, a, graph.NoDirection)

	og := optgraph.Build(g)
	var seg1, seg2 optgraph.OptEdgeHandle
	for _, eh := range og.EdgeHandles() {
		seg, _ := og.Edge(eh)
		switch seg.Reference() {
		case e1:
			seg1 = eh
		case e2:
			seg2 = eh
		}
	}

	name1 := segName(og, seg1)
	name2 := segName(og, seg2)
	if name1 == name2 {
		t.Fatalf("segName must disambiguate parallel edges, got identical names %q", name1)
	}
}

func TestVarNameDistinguishesParallelEdges(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e1, _ := g.AddEdge(u, v)
	e2, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, a, graph.NoDirection)

	og := optgraph.Build(g)
	edges := og.EdgeHandles()
	if len(edges) != 2 {
		t.Fatalf("want 2 segments, got %d", len(edges))
	}

	n1 := VarName(og, g, edges[0], a, 0)
	n2 := VarName(og, g, edges[1], a, 0)
	if n1 == n2 {
		t.Fatalf("VarName must not alias across parallel segments, got identical names %q", n1)
	}
}
