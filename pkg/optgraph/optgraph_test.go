package optgraph

import (
	"testing"

	"github.com/matzehuels/lineorder/pkg/graph"
)

func TestBuildProjectsOneToOne(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)

	og := Build(g)
	if len(og.NodeHandles()) != 2 {
		t.Fatalf("want 2 nodes, got %d", len(og.NodeHandles()))
	}
	if len(og.EdgeHandles()) != 1 {
		t.Fatalf("want 1 edge, got %d", len(og.EdgeHandles()))
	}
	seg, _ := og.Edge(og.EdgeHandles()[0])
	if len(seg.Etgs) != 1 || seg.Etgs[0].Edge != e || !seg.Etgs[0].Dir {
		t.Fatalf("want a single forward Etg for e, got %v", seg.Etgs)
	}
}

func TestSimplifyCollapsesThroughChain(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	n := g.AddNode("n")
	w := g.AddNode("w")
	e1, _ := g.AddEdge(u, n)
	e2, _ := g.AddEdge(n, w)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, a, graph.NoDirection)

	og := Build(g)
	og.Simplify()

	if len(og.NodeHandles()) != 2 {
		t.Fatalf("want n collapsed away leaving 2 nodes, got %d", len(og.NodeHandles()))
	}
	if len(og.EdgeHandles()) != 1 {
		t.Fatalf("want 1 merged segment, got %d", len(og.EdgeHandles()))
	}

	seg, _ := og.Edge(og.EdgeHandles()[0])
	if len(seg.Etgs) != 2 || seg.Etgs[0].Edge != e1 || seg.Etgs[1].Edge != e2 {
		t.Fatalf("want Etgs [e1 e2], got %v", seg.Etgs)
	}
	if !seg.Etgs[0].Dir || !seg.Etgs[1].Dir {
		t.Fatalf("a straight through-chain must not flip Dir, got %v", seg.Etgs)
	}

	fromNode, _ := og.Node(seg.From)
	toNode, _ := og.Node(seg.To)
	fromG, _ := g.Node(fromNode.Node)
	toG, _ := g.Node(toNode.Node)
	if fromG.ID != "u" || toG.ID != "w" {
		t.Fatalf("want merged segment u->w, got %s->%s", fromG.ID, toG.ID)
	}
}

// A node where both segments point away from it (head-to-head) must still
// collapse, splicing one side in backwards with its Dir bits flipped.
func TestSimplifyCollapsesHeadToHeadNode(t *testing.T) {
	g := graph.New()
	n := g.AddNode("n")
	x := g.AddNode("x")
	y := g.AddNode("y")
	e1, _ := g.AddEdge(n, x)
	e2, _ := g.AddEdge(n, y)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, a, graph.NoDirection)

	og := Build(g)
	og.Simplify()

	if len(og.NodeHandles()) != 2 {
		t.Fatalf("want n collapsed away leaving 2 nodes, got %d", len(og.NodeHandles()))
	}
	if len(og.EdgeHandles()) != 1 {
		t.Fatalf("want 1 merged segment, got %d", len(og.EdgeHandles()))
	}

	seg, _ := og.Edge(og.EdgeHandles()[0])
	if len(seg.Etgs) != 2 {
		t.Fatalf("want 2 Etgs, got %v", seg.Etgs)
	}
	if seg.Etgs[0].Edge != e1 || seg.Etgs[0].Dir {
		t.Fatalf("e1 must be spliced in backwards, got %v", seg.Etgs[0])
	}
	if seg.Etgs[1].Edge != e2 || !seg.Etgs[1].Dir {
		t.Fatalf("e2 must keep its forward direction, got %v", seg.Etgs[1])
	}

	fromNode, _ := og.Node(seg.From)
	toNode, _ := og.Node(seg.To)
	fromG, _ := g.Node(fromNode.Node)
	toG, _ := g.Node(toNode.Node)
	if fromG.ID != "x" || toG.ID != "y" {
		t.Fatalf("want merged segment x->y, got %s->%s", fromG.ID, toG.ID)
	}
}

// A node where both segments point into it (tail-to-tail) must also
// collapse, this time splicing the second side in backwards.
func TestSimplifyCollapsesTailToTailNode(t *testing.T) {
	g := graph.New()
	x := g.AddNode("x")
	y := g.AddNode("y")
	n := g.AddNode("n")
	e1, _ := g.AddEdge(x, n)
	e2, _ := g.AddEdge(y, n)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, a, graph.NoDirection)

	og := Build(g)
	og.Simplify()

	if len(og.NodeHandles()) != 2 {
		t.Fatalf("want n collapsed away leaving 2 nodes, got %d", len(og.NodeHandles()))
	}
	if len(og.EdgeHandles()) != 1 {
		t.Fatalf("want 1 merged segment, got %d", len(og.EdgeHandles()))
	}

	seg, _ := og.Edge(og.EdgeHandles()[0])
	if len(seg.Etgs) != 2 {
		t.Fatalf("want 2 Etgs, got %v", seg.Etgs)
	}
	if seg.Etgs[0].Edge != e1 || !seg.Etgs[0].Dir {
		t.Fatalf("e1 must keep its forward direction, got %v", seg.Etgs[0])
	}
	if seg.Etgs[1].Edge != e2 || seg.Etgs[1].Dir {
		t.Fatalf("e2 must be spliced in backwards, got %v", seg.Etgs[1])
	}

	fromNode, _ := og.Node(seg.From)
	toNode, _ := og.Node(seg.To)
	fromG, _ := g.Node(fromNode.Node)
	toG, _ := g.Node(toNode.Node)
	if fromG.ID != "x" || toG.ID != "y" {
		t.Fatalf("want merged segment x->y, got %s->%s", fromG.ID, toG.ID)
	}
}

func TestSimplifyLeavesMismatchedRouteSetsUncollapsed(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	n := g.AddNode("n")
	w := g.AddNode("w")
	e1, _ := g.AddEdge(u, n)
	e2, _ := g.AddEdge(n, w)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	_ = g.AddRouteOccurrence(e1, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e2, b, graph.NoDirection)

	og := Build(g)
	og.Simplify()

	if len(og.EdgeHandles()) != 2 {
		t.Fatalf("want no collapse across mismatched route sets, got %d edges", len(og.EdgeHandles()))
	}
}
