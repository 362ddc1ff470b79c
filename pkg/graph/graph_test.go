package graph

import "testing"

func TestAddRouteOccurrenceRejectsBadDirection(t *testing.T) {
	g := New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	w := g.AddNode("w")
	e, err := g.AddEdge(u, v)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	r, err := g.AddRoute("A")
	if err != nil {
		t.Fatalf("AddRoute: %v", err)
	}
	if err := g.AddRouteOccurrence(e, r, w); err != ErrInvalidDirection {
		t.Fatalf("got %v, want ErrInvalidDirection", err)
	}
}

func TestAddRelativeRouteTracksCollapsedPartners(t *testing.T) {
	g := New()
	ref, err := g.AddRoute("A")
	if err != nil {
		t.Fatalf("AddRoute: %v", err)
	}
	if _, err := g.AddRelativeRoute("A'", ref); err != nil {
		t.Fatalf("AddRelativeRoute: %v", err)
	}
	route, _ := g.Route(ref)
	if route.NumCollapsedPartners != 1 {
		t.Fatalf("NumCollapsedPartners = %d, want 1", route.NumCollapsedPartners)
	}
}

func TestEdgeCardinalityExcludesRelatives(t *testing.T) {
	g := New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	aPrime, _ := g.AddRelativeRoute("A'", a)
	_ = g.AddRouteOccurrence(e, a, NoDirection)
	_ = g.AddRouteOccurrence(e, b, NoDirection)
	_ = g.AddRouteOccurrence(e, aPrime, NoDirection)

	edge, _ := g.Edge(e)
	if got := edge.Cardinality(g, true); got != 2 {
		t.Fatalf("non-relative cardinality = %d, want 2", got)
	}
	if got := edge.Cardinality(g, false); got != 3 {
		t.Fatalf("total cardinality = %d, want 3", got)
	}
}

func TestContinuedRoutesIn(t *testing.T) {
	// u --e1--> n --e2--> v. Route A runs both directions and occurs on
	// both edges; route B only occurs on e1, so it does not continue.
	g := New()
	u := g.AddNode("u")
	n := g.AddNode("n")
	v := g.AddNode("v")
	e1, _ := g.AddEdge(u, n)
	e2, _ := g.AddEdge(n, v)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	_ = g.AddRouteOccurrence(e1, a, NoDirection)
	_ = g.AddRouteOccurrence(e2, a, NoDirection)
	_ = g.AddRouteOccurrence(e1, b, NoDirection)

	edge1, _ := g.Edge(e1)
	edge2, _ := g.Edge(e2)
	continued := ContinuedRoutesIn(g, n, edge1, edge2)
	if len(continued) != 1 || continued[0] != a {
		t.Fatalf("ContinuedRoutesIn = %v, want [A]", continued)
	}
}
