package ilp

import (
	"strings"
	"testing"

	"github.com/matzehuels/lineorder/pkg/geocross"
	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
	"github.com/matzehuels/lineorder/pkg/scorer"
)

func newTestBuilder() *Builder {
	return &Builder{Scorer: scorer.NewDefault(), Predicate: geocross.New()}
}

func countDecCols(p *Problem) int {
	n := 0
	for _, c := range p.Cols {
		if strings.HasPrefix(c.Name, "x_dec(") {
			n++
		}
	}
	return n
}

// S1: a single edge u-v carrying two lines and no direction constraints
// produces exactly the 2x2 assignment block and no crossing decisions.
func TestBuildTrivialSingleEdgeTwoLines(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e, b, graph.NoDirection)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(p.Cols) != 4 {
		t.Fatalf("len(Cols) = %d, want 4", len(p.Cols))
	}
	if len(p.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(p.Rows))
	}
	if countDecCols(p) != 0 {
		t.Fatalf("expected no crossing decision variables, got %d", countDecCols(p))
	}
}

// Boundary 9: cardinality-1 segment produces exactly one assignment
// variable and one position/line row each, no crossing decisions.
func TestBuildCardinalityOneSegment(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(p.Cols) != 1 {
		t.Fatalf("len(Cols) = %d, want 1", len(p.Cols))
	}
	if len(p.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(p.Rows))
	}
}

// Boundary 10: a node of degree 1 (the endpoint of a single dangling edge)
// never produces a crossing decision variable — there's no incident pair
// to cross.
func TestBuildDegreeOneNodeNoCrossings(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e, b, graph.NoDirection)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if countDecCols(p) != 0 {
		t.Fatalf("expected no crossing decisions at degree-1 endpoints, got %d", countDecCols(p))
	}
}

// Boundary 11: an edge carrying only relative routes contributes no
// assignment variables.
func TestBuildRelativeOnlyEdgeContributesNoVars(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	w := g.AddNode("w")
	ref, _ := g.AddRoute("A")
	relative, _ := g.AddRelativeRoute("A'", ref)

	refEdge, _ := g.AddEdge(u, v)
	_ = g.AddRouteOccurrence(refEdge, ref, graph.NoDirection)

	relOnlyEdge, _ := g.AddEdge(v, w)
	_ = g.AddRouteOccurrence(relOnlyEdge, relative, graph.NoDirection)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, c := range p.Cols {
		if strings.Contains(c.Name, "v>w") {
			t.Fatalf("relative-only segment contributed a variable: %s", c.Name)
		}
	}
}

// S4: three collinear edges with an identical route set collapse to one
// segment before the builder runs, so the assignment block is 3x3 = 9
// variables, not 3 separate 3x3 blocks (27).
func TestBuildAfterSimplificationSharesOneBlock(t *testing.T) {
	g := graph.New()
	n1 := g.AddNode("n1")
	n2 := g.AddNode("n2")
	n3 := g.AddNode("n3")
	n4 := g.AddNode("n4")
	e1, _ := g.AddEdge(n1, n2)
	e2, _ := g.AddEdge(n2, n3)
	e3, _ := g.AddEdge(n3, n4)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	c, _ := g.AddRoute("C")
	for _, e := range []graph.EdgeHandle{e1, e2, e3} {
		_ = g.AddRouteOccurrence(e, a, graph.NoDirection)
		_ = g.AddRouteOccurrence(e, b, graph.NoDirection)
		_ = g.AddRouteOccurrence(e, c, graph.NoDirection)
	}

	og := optgraph.Build(g)
	stats := og.Simplify()
	if stats.Edges != 1 {
		t.Fatalf("Simplify left %d edges, want 1", stats.Edges)
	}

	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(p.Cols) != 9 {
		t.Fatalf("len(Cols) = %d, want 9", len(p.Cols))
	}
}

// An edge with zero route occurrences contributes nothing, not an error.
func TestBuildEmptyEdgeContributesNothing(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	_, _ = g.AddEdge(u, v)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build on empty edge: %v", err)
	}
	if len(p.Cols) != 0 {
		t.Fatalf("len(Cols) = %d, want 0 for an edge with no routes", len(p.Cols))
	}
}

func TestHumanReadableOmitsZeroCoefficients(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	e, _ := g.AddEdge(u, v)
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")
	_ = g.AddRouteOccurrence(e, a, graph.NoDirection)
	_ = g.AddRouteOccurrence(e, b, graph.NoDirection)

	og := optgraph.Build(g)
	p, err := newTestBuilder().Build(og, g)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dump := HumanReadable(p)
	if !strings.HasPrefix(dump, "min 0\n") {
		t.Fatalf("all-zero objective should render as \"min 0\": %q", dump)
	}
	if !strings.Contains(dump, "x_(u>v#0,l=A,p=0) + x_(u>v#0,l=B,p=0) = 1\n") {
		t.Fatalf("dump missing position-sum row: %q", dump)
	}
}
