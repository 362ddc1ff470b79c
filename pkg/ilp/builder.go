package ilp

import (
	"fmt"

	ilperrors "github.com/matzehuels/lineorder/pkg/errors"
	"github.com/matzehuels/lineorder/pkg/geocross"
	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
	"github.com/matzehuels/lineorder/pkg/scorer"
)

// Builder constructs a Problem from an OptGraph.
type Builder struct {
	Scorer    scorer.Scorer
	Predicate geocross.Predicate
}

// NewBuilder creates a Builder with the default scorer and crossing
// predicate.
func NewBuilder() *Builder {
	return &Builder{Scorer: scorer.NewDefault(), Predicate: geocross.New()}
}

// Build walks og and produces the ILP model: position-assignment variables,
// per-position and per-line uniqueness rows, and same-segment /
// different-segment crossing decision variables and their linearization
// rows.
func (b *Builder) Build(og *optgraph.OptGraph, g *graph.Graph) (*Problem, error) {
	p := newProblem()

	for _, eh := range og.EdgeHandles() {
		if err := b.addAssignmentVars(p, og, g, eh); err != nil {
			return nil, err
		}
	}

	for _, nh := range og.NodeHandles() {
		b.addSameSegmentCrossings(p, og, g, nh)
		b.addDifferentSegmentCrossings(p, og, g, nh)
	}

	return p, nil
}

// addAssignmentVars creates the k² binary columns for segment e along with
// its position-sum and line-sum uniqueness rows.
func (b *Builder) addAssignmentVars(p *Problem, og *optgraph.OptGraph, g *graph.Graph, e optgraph.OptEdgeHandle) error {
	edge, _ := og.Edge(e)
	ref, ok := g.Edge(edge.Reference())
	if !ok {
		return ilperrors.New(ilperrors.ErrCodeModelConstruction, "segment references unknown edge")
	}
	routes := ref.NonRelativeRoutes(g)
	k := ref.Cardinality(g, true)
	if len(routes) != k {
		return ilperrors.New(ilperrors.ErrCodeModelConstruction,
			"segment %s: %d non-relative routes but cardinality %d", segName(og, e), len(routes), k)
	}
	if k == 0 {
		return nil
	}

	posRows := make([]int32, k)
	for pos := 0; pos < k; pos++ {
		posRows[pos] = p.addRow(SumPosName(og, e, pos), RowEqual, 1)
	}

	for _, r := range routes {
		lineRow := p.addRow(SumLineName(og, g, e, r), RowEqual, 1)
		for pos := 0; pos < k; pos++ {
			col := p.addCol(VarName(og, g, e, r, pos), 0)
			p.setCoef(posRows[pos], col, 1)
			p.setCoef(lineRow, col, 1)
		}
	}
	return nil
}

// addSameSegmentCrossings adds crossing decision variables for every pair
// of incident segments at n whose continuing line pairs cross in the
// node's physical layout.
func (b *Builder) addSameSegmentCrossings(p *Problem, og *optgraph.OptGraph, g *graph.Graph, n optgraph.OptNodeHandle) {
	node, _ := og.Node(n)
	adj := node.Adj()
	for i := 0; i < len(adj); i++ {
		for j := i + 1; j < len(adj); j++ {
			segA, segB := adj[i], adj[j]
			b.addSameSegmentPair(p, og, g, n, segA, segB)
		}
	}
}

func (b *Builder) addSameSegmentPair(p *Problem, og *optgraph.OptGraph, g *graph.Graph, n optgraph.OptNodeHandle, segA, segB optgraph.OptEdgeHandle) {
	node, _ := og.Node(n)
	edgeA, _ := og.Edge(segA)
	edgeB, _ := og.Edge(segB)
	refA, _ := g.Edge(edgeA.Reference())
	refB, _ := g.Edge(edgeB.Reference())

	continued := nonRelative(g, graph.ContinuedRoutesIn(g, node.Node, refA, refB))
	cardA := edgeA.ReferenceCardinality(g, true)
	cardB := edgeB.ReferenceCardinality(g, true)
	weight := b.Scorer.CrossPenSame(og, n)

	for i := 0; i < len(continued); i++ {
		for j := i + 1; j < len(continued); j++ {
			rA, rB := continued[i], continued[j]
			routeA, _ := g.Route(rA)
			routeB, _ := g.Route(rB)
			coef := weight * float64(routeA.NumCollapsedPartners+1) * float64(routeB.NumCollapsedPartners+1)
			decName := DecSameName(og, g, segA, segB, rA, rB, n)
			var decCol int32

			for pAinA := 0; pAinA < cardA; pAinA++ {
				for pBinA := 0; pBinA < cardA; pBinA++ {
					if pAinA == pBinA {
						continue
					}
					for pAinB := 0; pAinB < cardB; pAinB++ {
						for pBinB := 0; pBinB < cardB; pBinB++ {
							if pAinB == pBinB {
								continue
							}
							if !b.Predicate.Same(og, n, segA, segB, pAinA, pBinA, pAinB, pBinB) {
								continue
							}
							if decCol == 0 {
								decCol = p.addCol(decName, coef)
							}
							row := p.addRow(DecSumSameName(decName, pAinA, pAinB, pBinA, pBinB), RowUpperBound, 3)
							p.setCoef(row, p.addCol(VarName(og, g, segA, rA, pAinA), 0), 1)
							p.setCoef(row, p.addCol(VarName(og, g, segA, rB, pBinA), 0), 1)
							p.setCoef(row, p.addCol(VarName(og, g, segB, rA, pAinB), 0), 1)
							p.setCoef(row, p.addCol(VarName(og, g, segB, rB, pBinB), 0), 1)
							p.setCoef(row, decCol, -1)
						}
					}
				}
			}
		}
	}
}

// addDifferentSegmentCrossings adds crossing decision variables for pairs
// of lines leaving a common segment into two different destination
// segments at n.
func (b *Builder) addDifferentSegmentCrossings(p *Problem, og *optgraph.OptGraph, g *graph.Graph, n optgraph.OptNodeHandle) {
	node, _ := og.Node(n)
	adj := node.Adj()
	for _, segA := range adj {
		for i, segB := range adj {
			for j, segC := range adj {
				if i == j || segB == segA || segC == segA {
					continue
				}
				b.addDifferentSegmentTriple(p, og, g, n, segA, segB, segC)
			}
		}
	}
}

func (b *Builder) addDifferentSegmentTriple(p *Problem, og *optgraph.OptGraph, g *graph.Graph, n optgraph.OptNodeHandle, segA, segB, segC optgraph.OptEdgeHandle) {
	node, _ := og.Node(n)
	edgeA, _ := og.Edge(segA)
	edgeB, _ := og.Edge(segB)
	edgeC, _ := og.Edge(segC)
	refA, _ := g.Edge(edgeA.Reference())
	refB, _ := g.Edge(edgeB.Reference())
	refC, _ := g.Edge(edgeC.Reference())

	intoB := nonRelative(g, graph.ContinuedRoutesIn(g, node.Node, refA, refB))
	intoC := nonRelative(g, graph.ContinuedRoutesIn(g, node.Node, refA, refC))
	cardA := edgeA.ReferenceCardinality(g, true)
	weight := b.Scorer.CrossPenDiff(og, n)

	for _, rA := range intoB {
		for _, rB := range intoC {
			if rA == rB {
				continue
			}
			routeA, _ := g.Route(rA)
			routeB, _ := g.Route(rB)
			coef := weight * float64(routeA.NumCollapsedPartners+1) * float64(routeB.NumCollapsedPartners+1)
			decName := DecDiffName(og, g, segA, segB, segC, rA, rB, n)
			var decCol int32

			for pAinA := 0; pAinA < cardA; pAinA++ {
				for pBinA := 0; pBinA < cardA; pBinA++ {
					if pAinA == pBinA {
						continue
					}
					if !b.Predicate.Diff(og, n, segA, segB, segC, pAinA, pBinA) {
						continue
					}
					if decCol == 0 {
						decCol = p.addCol(decName, coef)
					}
					row := p.addRow(DecSumDiffName(decName, pAinA, pBinA), RowUpperBound, 1)
					p.setCoef(row, p.addCol(VarName(og, g, segA, rA, pAinA), 0), 1)
					p.setCoef(row, p.addCol(VarName(og, g, segA, rB, pBinA), 0), 1)
					p.setCoef(row, decCol, -1)
				}
			}
		}
	}
}

func nonRelative(g *graph.Graph, routes []graph.RouteHandle) []graph.RouteHandle {
	var out []graph.RouteHandle
	for _, r := range routes {
		if route, ok := g.Route(r); ok && !route.IsRelative() {
			out = append(out, r)
		}
	}
	return out
}

// HumanReadable renders p as the textual dump described by the engine's
// external interfaces: "min <linear form>" followed by each row.
func HumanReadable(p *Problem) string {
	s := "min " + linearForm(p, objCoefsByCol(p)) + "\n"
	for i, row := range p.Rows {
		coefs := make(map[int32]float64)
		rowNum := int32(i + 1)
		for idx, r := range p.Matrix.Rows {
			if r == rowNum {
				coefs[p.Matrix.Cols[idx]] = p.Matrix.Vals[idx]
			}
		}
		op := "<="
		if row.Kind == RowEqual {
			op = "="
		}
		s += fmt.Sprintf("%s %s %g\n", linearForm(p, coefs), op, row.Bound)
	}
	return s
}

func objCoefsByCol(p *Problem) map[int32]float64 {
	out := make(map[int32]float64)
	for i, c := range p.Cols {
		if c.Obj != 0 {
			out[int32(i+1)] = c.Obj
		}
	}
	return out
}

func linearForm(p *Problem, coefs map[int32]float64) string {
	s := ""
	for col := int32(1); int(col) <= len(p.Cols); col++ {
		v, ok := coefs[col]
		if !ok || v == 0 {
			continue
		}
		if s != "" {
			s += " + "
		}
		if v == 1 {
			s += p.Cols[col-1].Name
		} else {
			s += fmt.Sprintf("%g %s", v, p.Cols[col-1].Name)
		}
	}
	if s == "" {
		return "0"
	}
	return s
}
