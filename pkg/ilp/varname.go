package ilp

import (
	"fmt"

	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
)

// segName returns a human-readable name for a segment, built from the IDs
// of its endpoints plus its reference underlying edge's handle. The handle
// suffix is required, not cosmetic: two distinct segments (e.g. parallel
// tracks) can share the same ordered endpoint pair, and since addCol dedups
// columns by name, endpoint IDs alone would silently alias their variables
// onto one column.
func segName(og *optgraph.OptGraph, e optgraph.OptEdgeHandle) string {
	edge, _ := og.Edge(e)
	from, _ := og.Node(edge.From)
	to, _ := og.Node(edge.To)
	fromNode, _ := og.Graph().Node(from.Node)
	toNode, _ := og.Graph().Node(to.Node)
	return fmt.Sprintf("%s>%s#%d", fromNode.ID, toNode.ID, edge.Reference())
}

// VarName returns the canonical name of the assignment variable placing
// route r at position p on segment e: "x_(<seg>,l=<route>,p=<p>)".
func VarName(og *optgraph.OptGraph, g *graph.Graph, e optgraph.OptEdgeHandle, r graph.RouteHandle, p int) string {
	route, _ := g.Route(r)
	return fmt.Sprintf("x_(%s,l=%s,p=%d)", segName(og, e), route.ID, p)
}

// SumPosName returns the name of the per-position uniqueness row on
// segment e: "sum(<seg>,p=<p>)".
func SumPosName(og *optgraph.OptGraph, e optgraph.OptEdgeHandle, p int) string {
	return fmt.Sprintf("sum(%s,p=%d)", segName(og, e), p)
}

// SumLineName returns the name of the per-line uniqueness row on segment e:
// "sum(<seg>,l=<route>)".
func SumLineName(og *optgraph.OptGraph, g *graph.Graph, e optgraph.OptEdgeHandle, r graph.RouteHandle) string {
	route, _ := g.Route(r)
	return fmt.Sprintf("sum(%s,l=%s)", segName(og, e), route.ID)
}

// DecSameName returns the name of a same-segment crossing decision variable
// between rA on segA and rB on segB, evaluated at node n.
func DecSameName(og *optgraph.OptGraph, g *graph.Graph, segA, segB optgraph.OptEdgeHandle, rA, rB graph.RouteHandle, n optgraph.OptNodeHandle) string {
	routeA, _ := g.Route(rA)
	routeB, _ := g.Route(rB)
	node, _ := og.Node(n)
	gnode, _ := g.Node(node.Node)
	return fmt.Sprintf("x_dec(%s,%s,%s,%s,%s)", segName(og, segA), segName(og, segB), routeA.ID, routeB.ID, gnode.ID)
}

// DecDiffName returns the name of a different-segment crossing decision
// variable for rA,rB leaving segA into segB,segC at node n.
func DecDiffName(og *optgraph.OptGraph, g *graph.Graph, segA, segB, segC optgraph.OptEdgeHandle, rA, rB graph.RouteHandle, n optgraph.OptNodeHandle) string {
	routeA, _ := g.Route(rA)
	routeB, _ := g.Route(rB)
	node, _ := og.Node(n)
	gnode, _ := g.Node(node.Node)
	return fmt.Sprintf("x_dec(%s,%s,%s,%s,%s,%s)", segName(og, segA), segName(og, segB), segName(og, segC), routeA.ID, routeB.ID, gnode.ID)
}

// DecSumSameName returns the name of the linearization row for a
// same-segment decision variable.
func DecSumSameName(decName string, pAinA, pAinB, pBinA, pBinB int) string {
	return fmt.Sprintf("dec_sum(%s,%d,%d,%d,%d)", decName, pAinA, pAinB, pBinA, pBinB)
}

// DecSumDiffName returns the name of the linearization row for a
// different-segment decision variable.
func DecSumDiffName(decName string, pAinA, pBinA int) string {
	return fmt.Sprintf("dec_sum(%s,%d,%d)", decName, pAinA, pBinA)
}
