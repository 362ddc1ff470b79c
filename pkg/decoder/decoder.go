// Package decoder reads a solved ILP back into a left-to-right ordering
// per underlying graph edge, and expands routes bundled via RelativeTo
// adjacent to their reference.
package decoder

import (
	decerrors "github.com/matzehuels/lineorder/pkg/errors"
	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/ilp"
	"github.com/matzehuels/lineorder/pkg/optgraph"
)

// OrderingConfig maps each underlying graph edge to the left-to-right
// permutation of its route occurrences, non-relative routes first (in
// solved position order) with relative routes inserted by Expand.
type OrderingConfig map[graph.EdgeHandle][]graph.RouteHandle

// Decode reads values (as returned by a solver Result) into an
// OrderingConfig, asserting that every segment position received exactly
// one route and that no route was placed at more than one position.
func Decode(og *optgraph.OptGraph, g *graph.Graph, values map[string]float64) (OrderingConfig, error) {
	cfg := make(OrderingConfig)
	for _, eh := range og.EdgeHandles() {
		e, _ := og.Edge(eh)
		ref, ok := g.Edge(e.Reference())
		if !ok {
			return nil, decerrors.New(decerrors.ErrCodeDecoderAssertion, "segment references unknown edge")
		}
		routes := ref.NonRelativeRoutes(g)
		k := len(routes)
		if k == 0 {
			continue
		}

		positions, err := decodePositions(og, g, eh, routes, k, values)
		if err != nil {
			return nil, err
		}

		frontDir := e.Etgs[0].Dir
		for _, etgRef := range e.Etgs {
			ordering := positions
			if etgRef.Dir != frontDir {
				ordering = reversed(positions)
			}
			cfg[etgRef.Edge] = append([]graph.RouteHandle(nil), ordering...)
		}
	}
	return cfg, nil
}

// decodePositions reads, for each position 0..k-1, the unique route whose
// assignment variable is set, rejecting a route that is set at two
// positions.
func decodePositions(og *optgraph.OptGraph, g *graph.Graph, eh optgraph.OptEdgeHandle, routes []graph.RouteHandle, k int, values map[string]float64) ([]graph.RouteHandle, error) {
	positions := make([]graph.RouteHandle, k)
	placed := make(map[graph.RouteHandle]bool, k)
	for p := 0; p < k; p++ {
		assigned := graph.NoRoute
		count := 0
		for _, r := range routes {
			name := ilp.VarName(og, g, eh, r, p)
			if values[name] > 0.5 {
				assigned = r
				count++
			}
		}
		if count != 1 {
			return nil, decerrors.New(decerrors.ErrCodeDecoderAssertion,
				"segment position %d: %d routes assigned, want exactly 1", p, count)
		}
		if placed[assigned] {
			return nil, decerrors.New(decerrors.ErrCodeDecoderAssertion,
				"segment position %d: route already assigned to another position", p)
		}
		placed[assigned] = true
		positions[p] = assigned
	}
	return positions, nil
}

func reversed(in []graph.RouteHandle) []graph.RouteHandle {
	out := make([]graph.RouteHandle, len(in))
	for i, r := range in {
		out[len(in)-1-i] = r
	}
	return out
}

// Expand inserts every relative route adjacent to its reference in every
// underlying edge the reference reaches, by breadth-first traversal over
// edges containing the reference route.
func Expand(g *graph.Graph, cfg OrderingConfig) error {
	for _, rh := range g.RouteHandles() {
		route, ok := g.Route(rh)
		if !ok || !route.IsRelative() {
			continue
		}
		if err := expandOne(g, cfg, rh, route.RelativeTo); err != nil {
			return err
		}
	}
	return nil
}

type frontier struct {
	edge  graph.EdgeHandle
	after bool
}

// expandOne inserts r adjacent to ref in every edge reachable from ref's
// first occurrence via edges that also carry ref, tracking which side of
// ref to insert on as the boundary node's endpoint role flips.
func expandOne(g *graph.Graph, cfg OrderingConfig, r, ref graph.RouteHandle) error {
	start, ok := firstEdgeContaining(g, ref)
	if !ok {
		return nil
	}

	visited := map[graph.EdgeHandle]bool{start: true}
	queue := []frontier{{edge: start, after: false}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if err := insertAdjacent(cfg, cur.edge, r, ref, cur.after); err != nil {
			return err
		}

		edge, _ := g.Edge(cur.edge)
		for _, n := range [2]graph.NodeHandle{edge.From, edge.To} {
			node, ok := g.Node(n)
			if !ok {
				continue
			}
			for _, adjH := range adjacentEdges(node) {
				if visited[adjH] {
					continue
				}
				adjEdge, ok := g.Edge(adjH)
				if !ok || !adjEdge.ContainsRoute(ref) {
					continue
				}
				visited[adjH] = true
				boundaryFlip := (edge.To == n) == (adjEdge.To == n)
				next := cur.after
				if boundaryFlip {
					next = !next
				}
				queue = append(queue, frontier{edge: adjH, after: next})
			}
		}
	}
	return nil
}

func adjacentEdges(n *graph.Node) []graph.EdgeHandle {
	out := make([]graph.EdgeHandle, 0, len(n.Out)+len(n.In))
	out = append(out, n.Out...)
	out = append(out, n.In...)
	return out
}

func firstEdgeContaining(g *graph.Graph, r graph.RouteHandle) (graph.EdgeHandle, bool) {
	for _, eh := range g.EdgeHandles() {
		e, _ := g.Edge(eh)
		if e.ContainsRoute(r) {
			return eh, true
		}
	}
	return 0, false
}

// insertAdjacent splices r into cfg[e] immediately after or before ref.
func insertAdjacent(cfg OrderingConfig, e graph.EdgeHandle, r, ref graph.RouteHandle, after bool) error {
	ordering := cfg[e]
	pos := -1
	for i, rh := range ordering {
		if rh == ref {
			pos = i
			break
		}
	}
	if pos == -1 {
		return decerrors.New(decerrors.ErrCodeDecoderAssertion,
			"reference route missing from ordering during relative expansion")
	}
	idx := pos
	if after {
		idx = pos + 1
	}
	out := make([]graph.RouteHandle, 0, len(ordering)+1)
	out = append(out, ordering[:idx]...)
	out = append(out, r)
	out = append(out, ordering[idx:]...)
	cfg[e] = out
	return nil
}
