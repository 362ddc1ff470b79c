package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"

	"github.com/matzehuels/lineorder/pkg/graph"
)

// networkFile is the on-disk JSON representation of a test transit network.
// Nodes are referenced by their string ID everywhere below; edges carry
// their route occurrences inline, and node fronts are listed separately
// since they're keyed by a (node, edge) pair rather than belonging to
// either alone.
type networkFile struct {
	Nodes  []string    `json:"nodes"`
	Edges  []edgeFile  `json:"edges"`
	Fronts []frontFile `json:"fronts,omitempty"`
}

type edgeFile struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Routes []routeFile `json:"routes"`
}

type routeFile struct {
	ID         string `json:"id"`
	Direction  string `json:"direction,omitempty"`
	RelativeTo string `json:"relative_to,omitempty"`
}

type frontFile struct {
	Node   string      `json:"node"`
	Edge   [2]string   `json:"edge"`
	Points []pointFile `json:"points"`
}

type pointFile struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// loadNetwork reads a JSON test-network file and builds the corresponding
// graph. Routes may reference a relative_to route that appears later in
// the file, so registration happens in two passes (see registerRoutes):
// non-relative routes are created first, then relative routes are created
// with their already-registered reference.
func loadNetwork(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network file: %w", err)
	}

	var nf networkFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("parse network file: %w", err)
	}

	g := graph.New()
	nodes := make(map[string]graph.NodeHandle, len(nf.Nodes))
	for _, id := range nf.Nodes {
		nodes[id] = g.AddNode(id)
	}

	if err := registerRoutes(g, nf.Edges); err != nil {
		return nil, err
	}

	edges := make(map[[2]string]graph.EdgeHandle, len(nf.Edges))
	for _, ef := range nf.Edges {
		from, ok := nodes[ef.From]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node %q", ef.From)
		}
		to, ok := nodes[ef.To]
		if !ok {
			return nil, fmt.Errorf("edge references unknown node %q", ef.To)
		}
		eh, err := g.AddEdge(from, to)
		if err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", ef.From, ef.To, err)
		}
		edges[[2]string{ef.From, ef.To}] = eh

		for _, rf := range ef.Routes {
			rh, ok := g.RouteByID(rf.ID)
			if !ok {
				return nil, fmt.Errorf("edge %s->%s references unregistered route %q", ef.From, ef.To, rf.ID)
			}
			dir, err := resolveDirection(rf.Direction, from, to)
			if err != nil {
				return nil, fmt.Errorf("route %q on edge %s->%s: %w", rf.ID, ef.From, ef.To, err)
			}
			if err := g.AddRouteOccurrence(eh, rh, dir); err != nil {
				return nil, fmt.Errorf("route %q on edge %s->%s: %w", rf.ID, ef.From, ef.To, err)
			}
		}
	}

	for _, ff := range nf.Fronts {
		n, ok := nodes[ff.Node]
		if !ok {
			return nil, fmt.Errorf("front references unknown node %q", ff.Node)
		}
		eh, ok := edges[ff.Edge]
		if !ok {
			return nil, fmt.Errorf("front references unknown edge %v", ff.Edge)
		}
		pts := make([]orb.Point, len(ff.Points))
		for i, p := range ff.Points {
			pts[i] = orb.Point{p.Lon, p.Lat}
		}
		g.SetNodeFront(n, eh, graph.NewNodeFront(pts...))
	}

	return g, nil
}

// registerRoutes creates every route mentioned across all edges exactly
// once, in two passes: non-relative routes first, then relative ones, so
// that a relative_to reference is always already registered by the time
// AddRelativeRoute resolves it regardless of file ordering.
func registerRoutes(g *graph.Graph, edges []edgeFile) error {
	seen := make(map[string]bool)

	for _, ef := range edges {
		for _, rf := range ef.Routes {
			if rf.RelativeTo != "" || seen[rf.ID] {
				continue
			}
			seen[rf.ID] = true
			if _, err := g.AddRoute(rf.ID); err != nil {
				return fmt.Errorf("register route %q: %w", rf.ID, err)
			}
		}
	}

	for _, ef := range edges {
		for _, rf := range ef.Routes {
			if rf.RelativeTo == "" || seen[rf.ID] {
				continue
			}
			seen[rf.ID] = true
			ref, ok := g.RouteByID(rf.RelativeTo)
			if !ok {
				return fmt.Errorf("route %q is relative to unregistered route %q", rf.ID, rf.RelativeTo)
			}
			if _, err := g.AddRelativeRoute(rf.ID, ref); err != nil {
				return fmt.Errorf("register relative route %q: %w", rf.ID, err)
			}
		}
	}

	return nil
}

// resolveDirection maps a route's textual direction ("from", "to", or
// omitted for both-ways) onto the NodeHandle convention AddRouteOccurrence
// expects.
func resolveDirection(dir string, from, to graph.NodeHandle) (graph.NodeHandle, error) {
	switch dir {
	case "", "both":
		return graph.NoDirection, nil
	case "from":
		return from, nil
	case "to":
		return to, nil
	default:
		return graph.NoDirection, fmt.Errorf("unknown direction %q", dir)
	}
}
