package graph

import "errors"

var (
	// ErrUnknownNode is returned when a handle does not refer to a node in
	// the graph's arena.
	ErrUnknownNode = errors.New("unknown node handle")

	// ErrUnknownEdge is returned when a handle does not refer to an edge in
	// the graph's arena.
	ErrUnknownEdge = errors.New("unknown edge handle")

	// ErrUnknownRoute is returned when a handle does not refer to a route
	// in the graph's arena.
	ErrUnknownRoute = errors.New("unknown route handle")

	// ErrDuplicateRouteID is returned by AddRoute/AddRelativeRoute when the
	// route identifier is already registered.
	ErrDuplicateRouteID = errors.New("duplicate route ID")

	// ErrInvalidEdgeEndpoint is returned by AddEdge when From or To does not
	// name a node in the graph.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrInvalidDirection is returned by AddRouteOccurrence when the
	// direction handle is neither NoDirection nor one of the edge's two
	// endpoints.
	ErrInvalidDirection = errors.New("route occurrence direction must be an edge endpoint or NoDirection")

	// ErrRouteAlreadyOnEdge is returned by AddRouteOccurrence when the route
	// is already present on the edge; a route occurs at most once per edge.
	ErrRouteAlreadyOnEdge = errors.New("route already occurs on edge")
)

// NodeHandle is a stable index into the graph's node arena.
type NodeHandle int

// EdgeHandle is a stable index into the graph's edge arena.
type EdgeHandle int

// RouteHandle is a stable index into the graph's route arena.
type RouteHandle int

// NoDirection is the RouteOccurrence.Direction value meaning "both
// directions" — the line runs both ways along the edge.
const NoDirection NodeHandle = -1

// NoRoute is the RouteHandle value (-1) reserved to mean "no relative
// reference".
const NoRoute RouteHandle = -1

// Route is the identity of a transit line. A route with RelativeTo set to
// anything other than NoRoute never receives its own ILP variable; it is
// bundled next to its reference route by the decoder.
type Route struct {
	ID                   string
	RelativeTo           RouteHandle
	NumCollapsedPartners int
}

// IsRelative reports whether this route is bundled to another reference
// route instead of participating in the ordering decision directly.
func (r Route) IsRelative() bool { return r.RelativeTo != NoRoute }

// RouteOccurrence records that a route runs along an edge, and in which
// direction.
type RouteOccurrence struct {
	Route     RouteHandle
	Direction NodeHandle
}

// Edge is a directed connection between two nodes carrying the ordered bag
// of routes that run along it.
type Edge struct {
	From, To    NodeHandle
	Occurrences []RouteOccurrence
}

// Node is a junction in the transit network. Fronts holds, per incident
// edge, the physical layout the crossing predicate reads positions from.
type Node struct {
	ID     string
	Out    []EdgeHandle
	In     []EdgeHandle
	Fronts map[EdgeHandle]*NodeFront
}

// Graph is the transit network: an arena of nodes, an arena of edges, and an
// arena of routes, referenced throughout by handle.
//
// The zero value is not usable; use New. Graph is not safe for concurrent
// use without external synchronization.
type Graph struct {
	nodes      []*Node
	edges      []*Edge
	routes     []*Route
	routeIndex map[string]RouteHandle
}

// New creates an empty transit graph.
func New() *Graph {
	return &Graph{routeIndex: make(map[string]RouteHandle)}
}

// AddNode appends a new node and returns its handle.
func (g *Graph) AddNode(id string) NodeHandle {
	g.nodes = append(g.nodes, &Node{ID: id, Fronts: make(map[EdgeHandle]*NodeFront)})
	return NodeHandle(len(g.nodes) - 1)
}

// AddRoute registers a non-relative route and returns its handle. Returns
// ErrDuplicateRouteID if id is already registered.
func (g *Graph) AddRoute(id string) (RouteHandle, error) {
	return g.addRoute(id, NoRoute)
}

// AddRelativeRoute registers a route bundled to ref: it never receives its
// own ILP variable and is expanded adjacent to ref by the decoder.
func (g *Graph) AddRelativeRoute(id string, ref RouteHandle) (RouteHandle, error) {
	if _, ok := g.Route(ref); !ok {
		return NoRoute, ErrUnknownRoute
	}
	h, err := g.addRoute(id, ref)
	if err != nil {
		return NoRoute, err
	}
	g.routes[ref].NumCollapsedPartners++
	return h, nil
}

func (g *Graph) addRoute(id string, relTo RouteHandle) (RouteHandle, error) {
	if _, exists := g.routeIndex[id]; exists {
		return NoRoute, ErrDuplicateRouteID
	}
	g.routes = append(g.routes, &Route{ID: id, RelativeTo: relTo})
	h := RouteHandle(len(g.routes) - 1)
	g.routeIndex[id] = h
	return h, nil
}

// AddEdge adds a directed edge between two existing nodes and returns its
// handle. Returns ErrInvalidEdgeEndpoint if either endpoint is unknown.
func (g *Graph) AddEdge(from, to NodeHandle) (EdgeHandle, error) {
	if _, ok := g.Node(from); !ok {
		return -1, ErrInvalidEdgeEndpoint
	}
	if _, ok := g.Node(to); !ok {
		return -1, ErrInvalidEdgeEndpoint
	}
	g.edges = append(g.edges, &Edge{From: from, To: to})
	h := EdgeHandle(len(g.edges) - 1)
	g.nodes[from].Out = append(g.nodes[from].Out, h)
	g.nodes[to].In = append(g.nodes[to].In, h)
	return h, nil
}

// AddRouteOccurrence records that route r runs along edge e in direction
// dir, which must be NoDirection or one of e's endpoints.
func (g *Graph) AddRouteOccurrence(e EdgeHandle, r RouteHandle, dir NodeHandle) error {
	edge, ok := g.Edge(e)
	if !ok {
		return ErrUnknownEdge
	}
	if _, ok := g.Route(r); !ok {
		return ErrUnknownRoute
	}
	if dir != NoDirection && dir != edge.From && dir != edge.To {
		return ErrInvalidDirection
	}
	for _, occ := range edge.Occurrences {
		if occ.Route == r {
			return ErrRouteAlreadyOnEdge
		}
	}
	edge.Occurrences = append(edge.Occurrences, RouteOccurrence{Route: r, Direction: dir})
	return nil
}

// SetNodeFront attaches the physical layout for edge e at node n.
func (g *Graph) SetNodeFront(n NodeHandle, e EdgeHandle, front *NodeFront) {
	if node, ok := g.Node(n); ok {
		node.Fronts[e] = front
	}
}

// Node returns the node for h, or false if h is out of range.
func (g *Graph) Node(h NodeHandle) (*Node, bool) {
	if h < 0 || int(h) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[h], true
}

// Edge returns the edge for h, or false if h is out of range.
func (g *Graph) Edge(h EdgeHandle) (*Edge, bool) {
	if h < 0 || int(h) >= len(g.edges) {
		return nil, false
	}
	return g.edges[h], true
}

// Route returns the route for h, or false if h is out of range.
func (g *Graph) Route(h RouteHandle) (*Route, bool) {
	if h < 0 || int(h) >= len(g.routes) {
		return nil, false
	}
	return g.routes[h], true
}

// RouteByID looks up a route's handle by its identifier.
func (g *Graph) RouteByID(id string) (RouteHandle, bool) {
	h, ok := g.routeIndex[id]
	return h, ok
}

// NodeHandles returns every node handle in insertion order.
func (g *Graph) NodeHandles() []NodeHandle {
	out := make([]NodeHandle, len(g.nodes))
	for i := range g.nodes {
		out[i] = NodeHandle(i)
	}
	return out
}

// EdgeHandles returns every edge handle in insertion order.
func (g *Graph) EdgeHandles() []EdgeHandle {
	out := make([]EdgeHandle, len(g.edges))
	for i := range g.edges {
		out[i] = EdgeHandle(i)
	}
	return out
}

// RouteHandles returns every route handle in insertion order.
func (g *Graph) RouteHandles() []RouteHandle {
	out := make([]RouteHandle, len(g.routes))
	for i := range g.routes {
		out[i] = RouteHandle(i)
	}
	return out
}

// Cardinality returns the number of route occurrences on e. When
// nonRelative is true, occurrences whose route is relative are excluded —
// this is the count that drives ILP variable generation.
func (e *Edge) Cardinality(g *Graph, nonRelative bool) int {
	if !nonRelative {
		return len(e.Occurrences)
	}
	n := 0
	for _, occ := range e.Occurrences {
		if r, ok := g.Route(occ.Route); ok && !r.IsRelative() {
			n++
		}
	}
	return n
}

// ContainsRoute reports whether r occurs on e.
func (e *Edge) ContainsRoute(r RouteHandle) bool {
	for _, occ := range e.Occurrences {
		if occ.Route == r {
			return true
		}
	}
	return false
}

// RouteOccWithPos returns the occurrence of r on e and its index within
// e.Occurrences.
func (e *Edge) RouteOccWithPos(r RouteHandle) (RouteOccurrence, int, bool) {
	for i, occ := range e.Occurrences {
		if occ.Route == r {
			return occ, i, true
		}
	}
	return RouteOccurrence{}, -1, false
}

// NonRelativeRoutes returns the handles of every non-relative route
// occurring on e, in occurrence order.
func (e *Edge) NonRelativeRoutes(g *Graph) []RouteHandle {
	var out []RouteHandle
	for _, occ := range e.Occurrences {
		if r, ok := g.Route(occ.Route); ok && !r.IsRelative() {
			out = append(out, occ.Route)
		}
	}
	return out
}

// RelativeRoutes returns the handles of every relative route occurring on
// e, in occurrence order.
func (e *Edge) RelativeRoutes(g *Graph) []RouteHandle {
	var out []RouteHandle
	for _, occ := range e.Occurrences {
		if r, ok := g.Route(occ.Route); ok && r.IsRelative() {
			out = append(out, occ.Route)
		}
	}
	return out
}

// Other returns the endpoint of e opposite n. Panics-free: returns n itself
// if e is not incident to n (callers are expected to only call this on
// incident edges, as the optimizer graph does).
func (e *Edge) Other(n NodeHandle) NodeHandle {
	switch n {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return n
	}
}

// ContinuedRoutesIn returns the routes that continue from "from" across node
// n into e with a direction compatible with traveling away from n. A route
// continues if it occurs on both edges and its recorded direction, if any,
// does not point back into "from".
func ContinuedRoutesIn(g *Graph, n NodeHandle, from *Edge, e *Edge) []RouteHandle {
	var out []RouteHandle
	for _, occ := range from.Occurrences {
		if !e.ContainsRoute(occ.Route) {
			continue
		}
		if occ.Direction != NoDirection && occ.Direction != n {
			// the route in "from" travels away from n, so it cannot
			// continue across n into e.
			continue
		}
		eOcc, _, _ := e.RouteOccWithPos(occ.Route)
		if eOcc.Direction != NoDirection && eOcc.Direction == n {
			// travels back toward n in e: not a continuation away from n.
			continue
		}
		out = append(out, occ.Route)
	}
	return out
}
