package optgraph

import (
	"slices"

	"github.com/matzehuels/lineorder/pkg/graph"
)

// OptNodeHandle is a stable index into an OptGraph's node arena.
type OptNodeHandle int

// OptEdgeHandle is a stable index into an OptGraph's edge arena.
type OptEdgeHandle int

// EtgRef is one underlying graph edge glued into a segment. Dir records
// whether that edge is traversed in the segment's nominal direction; the
// geometric crossing predicate mirrors positions when it disagrees with a
// query's own orientation.
type EtgRef struct {
	Edge graph.EdgeHandle
	Dir  bool
}

// OptEdge is a segment: a maximal run of underlying edges glued together
// because they carry an identical non-relative route set. Etgs[0] is the
// reference underlying edge; its cardinality governs the segment's ILP
// variable count.
type OptEdge struct {
	From, To OptNodeHandle
	Etgs     []EtgRef
}

// Reference returns the underlying edge that drives this segment's variable
// count.
func (e *OptEdge) Reference() graph.EdgeHandle { return e.Etgs[0].Edge }

// ReferenceCardinality returns the reference edge's cardinality.
func (e *OptEdge) ReferenceCardinality(g *graph.Graph, nonRelative bool) int {
	ref, ok := g.Edge(e.Reference())
	if !ok {
		return 0
	}
	return ref.Cardinality(g, nonRelative)
}

// OptNode is a reduced node: the underlying graph node plus adjacency lists
// of incident segments.
type OptNode struct {
	Node graph.NodeHandle
	Out  []OptEdgeHandle
	In   []OptEdgeHandle
}

// Adj returns every segment incident to n, outgoing then incoming.
func (n *OptNode) Adj() []OptEdgeHandle {
	out := make([]OptEdgeHandle, 0, len(n.Out)+len(n.In))
	out = append(out, n.Out...)
	out = append(out, n.In...)
	return out
}

// Degree returns the number of segments incident to n.
func (n *OptNode) Degree() int { return len(n.Out) + len(n.In) }

// OptGraph is the reduced graph the ILP builder formulates variables over.
// It borrows its underlying [graph.Graph] for the lifetime of one
// optimization run.
type OptGraph struct {
	g      *graph.Graph
	nodes  []*OptNode
	edges  []*OptEdge
	nodeOf map[graph.NodeHandle]OptNodeHandle
}

// Stats summarizes an OptGraph for logging.
type Stats struct {
	Nodes, Edges, MaxCardinality int
}

// Build creates the initial 1:1 projection of g: one OptNode per node and
// one single-edge OptEdge per edge, both in g's insertion order.
func Build(g *graph.Graph) *OptGraph {
	og := &OptGraph{g: g, nodeOf: make(map[graph.NodeHandle]OptNodeHandle)}
	for _, nh := range g.NodeHandles() {
		og.nodes = append(og.nodes, &OptNode{Node: nh})
		og.nodeOf[nh] = OptNodeHandle(len(og.nodes) - 1)
	}
	for _, eh := range g.EdgeHandles() {
		edge, _ := g.Edge(eh)
		from, to := og.nodeOf[edge.From], og.nodeOf[edge.To]
		og.edges = append(og.edges, &OptEdge{From: from, To: to, Etgs: []EtgRef{{Edge: eh, Dir: true}}})
		eidx := OptEdgeHandle(len(og.edges) - 1)
		og.nodes[from].Out = append(og.nodes[from].Out, eidx)
		og.nodes[to].In = append(og.nodes[to].In, eidx)
	}
	return og
}

// Graph returns the underlying transit graph this OptGraph was built from.
func (og *OptGraph) Graph() *graph.Graph { return og.g }

// Node returns the OptNode for h.
func (og *OptGraph) Node(h OptNodeHandle) (*OptNode, bool) {
	if h < 0 || int(h) >= len(og.nodes) {
		return nil, false
	}
	return og.nodes[h], true
}

// Edge returns the OptEdge for h.
func (og *OptGraph) Edge(h OptEdgeHandle) (*OptEdge, bool) {
	if h < 0 || int(h) >= len(og.edges) {
		return nil, false
	}
	return og.edges[h], true
}

// NodeHandles returns every OptNode handle still live in the graph.
func (og *OptGraph) NodeHandles() []OptNodeHandle {
	out := make([]OptNodeHandle, 0, len(og.nodes))
	for i, n := range og.nodes {
		if n != nil {
			out = append(out, OptNodeHandle(i))
		}
	}
	return out
}

// EdgeHandles returns every OptEdge handle still live in the graph.
func (og *OptGraph) EdgeHandles() []OptEdgeHandle {
	out := make([]OptEdgeHandle, 0, len(og.edges))
	for i, e := range og.edges {
		if e != nil {
			out = append(out, OptEdgeHandle(i))
		}
	}
	return out
}

// ComputeStats gathers node/edge counts and the maximum reference
// cardinality observed, for logging after Build/Simplify.
func (og *OptGraph) ComputeStats() Stats {
	s := Stats{Nodes: len(og.NodeHandles()), Edges: len(og.EdgeHandles())}
	for _, eh := range og.EdgeHandles() {
		e, _ := og.Edge(eh)
		if c := e.ReferenceCardinality(og.g, true); c > s.MaxCardinality {
			s.MaxCardinality = c
		}
	}
	return s
}

// Simplify repeatedly collapses chains through degree-2 nodes whose two
// incident segments share an identical non-relative route set and whose
// routes all continue across the node, until no further collapse applies.
// It is idempotent: calling Simplify on an already-simplified graph is a
// no-op.
func (og *OptGraph) Simplify() Stats {
	for {
		if !og.collapseOnePass() {
			break
		}
	}
	return og.ComputeStats()
}

// collapseOnePass scans for one collapsible degree-2 node, merges it away,
// and reports whether a collapse happened. A degree-2 node is collapsible
// in three configurations: a simple through-chain (one segment in, one
// out), and the two reversing configurations where both segments point
// away from the node (head-to-head) or both point into it (tail-to-tail).
// The reversing cases require flipping one side's Dir as it's spliced in,
// since the two segments disagree about which way is "forward" at the
// shared node.
func (og *OptGraph) collapseOnePass() bool {
	for _, nh := range og.NodeHandles() {
		n, _ := og.Node(nh)
		switch {
		case n.Degree() != 2:
			continue
		case len(n.In) == 1 && len(n.Out) == 1:
			inH, outH := n.In[0], n.Out[0]
			if inH == outH {
				continue
			}
			in, _ := og.Edge(inH)
			out, _ := og.Edge(outH)
			if !og.mergeable(nh, in, out) {
				continue
			}
			og.mergeThrough(nh, inH, in, outH, out)
			return true
		case len(n.Out) == 2:
			aH, bH := n.Out[0], n.Out[1]
			if aH == bH {
				continue
			}
			a, _ := og.Edge(aH)
			b, _ := og.Edge(bH)
			if !og.mergeable(nh, a, b) {
				continue
			}
			og.mergeHeadToHead(nh, aH, a, bH, b)
			return true
		case len(n.In) == 2:
			aH, bH := n.In[0], n.In[1]
			if aH == bH {
				continue
			}
			a, _ := og.Edge(aH)
			b, _ := og.Edge(bH)
			if !og.mergeable(nh, a, b) {
				continue
			}
			og.mergeTailToTail(nh, aH, a, bH, b)
			return true
		}
	}
	return false
}

// mergeable reports whether a and b, meeting at n, carry identical
// non-relative route sets and every such route continues across n.
func (og *OptGraph) mergeable(n OptNodeHandle, a, b *OptEdge) bool {
	nNode, _ := og.Node(n)
	aRef, _ := og.g.Edge(a.Reference())
	bRef, _ := og.g.Edge(b.Reference())

	aRoutes := aRef.NonRelativeRoutes(og.g)
	bRoutes := bRef.NonRelativeRoutes(og.g)
	if len(aRoutes) != len(bRoutes) {
		return false
	}
	sortedEqual := func(a, b []graph.RouteHandle) bool {
		as, bs := slices.Clone(a), slices.Clone(b)
		slices.Sort(as)
		slices.Sort(bs)
		return slices.Equal(as, bs)
	}
	if !sortedEqual(aRoutes, bRoutes) {
		return false
	}
	continued := slices.DeleteFunc(graph.ContinuedRoutesIn(og.g, nNode.Node, aRef, bRef), func(r graph.RouteHandle) bool {
		route, ok := og.g.Route(r)
		return !ok || route.IsRelative()
	})
	return sortedEqual(continued, aRoutes)
}

// reverseEtgs reverses the order of a segment's underlying edges and flips
// each one's Dir, for splicing a segment in backwards.
func reverseEtgs(etgs []EtgRef) []EtgRef {
	out := make([]EtgRef, len(etgs))
	for i, etg := range etgs {
		out[len(etgs)-1-i] = EtgRef{Edge: etg.Edge, Dir: !etg.Dir}
	}
	return out
}

// removeHandle deletes h's first occurrence from handles.
func removeHandle(handles []OptEdgeHandle, h OptEdgeHandle) []OptEdgeHandle {
	for i, e := range handles {
		if e == h {
			return append(handles[:i], handles[i+1:]...)
		}
	}
	return handles
}

// mergeThrough fuses in and out through n into a single segment replacing
// out's slot, removes n, and rewires the far endpoints.
func (og *OptGraph) mergeThrough(n OptNodeHandle, inH OptEdgeHandle, in *OptEdge, outH OptEdgeHandle, out *OptEdge) {
	merged := &OptEdge{From: in.From, To: out.To, Etgs: append(slices.Clone(in.Etgs), out.Etgs...)}
	og.edges[outH] = merged

	// Rewire in.From's Out slot from inH to outH; out.To's In slot already
	// names outH.
	fromNode, _ := og.Node(in.From)
	for i, e := range fromNode.Out {
		if e == inH {
			fromNode.Out[i] = outH
		}
	}

	og.edges[inH] = nil
	og.nodes[n] = nil
}

// mergeHeadToHead fuses a and b, both leaving n, into a single segment
// spanning a.To to b.To: a is spliced in backwards (its Dir bits flipped)
// since traveling from a.To to n runs against a's recorded direction.
func (og *OptGraph) mergeHeadToHead(n OptNodeHandle, aH OptEdgeHandle, a *OptEdge, bH OptEdgeHandle, b *OptEdge) {
	merged := &OptEdge{From: a.To, To: b.To, Etgs: append(reverseEtgs(a.Etgs), b.Etgs...)}
	og.edges[bH] = merged

	// a.To used to reach n via its In slot (aH); it now reaches b.To via
	// its Out slot, through the merged segment stored at bH.
	farA, _ := og.Node(a.To)
	farA.In = removeHandle(farA.In, aH)
	farA.Out = append(farA.Out, bH)

	og.edges[aH] = nil
	og.nodes[n] = nil
}

// mergeTailToTail fuses a and b, both arriving at n, into a single segment
// spanning a.From to b.From: b is spliced in backwards (its Dir bits
// flipped) since traveling from n to b.From runs against b's recorded
// direction.
func (og *OptGraph) mergeTailToTail(n OptNodeHandle, aH OptEdgeHandle, a *OptEdge, bH OptEdgeHandle, b *OptEdge) {
	merged := &OptEdge{From: a.From, To: b.From, Etgs: append(slices.Clone(a.Etgs), reverseEtgs(b.Etgs)...)}
	og.edges[aH] = merged

	// b.From used to reach n via its Out slot (bH); it is now the far end
	// of the merged segment stored at aH, so it reaches it via its In slot.
	farB, _ := og.Node(b.From)
	farB.Out = removeHandle(farB.Out, bH)
	farB.In = append(farB.In, aH)

	og.edges[bH] = nil
	og.nodes[n] = nil
}
