package geocross

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/matzehuels/lineorder/pkg/optgraph"
)

// DefaultEpsilon is the minimum physical distance below which two placements
// are treated as crossing even if their connecting segments don't strictly
// intersect — real node fronts place positions close enough together that
// near-misses should still count as visual crossings.
const DefaultEpsilon = 1.0

// Predicate evaluates whether two line placements at a node cross,
// physically, given the node's NodeFront layout. The zero value uses
// DefaultEpsilon.
type Predicate struct {
	Epsilon float64
}

// New creates a Predicate using DefaultEpsilon.
func New() Predicate { return Predicate{Epsilon: DefaultEpsilon} }

func (p Predicate) epsilon() float64 {
	if p.Epsilon > 0 {
		return p.Epsilon
	}
	return DefaultEpsilon
}

// pos resolves position idx on segment seg as seen from node n into a
// physical point, mirroring the index when the segment's reference
// direction disagrees with traveling away from n.
func pos(og *optgraph.OptGraph, n optgraph.OptNodeHandle, seg optgraph.OptEdgeHandle, idx int) (orb.Point, bool) {
	e, ok := og.Edge(seg)
	if !ok {
		return orb.Point{}, false
	}
	node, ok := og.Node(n)
	if !ok {
		return orb.Point{}, false
	}
	otherWay := (e.From != n) != e.Etgs[0].Dir
	gnode, ok := og.Graph().Node(node.Node)
	if !ok {
		return orb.Point{}, false
	}
	front, ok := gnode.Fronts[e.Reference()]
	if !ok {
		return orb.Point{}, false
	}
	return front.GetTripPos(idx, otherWay)
}

// Same evaluates the same-segment crossing test: do the placements
// (rA at pAinA, rB at pBinA) on segA and (rA at pAinB, rB at pBinB) on segB
// cross when viewed from n.
func (p Predicate) Same(og *optgraph.OptGraph, n optgraph.OptNodeHandle, segA, segB optgraph.OptEdgeHandle, pAinA, pBinA, pAinB, pBinB int) bool {
	a1, ok1 := pos(og, n, segA, pAinA)
	b1, ok2 := pos(og, n, segA, pBinA)
	a2, ok3 := pos(og, n, segB, pAinB)
	b2, ok4 := pos(og, n, segB, pBinB)
	if !(ok1 && ok2 && ok3 && ok4) {
		return false
	}
	return p.crosses(a1, a2, b1, b2)
}

// Diff evaluates the different-segment crossing test: does the pair of
// lines fanning out of segA at positions (pAinA, pBinA) cross when one
// continues into segB at destPos and the other into segC at destPos2, for
// any destination position pair.
func (p Predicate) Diff(og *optgraph.OptGraph, n optgraph.OptNodeHandle, segA, segB, segC optgraph.OptEdgeHandle, pAinA, pBinA int) bool {
	eB, okB := og.Edge(segB)
	eC, okC := og.Edge(segC)
	if !okB || !okC {
		return false
	}
	cardB := eB.ReferenceCardinality(og.Graph(), true)
	cardC := eC.ReferenceCardinality(og.Graph(), true)
	a1, ok1 := pos(og, n, segA, pAinA)
	b1, ok2 := pos(og, n, segA, pBinA)
	if !(ok1 && ok2) {
		return false
	}
	for pb := 0; pb < cardB; pb++ {
		a2, ok3 := pos(og, n, segB, pb)
		if !ok3 {
			continue
		}
		for pc := 0; pc < cardC; pc++ {
			b2, ok4 := pos(og, n, segC, pc)
			if !ok4 {
				continue
			}
			if p.crosses(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// crosses tests whether segment (a1,a2) crosses segment (b1,b2), or
// whether they pass within Epsilon of each other.
func (p Predicate) crosses(a1, a2, b1, b2 orb.Point) bool {
	if segmentsIntersect(a1, a2, b1, b2) {
		return true
	}
	return segmentDistance(a1, a2, b1, b2) < p.epsilon()
}

func orientation(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, c orb.Point) bool {
	return math.Min(a[0], b[0]) <= c[0] && c[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= c[1] && c[1] <= math.Max(a[1], b[1])
}

// segmentsIntersect reports whether segment p1p2 intersects segment q1q2,
// via the standard orientation test (including collinear-overlap cases).
func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	o1 := orientation(p1, p2, q1)
	o2 := orientation(p1, p2, q2)
	o3 := orientation(q1, q2, p1)
	o4 := orientation(q1, q2, p2)

	if (o1 > 0) != (o2 > 0) && (o3 > 0) != (o4 > 0) && o1 != 0 && o2 != 0 && o3 != 0 && o4 != 0 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	if o3 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if o4 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	return false
}

// segmentDistance returns the minimum distance between segment p1p2 and
// segment q1q2.
func segmentDistance(p1, p2, q1, q2 orb.Point) float64 {
	d := math.Min(pointSegDistance(q1, p1, p2), pointSegDistance(q2, p1, p2))
	d = math.Min(d, pointSegDistance(p1, q1, q2))
	d = math.Min(d, pointSegDistance(p2, q1, q2))
	return d
}

func pointSegDistance(pt, a, b orb.Point) float64 {
	vx, vy := b[0]-a[0], b[1]-a[1]
	wx, wy := pt[0]-a[0], pt[1]-a[1]
	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return math.Hypot(wx, wy)
	}
	t := (wx*vx + wy*vy) / segLenSq
	t = math.Max(0, math.Min(1, t))
	px, py := a[0]+t*vx, a[1]+t*vy
	return math.Hypot(pt[0]-px, pt[1]-py)
}
