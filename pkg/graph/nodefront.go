package graph

import "github.com/paulmach/orb"

// NodeFront is the physical layout of one edge's endpoint at a node: a
// mapping from position index to a 2D point, used by the crossing predicate
// to test whether two proposed placements actually cross in the drawing.
//
// Positions are laid out left-to-right by increasing index when Reversed is
// false for the query; callers that need the mirrored view (because a
// segment's reference direction disagrees with the edge's natural
// direction) pass reversed=true to GetTripPos instead of pre-flipping
// Points.
type NodeFront struct {
	Points []orb.Point
}

// NewNodeFront builds a front from pts, ordered left to right.
func NewNodeFront(pts ...orb.Point) *NodeFront {
	return &NodeFront{Points: pts}
}

// Cardinality returns how many positions this front has room for.
func (f *NodeFront) Cardinality() int { return len(f.Points) }

// GetTripPos returns the physical point for position p, or its mirror
// image (cardinality-1-p) when reversed is true.
func (f *NodeFront) GetTripPos(p int, reversed bool) (orb.Point, bool) {
	if p < 0 || p >= len(f.Points) {
		return orb.Point{}, false
	}
	if reversed {
		p = len(f.Points) - 1 - p
	}
	return f.Points[p], true
}
