// Package geocross implements the geometric crossing predicate: whether two
// proposed line placements at a node actually produce a visual crossing,
// given the node's physical layout.
//
// This is core algorithmic content, not ambient geometry plumbing — the
// predicate decides which crossing-decision variables the ILP builder
// bothers to create, and how their rows are written. The segment
// intersection and point-distance arithmetic is hand-written rather than
// pulled from a computational-geometry library, matching the scope of what
// the reference implementation did by hand for this exact test.
package geocross
