// Package optgraph builds the reduced graph the ILP builder formulates
// variables over.
//
// An [OptGraph] starts as a 1:1 projection of a [graph.Graph]: one OptNode
// per node, one OptEdge (a "segment" of exactly one underlying edge) per
// edge. [OptGraph.Simplify] then collapses maximal chains of degree-2 nodes
// whose incident segments carry the same non-relative route set and whose
// routes continue across the node, gluing them into a single segment. This
// shrinks the ILP: a segment's variable count is driven by its reference
// cardinality, not by how many underlying edges it spans.
package optgraph
