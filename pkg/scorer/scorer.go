// Package scorer supplies the per-node objective weights the ILP builder
// attaches to crossing decision variables, plus a splitting weight that the
// builder does not read.
//
// A crossing is not uniformly bad everywhere in the network — a busy
// interchange station can tolerate a crossing penalty different from a
// quiet through-stop. [Scorer] abstracts that per-node weighting so the
// builder never hardcodes a single global penalty.
package scorer

import "github.com/matzehuels/lineorder/pkg/optgraph"

// Scorer supplies objective-function weights for the crossing decision
// variables the ILP builder creates at each node.
type Scorer interface {
	// CrossPenSame weights a same-segment crossing at node n.
	CrossPenSame(og *optgraph.OptGraph, n optgraph.OptNodeHandle) float64
	// CrossPenDiff weights a different-segment crossing at node n.
	CrossPenDiff(og *optgraph.OptGraph, n optgraph.OptNodeHandle) float64
	// SplitPen weights a line split at node n (reserved for a future
	// non-adjacency objective term; see Default's doc comment).
	SplitPen(og *optgraph.OptGraph, n optgraph.OptNodeHandle) float64
}

// Default is a flat, uniform scorer: the same weight at every node for
// same-segment crossings, different-segment crossings, and splits.
//
// The reference implementation computed SplitPen but never wired it into
// an objective term; this port preserves that — SplitPen is exposed on the
// Scorer interface and populated here so a caller that adds a splitting
// term later has a value to read, but Builder.Build does not consume it.
type Default struct {
	Same, Diff, Split float64
}

// NewDefault returns a Default scorer with the multipliers the reference
// implementation used: same-segment crossings weigh 4x more than
// different-segment ones.
func NewDefault() Default {
	return Default{Same: 4, Diff: 1, Split: 3}
}

func (d Default) CrossPenSame(*optgraph.OptGraph, optgraph.OptNodeHandle) float64 { return d.Same }
func (d Default) CrossPenDiff(*optgraph.OptGraph, optgraph.OptNodeHandle) float64 { return d.Diff }
func (d Default) SplitPen(*optgraph.OptGraph, optgraph.OptNodeHandle) float64     { return d.Split }
