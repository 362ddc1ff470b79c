package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/lineorder/pkg/graph"
	"github.com/matzehuels/lineorder/pkg/optgraph"
)

// toDOT renders the optimizer graph's decision-variable topology — nodes,
// segments, and each segment's reference cardinality — as Graphviz DOT.
// This is a debug view of the ILP's variable topology, not of the transit
// map: it carries no coordinates or route colors.
func toDOT(og *optgraph.OptGraph, g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle];\n\n")

	for _, nh := range og.NodeHandles() {
		n, _ := og.Node(nh)
		gnode, _ := g.Node(n.Node)
		fmt.Fprintf(&buf, "  %q;\n", gnode.ID)
	}

	buf.WriteString("\n")
	for _, eh := range og.EdgeHandles() {
		e, _ := og.Edge(eh)
		fromNode, _ := og.Node(e.From)
		toNode, _ := og.Node(e.To)
		fromG, _ := g.Node(fromNode.Node)
		toG, _ := g.Node(toNode.Node)
		k := e.ReferenceCardinality(g, true)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", fromG.ID, toG.ID, fmt.Sprintf("k=%d", k))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeDot renders the optimizer graph to path as a Graphviz XDOT file.
func writeDot(og *optgraph.OptGraph, g *graph.Graph, path string) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(toDOT(og, g)))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gv.Render(ctx, parsed, graphviz.XDOT, f)
}
