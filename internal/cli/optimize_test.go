package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/lineorder/pkg/decoder"
	"github.com/matzehuels/lineorder/pkg/graph"
)

func TestWriteOrderingEncodesRoutesInSolvedOrder(t *testing.T) {
	g := graph.New()
	u := g.AddNode("u")
	v := g.AddNode("v")
	eh, err := g.AddEdge(u, v)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	a, _ := g.AddRoute("A")
	b, _ := g.AddRoute("B")

	ordering := decoder.OrderingConfig{eh: {b, a}}

	var buf bytes.Buffer
	if err := writeOrdering(&buf, g, ordering); err != nil {
		t.Fatalf("writeOrdering: %v", err)
	}

	var out []orderingJSON
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 edge entry, got %d", len(out))
	}
	if out[0].From != "u" || out[0].To != "v" {
		t.Fatalf("want edge u->v, got %s->%s", out[0].From, out[0].To)
	}
	if len(out[0].Routes) != 2 || out[0].Routes[0] != "B" || out[0].Routes[1] != "A" {
		t.Fatalf("want routes [B A], got %v", out[0].Routes)
	}
}
