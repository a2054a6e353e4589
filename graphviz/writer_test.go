package graphviz_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/graphviz"
	"github.com/jzbor/ccs/lts"
)

func vending(t *testing.T) *lts.LTS {
	t.Helper()
	defs := map[string]ccs.Process{
		"V": ccs.Prefix{Action: "coin", Next: ccs.Choice{
			Left:  ccs.Prefix{Action: "coffee", Next: ccs.Ref{Name: "V"}},
			Right: ccs.Prefix{Action: "tea", Next: ccs.Ref{Name: "V"}},
		}},
	}
	sys, err := ccs.NewSystem("vending", defs, "V")
	if err != nil {
		t.Fatal(err)
	}
	l, err := lts.Explore(sys)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestExportPreservesStructure(t *testing.T) {
	l := vending(t)
	g, err := graphviz.Export("vending", l)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != len(l.States) || len(g.Edges) != len(l.Edges) {
		t.Errorf("export has %d nodes and %d edges, want %d and %d",
			len(g.Nodes), len(g.Edges), len(l.States), len(l.Edges))
	}
	if g.Nodes[g.Root].Label != "V" {
		t.Errorf("root label = %q, want V", g.Nodes[g.Root].Label)
	}
}

func TestValidateCatchesEscapingEdge(t *testing.T) {
	g := &graphviz.Graph{
		Name:  "bad",
		Nodes: []graphviz.Node{{ID: 0, Label: "0"}},
		Edges: []graphviz.Edge{{Src: 0, Dst: 3, Label: "a"}},
	}
	if err := g.Validate(); !errors.Is(err, graphviz.ErrMalformedGraph) {
		t.Fatalf("got %v, want ErrMalformedGraph", err)
	}
	w := graphviz.New(&graphviz.Config{Font: graphviz.Helvetica})
	if err := w.Flush(&bytes.Buffer{}, g); !errors.Is(err, graphviz.ErrMalformedGraph) {
		t.Errorf("Flush accepted a malformed graph: %v", err)
	}
}

func TestWriterEmitsLabels(t *testing.T) {
	l := vending(t)
	g, err := graphviz.Export("vending", l)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w := graphviz.New(&graphviz.Config{Font: graphviz.Helvetica, RankDir: graphviz.LeftToRight})
	if err := w.Flush(&buf, g); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	for _, want := range []string{"coin", "coffee", "tea", "doublecircle"} {
		if !strings.Contains(dot, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRoundTripPreservesCounts(t *testing.T) {
	l := vending(t)
	g, err := graphviz.Export("vending", l)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w := graphviz.New(&graphviz.Config{Font: graphviz.Helvetica})
	if err := w.Flush(&buf, g); err != nil {
		t.Fatal(err)
	}
	back, err := graphviz.Loader().Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Nodes) != len(g.Nodes) {
		t.Errorf("round trip has %d nodes, want %d", len(back.Nodes), len(g.Nodes))
	}
	if len(back.Edges) != len(g.Edges) {
		t.Errorf("round trip has %d edges, want %d", len(back.Edges), len(g.Edges))
	}
}

func TestTauEdgeRendered(t *testing.T) {
	inner := ccs.Parallel{
		Left:  ccs.Prefix{Action: "a", Next: ccs.Deadlock{}},
		Right: ccs.Prefix{Action: "a'", Next: ccs.Deadlock{}},
	}
	sys, err := ccs.NewSystem("sync", map[string]ccs.Process{
		"S": ccs.Restrict{Proc: inner, Label: "a"},
	}, "S")
	if err != nil {
		t.Fatal(err)
	}
	l, err := lts.Explore(sys)
	if err != nil {
		t.Fatal(err)
	}
	g, err := graphviz.Export("sync", l)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Edges) != 1 || g.Edges[0].Label != graphviz.TauSymbol {
		t.Errorf("got edges %+v, want a single τ edge", g.Edges)
	}
}
