package random_test

import (
	"testing"

	"github.com/jzbor/ccs/lts"
	"github.com/jzbor/ccs/random"
)

func TestGenerateDeterministic(t *testing.T) {
	a := random.Generate(10, 3, 20, 42)
	b := random.Generate(10, 3, 20, 42)
	if a.String() != b.String() {
		t.Error("same seed must yield the same system")
	}
	c := random.Generate(10, 3, 20, 43)
	if a.String() == c.String() {
		t.Error("different seeds should yield different systems")
	}
}

func TestGenerateExplorable(t *testing.T) {
	sys := random.Generate(25, 4, 60, 7)
	if err := sys.Validate(); err != nil {
		t.Fatal(err)
	}
	l, err := lts.Explore(sys)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.States) < 1 || len(l.States) > 25 {
		t.Errorf("got %d reachable states, want between 1 and 25", len(l.States))
	}
}

func TestGenerateDegenerate(t *testing.T) {
	sys := random.Generate(0, 0, 0, 1)
	l, err := lts.Explore(sys)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.States) != 1 || len(l.Edges) != 0 {
		t.Errorf("got %d states and %d edges, want a single deadlocked root", len(l.States), len(l.Edges))
	}
}
