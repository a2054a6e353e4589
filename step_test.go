package ccs_test

import (
	"errors"
	"testing"

	"github.com/jzbor/ccs"
)

func sys(t *testing.T, defs map[string]ccs.Process, root string) *ccs.System {
	t.Helper()
	s, err := ccs.NewSystem("test", defs, root)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func succ(t *testing.T, s *ccs.System, p ccs.Process) []ccs.Transition {
	t.Helper()
	ts, err := s.Successors(p)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func hasTransition(ts []ccs.Transition, label ccs.Label, to string) bool {
	for _, tr := range ts {
		if tr.Label == label && tr.To.String() == to {
			return true
		}
	}
	return false
}

func TestDeadlockHasNoTransitions(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	if ts := succ(t, s, ccs.Deadlock{}); len(ts) != 0 {
		t.Errorf("deadlock has %d transitions, want 0", len(ts))
	}
}

func TestPrefixSingleTransition(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	p := ccs.Prefix{Action: "a", Next: ccs.Parallel{Left: ccs.Ref{Name: "P"}, Right: ccs.Deadlock{}}}
	ts := succ(t, s, p)
	if len(ts) != 1 {
		t.Fatalf("got %d transitions, want 1", len(ts))
	}
	if ts[0].Label != "a" || ts[0].To.String() != "(P | 0)" {
		t.Errorf("got %s -> %s", ts[0].Label, ts[0].To)
	}
}

func TestChoiceIsUnionOfOperands(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	left := ccs.Prefix{Action: "a", Next: ccs.Deadlock{}}
	right := ccs.Prefix{Action: "b", Next: ccs.Ref{Name: "P"}}
	ts := succ(t, s, ccs.Choice{Left: left, Right: right})
	if len(ts) != 2 {
		t.Fatalf("got %d transitions, want 2", len(ts))
	}
	if !hasTransition(ts, "a", "0") {
		t.Error("missing a -> 0: firing must commit to the left continuation")
	}
	if !hasTransition(ts, "b", "P") {
		t.Error("missing b -> P: firing must commit to the right continuation")
	}
}

func TestParallelInterleavingAndSync(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	p := ccs.Parallel{
		Left:  ccs.Prefix{Action: "a", Next: ccs.Deadlock{}},
		Right: ccs.Prefix{Action: "a'", Next: ccs.Deadlock{}},
	}
	ts := succ(t, s, p)
	if len(ts) != 3 {
		t.Fatalf("got %d transitions, want 3 (two interleavings plus one τ)", len(ts))
	}
	if !hasTransition(ts, "a", "(0 | a'.0)") {
		t.Error("missing independent a-move")
	}
	if !hasTransition(ts, "a'", "(a.0 | 0)") {
		t.Error("missing independent a'-move")
	}
	if !hasTransition(ts, ccs.Tau, "(0 | 0)") {
		t.Error("missing synchronized τ-move")
	}
}

func TestParallelDuplicateSyncMerged(t *testing.T) {
	// Both matching sub-pairs derive the same τ edge; set semantics keeps one.
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	offer := ccs.Choice{
		Left:  ccs.Prefix{Action: "a", Next: ccs.Deadlock{}},
		Right: ccs.Prefix{Action: "a", Next: ccs.Deadlock{}},
	}
	p := ccs.Parallel{Left: offer, Right: ccs.Prefix{Action: "a'", Next: ccs.Deadlock{}}}
	ts := succ(t, s, p)
	taus := 0
	for _, tr := range ts {
		if tr.Label.IsTau() {
			taus++
		}
	}
	if taus != 1 {
		t.Errorf("got %d τ transitions, want 1", taus)
	}
}

func TestRestrictionSuppressesNameAndCoAction(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	inner := ccs.Choice{
		Left: ccs.Choice{
			Left:  ccs.Prefix{Action: "a", Next: ccs.Deadlock{}},
			Right: ccs.Prefix{Action: "a'", Next: ccs.Deadlock{}},
		},
		Right: ccs.Choice{
			Left:  ccs.Prefix{Action: "b", Next: ccs.Deadlock{}},
			Right: ccs.Prefix{Action: ccs.Tau, Next: ccs.Deadlock{}},
		},
	}
	ts := succ(t, s, ccs.Restrict{Proc: inner, Label: "a"})
	if len(ts) != 2 {
		t.Fatalf("got %d transitions, want 2", len(ts))
	}
	for _, tr := range ts {
		if tr.Label.Name() == "a" {
			t.Errorf("restricted label %s leaked through", tr.Label)
		}
	}
	if !hasTransition(ts, "b", "0\\a") {
		t.Error("b must pass through, continuation still restricted")
	}
	if !hasTransition(ts, ccs.Tau, "0\\a") {
		t.Error("τ must never be restricted")
	}
}

func TestRelabelRewritesExactLabelOnly(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Deadlock{}}, "P")
	inner := ccs.Choice{
		Left: ccs.Prefix{Action: "b", Next: ccs.Deadlock{}},
		Right: ccs.Choice{
			Left:  ccs.Prefix{Action: "b'", Next: ccs.Deadlock{}},
			Right: ccs.Prefix{Action: ccs.Tau, Next: ccs.Deadlock{}},
		},
	}
	ts := succ(t, s, ccs.Relabel{Proc: inner, To: "a", From: "b"})
	if !hasTransition(ts, "a", "0[a/b]") {
		t.Error("b not rewritten to a")
	}
	if !hasTransition(ts, "b'", "0[a/b]") {
		t.Error("co-action b' must pass through unchanged")
	}
	if !hasTransition(ts, ccs.Tau, "0[a/b]") {
		t.Error("τ must never be rewritten")
	}
}

func TestUndefinedReferenceErrors(t *testing.T) {
	s := sys(t, map[string]ccs.Process{"P": ccs.Ref{Name: "Q"}}, "P")
	_, err := s.Successors(ccs.Ref{Name: "P"})
	var undef *ccs.UndefinedProcessError
	if !errors.As(err, &undef) {
		t.Fatalf("got %v, want UndefinedProcessError", err)
	}
	if undef.Name != "Q" {
		t.Errorf("error names %q, want Q", undef.Name)
	}
}

func TestUnguardedRecursionDetected(t *testing.T) {
	defs := map[string]ccs.Process{
		"P": ccs.Choice{Left: ccs.Ref{Name: "P"}, Right: ccs.Prefix{Action: "a", Next: ccs.Deadlock{}}},
	}
	s := sys(t, defs, "P")
	_, err := s.Successors(ccs.Ref{Name: "P"})
	var unguarded *ccs.UnguardedProcessError
	if !errors.As(err, &unguarded) {
		t.Fatalf("got %v, want UnguardedProcessError", err)
	}
}

func TestGuardedRecursionSteps(t *testing.T) {
	defs := map[string]ccs.Process{
		"P": ccs.Prefix{Action: "a", Next: ccs.Ref{Name: "P"}},
	}
	s := sys(t, defs, "P")
	ts := succ(t, s, ccs.Ref{Name: "P"})
	if len(ts) != 1 || ts[0].Label != "a" || ts[0].To.String() != "P" {
		t.Errorf("got %v, want single a -> P", ts)
	}
}
