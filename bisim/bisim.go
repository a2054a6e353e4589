// Package bisim decides strong bisimilarity between explored labelled
// transition systems. The candidate relation starts as the full cross
// product of the two state sets and is refined to the largest bisimulation;
// the verdict for the two roots comes with a distinguishing transition when
// they differ.
package bisim

import (
	"fmt"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/lts"
)

// Witness is a concrete distinguishing transition for a non-bisimilar state
// pair: one side offers Label and the other has no matching move into the
// remaining relation.
type Witness struct {
	Left, Right string // canonical forms of the distinguished states
	Label       ccs.Label
	ByLeft      bool // true when Left offers the unmatched transition
}

func (w *Witness) String() string {
	offerer, other := w.Left, w.Right
	if !w.ByLeft {
		offerer, other = w.Right, w.Left
	}
	return fmt.Sprintf("%s offers %s, unmatched by %s", offerer, w.Label, other)
}

// Result is the outcome of an equivalence query.
type Result struct {
	Bisimilar bool
	Witness   *Witness // nil when bisimilar
	Relation  *Relation
}

// Relation is the largest bisimulation between the two state sets after
// refinement.
type Relation struct {
	a, b *lts.LTS
	in   [][]bool
	size int
}

// Holds reports whether the pair of state ids is in the relation.
func (r *Relation) Holds(a, b int) bool { return r.in[a][b] }

// Contains reports whether the states with the given canonical forms are
// related. Unknown names are never related.
func (r *Relation) Contains(a, b string) bool {
	sa, ok := r.a.State(a)
	if !ok {
		return false
	}
	sb, ok := r.b.State(b)
	if !ok {
		return false
	}
	return r.in[sa.ID][sb.ID]
}

// Size returns the number of related pairs.
func (r *Relation) Size() int { return r.size }

// Algorithm refines a candidate relation to the bisimulation fixpoint.
type Algorithm interface {
	Name() string
	refine(ps *pairSpace)
}

// Check explores both systems and decides bisimilarity of their roots with
// the default worklist algorithm.
func Check(sys1, sys2 *ccs.System) (*Result, error) {
	return CheckWith(sys1, sys2, Worklist{})
}

// CheckWith is Check with an explicit refinement algorithm.
func CheckWith(sys1, sys2 *ccs.System, alg Algorithm) (*Result, error) {
	a, err := lts.Explore(sys1)
	if err != nil {
		return nil, err
	}
	b, err := lts.Explore(sys2)
	if err != nil {
		return nil, err
	}
	return CheckLTS(a, b, alg), nil
}

// CheckTerms decides bisimilarity of two terms under one system's
// definitions, for equivalence queries between two roots of a single
// specification.
func CheckTerms(sys *ccs.System, p, q ccs.Process) (*Result, error) {
	return CheckTermsWith(sys, p, q, Worklist{})
}

// CheckTermsWith is CheckTerms with an explicit refinement algorithm.
func CheckTermsWith(sys *ccs.System, p, q ccs.Process, alg Algorithm) (*Result, error) {
	a, err := lts.ExploreTerm(sys, p)
	if err != nil {
		return nil, err
	}
	b, err := lts.ExploreTerm(sys, q)
	if err != nil {
		return nil, err
	}
	return CheckLTS(a, b, alg), nil
}

// CheckLTS runs refinement over two already-explored LTSs and reports on
// their roots. It never fails: every well-formed LTS pair has a verdict.
func CheckLTS(a, b *lts.LTS, alg Algorithm) *Result {
	ps := newPairSpace(a, b)
	alg.refine(ps)

	rel := &Relation{a: a, b: b, in: ps.rel, size: ps.size}
	if ps.rel[a.Root][b.Root] {
		return &Result{Bisimilar: true, Relation: rel}
	}
	return &Result{
		Bisimilar: false,
		Witness:   ps.reasons[pair{a.Root, b.Root}],
		Relation:  rel,
	}
}
