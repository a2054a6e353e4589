package bisim

import (
	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/lts"
)

type pair struct{ a, b int }

// pairSpace is the shared working state of a refinement run: per-state
// successor sets grouped by label, predecessor lists for dirty-pair
// propagation, the candidate relation, and the removal reasons that become
// witnesses. The underlying LTSs are read-only throughout.
type pairSpace struct {
	a, b *lts.LTS

	succA, succB []map[ccs.Label][]int
	predA, predB [][]int

	rel     [][]bool
	size    int
	reasons map[pair]*Witness
}

func newPairSpace(a, b *lts.LTS) *pairSpace {
	ps := &pairSpace{
		a:       a,
		b:       b,
		succA:   successorsByLabel(a),
		succB:   successorsByLabel(b),
		predA:   predecessors(a),
		predB:   predecessors(b),
		reasons: make(map[pair]*Witness),
	}
	ps.rel = make([][]bool, len(a.States))
	for i := range ps.rel {
		ps.rel[i] = make([]bool, len(b.States))
		for j := range ps.rel[i] {
			ps.rel[i][j] = true
		}
	}
	ps.size = len(a.States) * len(b.States)
	return ps
}

func successorsByLabel(l *lts.LTS) []map[ccs.Label][]int {
	succ := make([]map[ccs.Label][]int, len(l.States))
	for id := range l.States {
		succ[id] = make(map[ccs.Label][]int)
		for _, e := range l.Outgoing(id) {
			succ[id][e.Label] = append(succ[id][e.Label], e.Dst)
		}
	}
	return succ
}

func predecessors(l *lts.LTS) [][]int {
	seen := make([]map[int]bool, len(l.States))
	for i := range seen {
		seen[i] = make(map[int]bool)
	}
	for _, e := range l.Edges {
		seen[e.Dst][e.Src] = true
	}
	preds := make([][]int, len(l.States))
	for i, m := range seen {
		for src := range m {
			preds[i] = append(preds[i], src)
		}
	}
	return preds
}

// stable checks the bisimulation condition for one pair against the current
// relation. On failure it returns the unmatched transition.
func (ps *pairSpace) stable(i, j int) (bool, *Witness) {
	if label, ok := ps.unmatched(ps.succA[i], ps.succB[j], false); !ok {
		return false, &Witness{
			Left:   ps.a.States[i].Name,
			Right:  ps.b.States[j].Name,
			Label:  label,
			ByLeft: true,
		}
	}
	if label, ok := ps.unmatched(ps.succB[j], ps.succA[i], true); !ok {
		return false, &Witness{
			Left:   ps.a.States[i].Name,
			Right:  ps.b.States[j].Name,
			Label:  label,
			ByLeft: false,
		}
	}
	return true, nil
}

// unmatched verifies that every move on the offering side is matched by an
// equally labelled move on the answering side into a still-related pair.
// swapped selects which axis of the relation the answering side lives on.
func (ps *pairSpace) unmatched(offer, answer map[ccs.Label][]int, swapped bool) (ccs.Label, bool) {
	for label, dsts := range offer {
		for _, dst := range dsts {
			matched := false
			for _, cand := range answer[label] {
				if !swapped && ps.rel[dst][cand] || swapped && ps.rel[cand][dst] {
					matched = true
					break
				}
			}
			if !matched {
				return label, false
			}
		}
	}
	return "", true
}

// remove drops a pair from the relation, recording why.
func (ps *pairSpace) remove(i, j int, w *Witness) {
	if !ps.rel[i][j] {
		return
	}
	ps.rel[i][j] = false
	ps.size--
	ps.reasons[pair{i, j}] = w
}
