// Package lts materializes the reachable state space of a CCS system as an
// explicit labelled transition system. States are terms interned by their
// canonical form, which is what keeps exploration of recursive definitions
// finite; systems whose reachable term set is genuinely infinite (for
// example unbounded parallel growth) are out of scope and will exhaust
// memory unless a state limit is set.
package lts

import (
	"errors"
	"fmt"

	"github.com/jzbor/ccs"
)

// ErrStateLimit is returned by ExploreN when exploration discovers more
// states than the configured bound.
var ErrStateLimit = errors.New("state limit exceeded during exploration")

// State is an interned process term.
type State struct {
	ID    int
	Term  ccs.Process
	Name  string // canonical form, unique within the LTS
	Depth int    // breadth-first distance from the root
}

// Edge is a labelled transition between two interned states.
type Edge struct {
	Src   int
	Label ccs.Label
	Dst   int
}

// LTS is the explored transition system. It is immutable after Explore
// returns; every edge's endpoints are members of States.
type LTS struct {
	States []*State
	Edges  []Edge
	Root   int

	index map[string]int
	out   [][]Edge
}

// Explore builds the LTS reachable from the system's root process.
func Explore(sys *ccs.System) (*LTS, error) {
	return explore(sys, ccs.Ref{Name: sys.Root()}, 0)
}

// ExploreTerm builds the LTS reachable from an arbitrary term under the
// system's definitions.
func ExploreTerm(sys *ccs.System, root ccs.Process) (*LTS, error) {
	return explore(sys, root, 0)
}

// ExploreN is Explore with an upper bound on the number of discovered
// states, for callers that must guard against runaway specifications.
func ExploreN(sys *ccs.System, limit int) (*LTS, error) {
	return explore(sys, ccs.Ref{Name: sys.Root()}, limit)
}

func explore(sys *ccs.System, root ccs.Process, limit int) (*LTS, error) {
	l := &LTS{index: make(map[string]int)}
	l.intern(root, 0)

	for id := 0; id < len(l.States); id++ {
		state := l.States[id]
		ts, err := sys.Successors(state.Term)
		if err != nil {
			return nil, fmt.Errorf("exploring %s: %w", state.Name, err)
		}
		for _, t := range ts {
			dst, fresh := l.intern(t.To, state.Depth+1)
			if fresh && limit > 0 && len(l.States) > limit {
				return nil, fmt.Errorf("%w: %d states from %s", ErrStateLimit, limit, state.Name)
			}
			e := Edge{Src: id, Label: t.Label, Dst: dst}
			l.Edges = append(l.Edges, e)
			l.out[id] = append(l.out[id], e)
		}
	}
	return l, nil
}

// intern returns the id of the state denoting p, adding it if unseen. The
// first insertion wins; later occurrences of the same canonical form reuse
// it.
func (l *LTS) intern(p ccs.Process, depth int) (int, bool) {
	name := p.String()
	if id, ok := l.index[name]; ok {
		return id, false
	}
	id := len(l.States)
	l.States = append(l.States, &State{ID: id, Term: p, Name: name, Depth: depth})
	l.index[name] = id
	l.out = append(l.out, nil)
	return id, true
}

// State looks up an interned state by canonical form.
func (l *LTS) State(name string) (*State, bool) {
	id, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.States[id], true
}

// Outgoing returns the transitions leaving a state.
func (l *LTS) Outgoing(id int) []Edge {
	return l.out[id]
}
