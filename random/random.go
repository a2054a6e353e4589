// Package random generates guarded finite-state CCS specifications. The
// generated systems feed the benchmark harness with reproducible input and
// cross-check the refinement algorithms against each other.
package random

import (
	"fmt"
	"math/rand"

	"github.com/jzbor/ccs"
)

// Generate produces a system with the given number of states (S0, S1, …),
// action names (a0, a1, …) and randomly placed transitions, rooted at S0.
// Every definition is a choice of action prefixes, so the result is always
// guarded and renders back to valid source. The same seed yields the same
// system.
func Generate(states, actions, transitions int, seed int64) *ccs.System {
	if states < 1 {
		states = 1
	}
	if actions < 1 {
		actions = 1
	}
	rng := rand.New(rand.NewSource(seed))

	outgoing := make([][]ccs.Transition, states)
	for i := 0; i < transitions; i++ {
		from := rng.Intn(states)
		outgoing[from] = append(outgoing[from], ccs.Transition{
			Label: ccs.Label(fmt.Sprintf("a%d", rng.Intn(actions))),
			To:    ccs.Ref{Name: stateName(rng.Intn(states))},
		})
	}

	defs := make(map[string]ccs.Process, states)
	for i, ts := range outgoing {
		defs[stateName(i)] = definition(ts)
	}

	sys, err := ccs.NewSystem(fmt.Sprintf("random-%d", seed), defs, stateName(0))
	if err != nil {
		// S0 is always defined above.
		panic(err)
	}
	return sys
}

func stateName(n int) string { return fmt.Sprintf("S%d", n) }

func definition(ts []ccs.Transition) ccs.Process {
	if len(ts) == 0 {
		return ccs.Deadlock{}
	}
	def := ccs.Process(ccs.Prefix{Action: ts[0].Label, Next: ts[0].To})
	for _, t := range ts[1:] {
		def = ccs.Choice{Left: ccs.Prefix{Action: t.Label, Next: t.To}, Right: def}
	}
	return def
}
