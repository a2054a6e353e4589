package lts

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// StateFacts is the expression environment a Query predicate is evaluated
// against, one instance per state.
type StateFacts struct {
	Name       string
	Depth      int
	OutDegree  int
	Deadlocked bool
	Root       bool
}

// Facts collects the queryable facts of a state.
func (l *LTS) Facts(id int) StateFacts {
	s := l.States[id]
	return StateFacts{
		Name:       s.Name,
		Depth:      s.Depth,
		OutDegree:  len(l.out[id]),
		Deadlocked: len(l.out[id]) == 0,
		Root:       id == l.Root,
	}
}

// Query filters states with a boolean expression over StateFacts, e.g.
// "Deadlocked && Depth > 2" or "OutDegree >= 3 && !Root".
func (l *LTS) Query(predicate string) ([]StateFacts, error) {
	prog, err := expr.Compile(predicate, expr.Env(StateFacts{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling query: %w", err)
	}
	var matches []StateFacts
	for id := range l.States {
		facts := l.Facts(id)
		out, err := expr.Run(prog, facts)
		if err != nil {
			return nil, fmt.Errorf("evaluating query on %s: %w", facts.Name, err)
		}
		if out.(bool) {
			matches = append(matches, facts)
		}
	}
	return matches, nil
}
