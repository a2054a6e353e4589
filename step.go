package ccs

import "sort"

// Transition is a single derivation step: the action performed and the term
// it leads to.
type Transition struct {
	Label Label
	To    Process
}

// Successors derives the one-step transitions of p under the system's
// definitions by structural operational semantics. The result is a set:
// distinct derivations of the same label and continuation collapse into one
// transition (synchronizations included), and the slice is sorted by label
// then continuation so repeated derivations iterate identically.
//
// Unguarded recursion, a definition that reaches itself again without an
// intervening action, is detected during resolution and reported as
// *UnguardedProcessError. References to unknown names surface as
// *UndefinedProcessError.
func (s *System) Successors(p Process) ([]Transition, error) {
	ts, err := s.derive(p, make(map[string]bool))
	if err != nil {
		return nil, err
	}
	return dedup(ts), nil
}

// derive walks one term variant. The resolving set holds the names on the
// current resolution chain; meeting one again means the definition is
// unguarded.
func (s *System) derive(p Process, resolving map[string]bool) ([]Transition, error) {
	switch t := p.(type) {
	case Deadlock:
		return nil, nil

	case Ref:
		if resolving[t.Name] {
			return nil, &UnguardedProcessError{Name: t.Name}
		}
		def, err := s.Resolve(t)
		if err != nil {
			return nil, err
		}
		resolving[t.Name] = true
		ts, err := s.derive(def, resolving)
		delete(resolving, t.Name)
		return ts, err

	case Prefix:
		return []Transition{{Label: t.Action, To: t.Next}}, nil

	case Choice:
		left, err := s.derive(t.Left, resolving)
		if err != nil {
			return nil, err
		}
		right, err := s.derive(t.Right, resolving)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil

	case Parallel:
		left, err := s.derive(t.Left, resolving)
		if err != nil {
			return nil, err
		}
		right, err := s.derive(t.Right, resolving)
		if err != nil {
			return nil, err
		}
		ts := make([]Transition, 0, len(left)+len(right))
		for _, l := range left {
			ts = append(ts, Transition{Label: l.Label, To: Parallel{Left: l.To, Right: t.Right}})
		}
		for _, r := range right {
			ts = append(ts, Transition{Label: r.Label, To: Parallel{Left: t.Left, Right: r.To}})
		}
		for _, l := range left {
			for _, r := range right {
				if l.Label.ComplementaryTo(r.Label) {
					ts = append(ts, Transition{Label: Tau, To: Parallel{Left: l.To, Right: r.To}})
				}
			}
		}
		return ts, nil

	case Restrict:
		inner, err := s.derive(t.Proc, resolving)
		if err != nil {
			return nil, err
		}
		ts := make([]Transition, 0, len(inner))
		for _, i := range inner {
			if !i.Label.IsTau() && i.Label.Name() == t.Label.Name() {
				continue
			}
			ts = append(ts, Transition{Label: i.Label, To: Restrict{Proc: i.To, Label: t.Label}})
		}
		return ts, nil

	case Relabel:
		inner, err := s.derive(t.Proc, resolving)
		if err != nil {
			return nil, err
		}
		ts := make([]Transition, 0, len(inner))
		for _, i := range inner {
			label := i.Label
			if label == t.From {
				label = t.To
			}
			ts = append(ts, Transition{Label: label, To: Relabel{Proc: i.To, To: t.To, From: t.From}})
		}
		return ts, nil

	default:
		return nil, nil
	}
}

func dedup(ts []Transition) []Transition {
	seen := make(map[string]bool, len(ts))
	out := ts[:0]
	for _, t := range ts {
		key := string(t.Label) + "\x00" + t.To.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].To.String() < out[j].To.String()
	})
	return out
}
