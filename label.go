package ccs

import "strings"

// Tau is the silent action produced by synchronization. It has no co-action
// and is never restricted or relabeled.
const Tau Label = "τ"

// Label is an action label. A visible label is a plain name or a co-action;
// the co-action of "a" is written "a'" and complementing twice yields "a"
// again.
type Label string

func (l Label) IsTau() bool { return l == Tau }

// Complement returns the co-action of l. τ is its own complement.
func (l Label) Complement() Label {
	if l.IsTau() {
		return l
	}
	if strings.HasSuffix(string(l), "'") {
		return l[:len(l)-1]
	}
	return l + "'"
}

// Name strips the co-action polarity from l.
func (l Label) Name() Label {
	if strings.HasSuffix(string(l), "'") {
		return l[:len(l)-1]
	}
	return l
}

// ComplementaryTo reports whether l and other synchronize when offered by
// two parallel components. τ never synchronizes.
func (l Label) ComplementaryTo(other Label) bool {
	return !l.IsTau() && !other.IsTau() && l.Complement() == other
}

func (l Label) String() string { return string(l) }
