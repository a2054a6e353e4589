package ccs

import (
	"fmt"
	"strings"
)

// Process is a CCS process term. The variant set is closed: it is fixed by
// the calculus, and the semantics performs exhaustive case analysis over it.
// Two terms denote the same state when their canonical forms (String) are
// equal; the explorer interns states by that form.
type Process interface {
	fmt.Stringer
	isProcess()
}

// Deadlock is the inert process 0. It has no transitions.
type Deadlock struct{}

// Ref is a reference to a named process, resolved against a System.
type Ref struct {
	Name string
}

// Prefix performs Action and continues as Next.
type Prefix struct {
	Action Label
	Next   Process
}

// Choice behaves as either Left or Right, committing to one operand's
// continuation when a transition fires.
type Choice struct {
	Left, Right Process
}

// Parallel runs Left and Right concurrently. Complementary visible actions
// of the two sides synchronize into a τ transition.
type Parallel struct {
	Left, Right Process
}

// Restrict suppresses transitions of Proc labeled with Label or its
// co-action. Restricting multiple names is expressed by chaining.
type Restrict struct {
	Proc  Process
	Label Label
}

// Relabel rewrites the visible label From to To in the transitions of Proc.
// τ is never rewritten. Multiple renamings are expressed by chaining.
type Relabel struct {
	Proc     Process
	To, From Label
}

func (Deadlock) isProcess() {}
func (Ref) isProcess()      {}
func (Prefix) isProcess()   {}
func (Choice) isProcess()   {}
func (Parallel) isProcess() {}
func (Restrict) isProcess() {}
func (Relabel) isProcess()  {}

func (Deadlock) String() string { return "0" }

func (r Ref) String() string { return r.Name }

func (p Prefix) String() string { return string(p.Action) + "." + p.Next.String() }

func (c Choice) String() string {
	return "(" + join(c.operands(), " + ") + ")"
}

func (p Parallel) String() string {
	return "(" + join(p.operands(), " | ") + ")"
}

func (r Restrict) String() string { return operand(r.Proc) + "\\" + string(r.Label) }

func (r Relabel) String() string {
	return fmt.Sprintf("%s[%s/%s]", operand(r.Proc), r.To, r.From)
}

// operand renders the target of a postfix operator. A prefix operand is
// parenthesized: b.0\b must stay the prefix of a restricted deadlock while
// (b.0)\b restricts the whole prefix, and the canonical form has to keep
// the two apart since states are interned by it.
func operand(p Process) string {
	if _, ok := p.(Prefix); ok {
		return "(" + p.String() + ")"
	}
	return p.String()
}

// operands flattens right-nested choices so A + (B + C) prints as
// (A + B + C).
func (c Choice) operands() []Process {
	ops := []Process{c.Left}
	rest := c.Right
	for {
		next, ok := rest.(Choice)
		if !ok {
			return append(ops, rest)
		}
		ops = append(ops, next.Left)
		rest = next.Right
	}
}

func (p Parallel) operands() []Process {
	ops := []Process{p.Left}
	rest := p.Right
	for {
		next, ok := rest.(Parallel)
		if !ok {
			return append(ops, rest)
		}
		ops = append(ops, next.Left)
		rest = next.Right
	}
}

func join(ps []Process, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}

// Equal reports structural equality of two terms via their canonical forms.
func Equal(a, b Process) bool { return a.String() == b.String() }
