package ccs

import (
	"sort"
	"strings"
)

// Anonymous is the placeholder name for a definition that is not meant to
// be referenced, such as a throwaway top-level query.
const Anonymous = "_"

// System is a CCS specification: an immutable mapping from process names to
// their defining terms plus a distinguished root process. Definitions may be
// mutually recursive; references are resolved by lookup at derivation time,
// never by inlining, so no cyclic term structure is ever built.
type System struct {
	name string
	defs map[string]Process
	root string
}

// NewSystem builds a system from parsed definitions. The root name must be
// defined.
func NewSystem(name string, defs map[string]Process, root string) (*System, error) {
	if _, ok := defs[root]; !ok {
		return nil, &UndefinedProcessError{Name: root}
	}
	return &System{name: name, defs: defs, root: root}, nil
}

func (s *System) Name() string { return s.name }

// Root returns the name of the distinguished process.
func (s *System) Root() string { return s.root }

// Definition looks up the defining term of a process name.
func (s *System) Definition(name string) (Process, bool) {
	p, ok := s.defs[name]
	return p, ok
}

// Names returns all defined process names in sorted order.
func (s *System) Names() []string {
	names := make([]string, 0, len(s.defs))
	for n := range s.defs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Resolve replaces a reference by its defining term, one level deep.
// Callers re-resolve after each derivation step since the definition may
// itself begin with a reference.
func (s *System) Resolve(p Process) (Process, error) {
	ref, ok := p.(Ref)
	if !ok {
		return p, nil
	}
	def, ok := s.defs[ref.Name]
	if !ok {
		return nil, &UndefinedProcessError{Name: ref.Name}
	}
	return def, nil
}

// Validate checks that every reference inside every definition names a
// defined process, reporting the first offender. Detecting this here keeps
// exploration from failing halfway through a large state space.
func (s *System) Validate() error {
	for _, name := range s.Names() {
		if err := s.validateTerm(s.defs[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *System) validateTerm(p Process) error {
	switch t := p.(type) {
	case Deadlock:
		return nil
	case Ref:
		if _, ok := s.defs[t.Name]; !ok {
			return &UndefinedProcessError{Name: t.Name}
		}
		return nil
	case Prefix:
		return s.validateTerm(t.Next)
	case Choice:
		if err := s.validateTerm(t.Left); err != nil {
			return err
		}
		return s.validateTerm(t.Right)
	case Parallel:
		if err := s.validateTerm(t.Left); err != nil {
			return err
		}
		return s.validateTerm(t.Right)
	case Restrict:
		return s.validateTerm(t.Proc)
	case Relabel:
		return s.validateTerm(t.Proc)
	default:
		return nil
	}
}

// Merge combines two systems into one, keeping the receiver's root. Process
// names must not overlap; the anonymous placeholder is exempt when only one
// side defines it.
func (s *System) Merge(other *System) (*System, error) {
	defs := make(map[string]Process, len(s.defs)+len(other.defs))
	for n, p := range s.defs {
		defs[n] = p
	}
	for n, p := range other.defs {
		if _, ok := defs[n]; ok {
			return nil, &OverlappingProcessError{Name: n}
		}
		defs[n] = p
	}
	return &System{
		name: s.name + "+" + other.name,
		defs: defs,
		root: s.root,
	}, nil
}

// String renders the system back to its textual form, root definition
// first.
func (s *System) String() string {
	var b strings.Builder
	b.WriteString(s.root + " = " + s.defs[s.root].String())
	for _, name := range s.Names() {
		if name == s.root {
			continue
		}
		b.WriteString("\n" + name + " = " + s.defs[name].String())
	}
	return b.String()
}
