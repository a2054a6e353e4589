package ccs

import "fmt"

// UndefinedProcessError reports a reference to a name absent from the
// system's definitions.
type UndefinedProcessError struct {
	Name string
}

func (e *UndefinedProcessError) Error() string {
	return fmt.Sprintf("undefined process %q", e.Name)
}

// UnguardedProcessError reports a definition that reaches itself again
// without performing an action, so its transitions have no finite
// derivation.
type UnguardedProcessError struct {
	Name string
}

func (e *UnguardedProcessError) Error() string {
	return fmt.Sprintf("unguarded recursion through process %q", e.Name)
}

// OverlappingProcessError reports a name defined by both systems in a
// merge.
type OverlappingProcessError struct {
	Name string
}

func (e *OverlappingProcessError) Error() string {
	return fmt.Sprintf("process %q defined in both systems", e.Name)
}
