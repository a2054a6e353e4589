// Package ccs implements the Calculus of Communicating Systems: process
// terms, the definition environment that resolves named processes, and the
// structural operational semantics that derives one-step transitions from a
// term. The labelled transition system explorer lives in the lts package and
// the equivalence checker in the bisim package; both are driven entirely
// through Successors.
package ccs

import "io"

// Loader reads a value of type T from a textual source.
type Loader[T any] interface {
	Load(io.Reader) (T, error)
}

// Flusher writes a value of type T to a sink.
type Flusher[T any] interface {
	Flush(io.Writer, T) error
}
