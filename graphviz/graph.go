// Package graphviz serializes explored transition systems into a generic
// node/edge description and renders it through graphviz. Rendering is pure
// serialization; all semantic computation happens before the LTS gets here.
package graphviz

import (
	"errors"
	"fmt"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/lts"
)

// ErrMalformedGraph reports an internal-invariant violation: an edge whose
// endpoint is not in the node list. Unreachable for graphs built by Export.
var ErrMalformedGraph = errors.New("malformed graph")

// TauSymbol is the display form of the silent action.
const TauSymbol = string(ccs.Tau)

// Node is a state with its display label.
type Node struct {
	ID    int
	Label string
}

// Edge is a labelled arc between two node ids.
type Edge struct {
	Src, Dst int
	Label    string
}

// Graph is the renderer-independent description of an LTS.
type Graph struct {
	Name  string
	Root  int
	Nodes []Node
	Edges []Edge
}

// Export serializes an LTS. Node labels are the canonical term forms and
// edge labels the action names, τ included.
func Export(name string, l *lts.LTS) (*Graph, error) {
	g := &Graph{Name: name, Root: l.Root}
	for _, s := range l.States {
		g.Nodes = append(g.Nodes, Node{ID: s.ID, Label: s.Name})
	}
	for _, e := range l.Edges {
		g.Edges = append(g.Edges, Edge{Src: e.Src, Dst: e.Dst, Label: string(e.Label)})
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the edge-endpoint invariant.
func (g *Graph) Validate() error {
	for _, e := range g.Edges {
		if e.Src < 0 || e.Src >= len(g.Nodes) || e.Dst < 0 || e.Dst >= len(g.Nodes) {
			return fmt.Errorf("%w: edge %d -> %d outside %d nodes", ErrMalformedGraph, e.Src, e.Dst, len(g.Nodes))
		}
	}
	return nil
}
