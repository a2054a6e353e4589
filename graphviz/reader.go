package graphviz

import (
	"io"
	"strings"

	"github.com/goccy/go-graphviz/cgraph"

	"github.com/jzbor/ccs"
)

var _ ccs.Loader[*Graph] = (*Reader)(nil)

// Reader parses a DOT document back into a Graph. It recovers exactly the
// node and edge structure the Writer emits, so a write/read round trip
// preserves state and edge counts.
type Reader struct {
	ids map[string]int
}

func Loader() *Reader {
	return &Reader{ids: make(map[string]int)}
}

func (r *Reader) Load(reader io.Reader) (*Graph, error) {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	g, err := cgraph.ParseBytes(bytes)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = g.Close()
	}()

	out := &Graph{Name: g.Name()}
	node := g.FirstNode()
	for node != nil {
		id := len(out.Nodes)
		r.ids[node.Name()] = id
		if strings.Contains(node.Get("shape"), "doublecircle") {
			out.Root = id
		}
		out.Nodes = append(out.Nodes, Node{ID: id, Label: node.Get("label")})
		node = g.NextNode(node)
	}

	n := g.FirstNode()
	seen := make(map[string]bool)
	for n != nil {
		edge := g.FirstOut(n)
		for edge != nil {
			if seen[edge.Name()] {
				edge = g.NextOut(edge)
				continue
			}
			seen[edge.Name()] = true
			out.Edges = append(out.Edges, Edge{
				Src:   r.ids[n.Name()],
				Dst:   r.ids[edge.Node().Name()],
				Label: edge.Get("label"),
			})
			edge = g.NextOut(edge)
		}
		n = g.NextNode(n)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
