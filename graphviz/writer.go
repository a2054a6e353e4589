package graphviz

import (
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/jzbor/ccs"
)

var _ ccs.Flusher[*Graph] = (*Writer)(nil)

// Writer renders a Graph through graphviz. The root node is drawn as a
// double circle.
type Writer struct {
	*Config
	g       *cgraph.Graph
	mapping map[int]*cgraph.Node
}

type Font string

const (
	Helvetica Font = "Helvetica"
	SansSerif Font = "sans-serif"
	Serif     Font = "Serif"
	Times     Font = "Times"
)

type RankDir string

const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

type Config struct {
	Font
	RankDir
	Format graphviz.Format
}

func New(config *Config) *Writer {
	if config.Format == "" {
		config.Format = graphviz.XDOT
	}
	return &Writer{
		Config:  config,
		mapping: make(map[int]*cgraph.Node),
	}
}

func (w *Writer) writeState(n Node, root bool) error {
	node, err := w.g.CreateNode(fmt.Sprintf("s%d", n.ID))
	if err != nil {
		return err
	}
	node.SetShape(cgraph.EllipseShape)
	if root {
		node.SetShape(cgraph.DoubleCircleShape)
	}
	node.SetLabel(n.Label)
	node.Set("fontname", string(w.Font))
	w.mapping[n.ID] = node
	return nil
}

func (w *Writer) writeEdge(i int, e Edge) error {
	src := w.mapping[e.Src]
	dst := w.mapping[e.Dst]
	edge, err := w.g.CreateEdge(fmt.Sprintf("e%d", i), src, dst)
	if err != nil {
		return err
	}
	edge.SetLabel(e.Label)
	edge.Set("fontname", string(w.Font))
	return nil
}

func (w *Writer) Flush(out io.Writer, t *Graph) error {
	if err := t.Validate(); err != nil {
		return err
	}
	viz := graphviz.New()
	defer func() {
		_ = viz.Close()
	}()
	g, err := viz.Graph(graphviz.Name(t.Name))
	if err != nil {
		return err
	}
	g.SetRankDir(cgraph.RankDir(w.RankDir))
	w.g = g
	for _, n := range t.Nodes {
		if err := w.writeState(n, n.ID == t.Root); err != nil {
			return err
		}
	}
	for i, e := range t.Edges {
		if err := w.writeEdge(i, e); err != nil {
			return err
		}
	}
	return viz.Render(w.g, w.Format, out)
}
