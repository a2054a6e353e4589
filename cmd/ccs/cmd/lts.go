package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/graphviz"
	"github.com/jzbor/ccs/lts"
)

var ltsDot bool

// ltsCmd represents the lts command
var ltsCmd = &cobra.Command{
	Use:   "lts",
	Short: "Print the labelled transition system of a specification",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}
		l, err := explore(sys, stateLimit)
		if err != nil {
			return err
		}
		if ltsDot {
			g, err := graphviz.Export(sys.Name(), l)
			if err != nil {
				return err
			}
			w := graphviz.New(&graphviz.Config{
				Font:    graphviz.Helvetica,
				RankDir: graphviz.LeftToRight,
			})
			return w.Flush(os.Stdout, g)
		}
		for _, e := range l.Edges {
			fmt.Printf("%s --%s--> %s\n", l.States[e.Src].Name, e.Label, l.States[e.Dst].Name)
		}
		return nil
	},
}

func explore(sys *ccs.System, limit int) (*lts.LTS, error) {
	if limit > 0 {
		return lts.ExploreN(sys, limit)
	}
	return lts.Explore(sys)
}

func init() {
	rootCmd.AddCommand(ltsCmd)
	ltsCmd.Flags().BoolVar(&ltsDot, "dot", false, "emit graphviz instead of a transition listing")
}
