package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	gv "github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/jzbor/ccs/graphviz"
)

var (
	vizOutputDir string
	vizFormat    string
)

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Render the transition system of a specification to a figure",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}
		l, err := explore(sys, stateLimit)
		if err != nil {
			return err
		}
		g, err := graphviz.Export(sys.Name(), l)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(vizOutputDir, os.ModePerm); err != nil {
			return err
		}
		outPath := filepath.Join(vizOutputDir, sys.Name()+"."+vizFormat)
		df, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = df.Close()
		}()
		w := graphviz.New(&graphviz.Config{
			Font:    graphviz.Helvetica,
			RankDir: graphviz.LeftToRight,
			Format:  gv.Format(vizFormat),
		})
		if err := w.Flush(df, g); err != nil {
			return err
		}
		fmt.Printf("wrote %d states and %d edges to %s\n", len(g.Nodes), len(g.Edges), outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&vizOutputDir, "output", "o", ".", "output directory")
	vizCmd.Flags().StringVarP(&vizFormat, "format", "f", "svg", "output format")
}
