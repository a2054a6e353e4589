package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queryExpr string

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter states of the transition system with an expression",
	Long: `Filter states with a boolean expression over per-state facts: Name,
Depth, OutDegree, Deadlocked and Root. For example:

  ccs query -i spec.ccs -e 'Deadlocked && Depth > 2'
  ccs query -i spec.ccs -e 'OutDegree >= 3 && !Root'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}
		l, err := explore(sys, stateLimit)
		if err != nil {
			return err
		}
		matches, err := l.Query(queryExpr)
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Printf("%s (depth %d, out-degree %d)\n", m.Name, m.Depth, m.OutDegree)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&queryExpr, "expression", "e", "true", "state predicate")
}
