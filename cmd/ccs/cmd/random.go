package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jzbor/ccs/random"
)

var (
	randStates      int
	randActions     int
	randTransitions int
	randSeed        int64
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random guarded specification",
	Long: `Generate a random guarded specification and print it as CCS source,
for feeding the benchmark harness or stress-testing the checker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sys := random.Generate(randStates, randActions, randTransitions, randSeed)
		fmt.Println(sys)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().IntVar(&randStates, "states", 16, "number of states")
	randomCmd.Flags().IntVar(&randActions, "actions", 4, "number of action names")
	randomCmd.Flags().IntVar(&randTransitions, "transitions", 32, "number of transitions")
	randomCmd.Flags().Int64Var(&randSeed, "seed", 0, "generator seed")
}
