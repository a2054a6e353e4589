package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/bisim"
)

var (
	bisimLeft  string
	bisimRight string
	bisimAlg   string
)

// bisimCmd represents the bisim command
var bisimCmd = &cobra.Command{
	Use:   "bisim [second-file]",
	Short: "Decide strong bisimilarity between two processes",
	Long: `Decide strong bisimilarity. With a second file, the two specifications'
root processes are compared (their definitions are merged, so names must
not overlap). Within one file, --left and --right select two processes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alg, err := algorithm(bisimAlg)
		if err != nil {
			return err
		}
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}

		left, right := bisimLeft, bisimRight
		if len(args) == 1 {
			other, err := loadSystem(args[0])
			if err != nil {
				return err
			}
			merged, err := sys.Merge(other)
			if err != nil {
				return err
			}
			sys = merged
			if left == "" {
				left = merged.Root()
			}
			if right == "" {
				right = other.Root()
			}
		}
		if left == "" || right == "" {
			return fmt.Errorf("need either a second file or both --left and --right")
		}

		res, err := bisim.CheckTermsWith(sys, ccs.Ref{Name: left}, ccs.Ref{Name: right}, alg)
		if err != nil {
			return err
		}
		if res.Bisimilar {
			fmt.Printf("%s ~ %s\n", left, right)
			return nil
		}
		fmt.Printf("%s ≁ %s\n", left, right)
		fmt.Printf("counterexample: %s\n", res.Witness)
		return nil
	},
}

func algorithm(name string) (bisim.Algorithm, error) {
	switch name {
	case "worklist":
		return bisim.Worklist{}, nil
	case "naive":
		return bisim.Naive{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}

func init() {
	rootCmd.AddCommand(bisimCmd)
	bisimCmd.Flags().StringVar(&bisimLeft, "left", "", "left process name")
	bisimCmd.Flags().StringVar(&bisimRight, "right", "", "right process name")
	bisimCmd.Flags().StringVar(&bisimAlg, "algorithm", "worklist", "refinement algorithm (worklist or naive)")
}
