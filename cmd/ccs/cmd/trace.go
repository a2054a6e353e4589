package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var traceMax int

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "List traces of the specification, shortest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}
		l, err := explore(sys, stateLimit)
		if err != nil {
			return err
		}
		for _, trace := range l.Traces(traceMax) {
			words := make([]string, len(trace))
			for i, label := range trace {
				words[i] = string(label)
			}
			fmt.Println(strings.Join(words, ","))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().IntVarP(&traceMax, "max", "m", 32, "maximum number of traces to list")
}
