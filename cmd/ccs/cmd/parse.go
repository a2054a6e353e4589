package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a specification and echo its normalized form",
	RunE: func(cmd *cobra.Command, args []string) error {
		sys, err := loadSystem(inputFile)
		if err != nil {
			return err
		}
		fmt.Println(sys)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
