package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jzbor/ccs"
	"github.com/jzbor/ccs/parser"
)

var (
	inputFile  string
	stateLimit int
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "ccs",
	Short: "ccs explores and compares CCS process specifications",
	Long: `ccs parses Calculus of Communicating Systems specifications, derives
their labelled transition systems, renders them, and decides strong
bisimilarity between processes.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "default.ccs", "CCS specification file")
	rootCmd.PersistentFlags().IntVar(&stateLimit, "limit", 0, "abort exploration after this many states (0 for unlimited)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSystem parses and validates the specification named by the global
// input flag, or an explicit path.
func loadSystem(path string) (*ccs.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p := &parser.Parser{Name: name}
	sys, err := p.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sys, nil
}
