package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jzbor/ccs/bench"
)

var (
	benchOut    string
	benchFormat string
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench <suite.yaml>",
	Short: "Run a benchmark suite and report timings",
	Long: `Run a benchmark suite defined in YAML and report exploration and
refinement timings per case and algorithm. Flags can also be set through
the environment (CCS_BENCH_OUT, CCS_BENCH_FORMAT), loaded from a .env
file if present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if v, ok := os.LookupEnv("CCS_BENCH_OUT"); ok && benchOut == "" {
			benchOut = v
		}
		if v, ok := os.LookupEnv("CCS_BENCH_FORMAT"); ok && !cmd.Flags().Changed("format") {
			benchFormat = v
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		suite, err := bench.LoadSuite(f)
		if err != nil {
			return err
		}

		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		report, err := bench.NewRunner(logger).Run(suite)
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if benchOut != "" {
			df, err := os.Create(benchOut)
			if err != nil {
				return err
			}
			defer func() {
				_ = df.Close()
			}()
			out = df
		}
		switch benchFormat {
		case "csv":
			return report.WriteCSV(out)
		case "yaml":
			return report.WriteYAML(out)
		default:
			return fmt.Errorf("unknown report format %q", benchFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVarP(&benchOut, "out", "o", "", "report file (default stdout)")
	benchCmd.Flags().StringVarP(&benchFormat, "format", "f", "csv", "report format (csv or yaml)")
}
