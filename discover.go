package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rds-pfd/partial_fd/format"
)

var (
	discoverCsv        string
	discoverMaxError   float64
	discoverConfidence float64
	discoverSampleSize int
	discoverMaxArity   int
	discoverRhs        []string
	discoverOut        string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover partial functional dependencies in a csv file",
	Example: `  # all columns as rhs
  pfd discover --csv data/people.csv

  # only city, allow 5% violating pairs
  pfd discover --csv data/people.csv --rhs city --max-error 0.05`,
	RunE: func(cmd *cobra.Command, args []string) error {
		request := &PFDRequest{
			Path:       discoverCsv,
			Confidence: discoverConfidence,
			SampleSize: discoverSampleSize,
			MaxArity:   discoverMaxArity,
			Rhs:        discoverRhs,
		}
		if cmd.Flags().Changed("max-error") {
			request.MaxError = &discoverMaxError
		}
		result, err := DiscoverPfd(cmd.Context(), request, discoverOut)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		format.RenderDependencies(out, result.Dependencies)
		format.RenderProfiling(out, result.File.Profiling)
		fmt.Fprintf(out, "result: %s, spent: %dms\n", result.Path, result.File.SpentTime)
		return nil
	},
}

func init() {
	f := discoverCmd.Flags()
	f.StringVar(&discoverCsv, "csv", "", "csv file, first line is the header")
	f.Float64Var(&discoverMaxError, "max-error", 0, "max g1 error of a dependency")
	f.Float64Var(&discoverConfidence, "confidence", 0, "confidence level of sampled estimates")
	f.IntVar(&discoverSampleSize, "sample-size", 0, "row pairs per agree set sample")
	f.IntVar(&discoverMaxArity, "max-arity", 0, "max lhs size")
	f.StringSliceVar(&discoverRhs, "rhs", nil, "rhs columns, all columns when empty")
	f.StringVar(&discoverOut, "out", "", "result directory")
	_ = discoverCmd.MarkFlagRequired("csv")
}
