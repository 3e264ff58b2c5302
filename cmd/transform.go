package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/pipeline"
	"github.com/pennyplot/pennyplot/internal/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform a point stream (reads and writes JSONL)",
	Long: `Transform commands read JSONL points from stdin, apply a pure operator,
and write JSONL to stdout. They chain with each other and with the chart
commands:

  pennyplot data get monthly --format jsonl \
    | pennyplot transform pct-change \
    | pennyplot chart column`,
}

// runTransform wires the stdin/stdout plumbing shared by every operator.
func runTransform(cmd *cobra.Command, op func([]model.Point) ([]model.Point, []string, error)) error {
	if pipeline.IsTTY() {
		return fmt.Errorf("no input on stdin\n\n  Pipe JSONL points in, e.g.: pennyplot demo data | pennyplot transform cumsum")
	}
	id, pts, err := pipeline.ReadPoints(os.Stdin)
	if err != nil {
		return err
	}
	out, warnings, err := op(pts)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}
	return pipeline.WriteJSONL(cmd.OutOrStdout(), model.Series{ID: id, Points: out})
}

// ─── transform pct-change ─────────────────────────────────────────────────────

var pctChangePeriod int

var transformPctChangeCmd = &cobra.Command{
	Use:   "pct-change",
	Short: "Percent change from the prior point",
	Long: `Computes the percent change of each point against the point --period
positions earlier. Leading points without a prior period are dropped.`,
	Example: `  pennyplot data get monthly --format jsonl | pennyplot transform pct-change
  pennyplot data get monthly --format jsonl | pennyplot transform pct-change --period 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, func(pts []model.Point) ([]model.Point, []string, error) {
			out, err := transform.PctChange(pts, pctChangePeriod)
			return out, nil, err
		})
	},
}

// ─── transform diff ───────────────────────────────────────────────────────────

var diffOrder int

var transformDiffCmd = &cobra.Command{
	Use:     "diff",
	Short:   "Point-to-point difference",
	Example: `  pennyplot data get daily --format jsonl | pennyplot transform diff`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, func(pts []model.Point) ([]model.Point, []string, error) {
			out, err := transform.Diff(pts, diffOrder)
			return out, nil, err
		})
	},
}

// ─── transform roll ───────────────────────────────────────────────────────────

var rollWindow int

var transformRollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Trailing rolling mean",
	Long: `Smooths the series with a trailing rolling mean. The output is shorter
than the input by window-1 points.`,
	Example: `  pennyplot data get daily --format jsonl | pennyplot transform roll --window 7 | pennyplot chart spark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, func(pts []model.Point) ([]model.Point, []string, error) {
			out, err := transform.Roll(pts, rollWindow)
			return out, nil, err
		})
	},
}

// ─── transform cumsum ─────────────────────────────────────────────────────────

var transformCumSumCmd = &cobra.Command{
	Use:     "cumsum",
	Short:   "Running total",
	Example: `  pennyplot data get daily --format jsonl | pennyplot transform cumsum | pennyplot chart spark`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, func(pts []model.Point) ([]model.Point, []string, error) {
			out, warnings := transform.CumSum(pts)
			return out, warnings, nil
		})
	},
}

// ─── transform index ──────────────────────────────────────────────────────────

var indexBase float64

var transformIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rescale so the first point equals a base value",
	Long: `Rescales the series so the first point equals --base (default 100),
making different series comparable on one chart.`,
	Example: `  pennyplot data get monthly --format jsonl | pennyplot transform index
  pennyplot data get monthly --format jsonl | pennyplot transform index --base 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, func(pts []model.Point) ([]model.Point, []string, error) {
			out, err := transform.Index(pts, indexBase)
			return out, nil, err
		})
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.AddCommand(transformPctChangeCmd)
	transformCmd.AddCommand(transformDiffCmd)
	transformCmd.AddCommand(transformRollCmd)
	transformCmd.AddCommand(transformCumSumCmd)
	transformCmd.AddCommand(transformIndexCmd)

	transformPctChangeCmd.Flags().IntVar(&pctChangePeriod, "period", 1,
		"number of points back to compare against")
	transformDiffCmd.Flags().IntVar(&diffOrder, "order", 1,
		"difference order: 1 or 2")
	transformRollCmd.Flags().IntVar(&rollWindow, "window", 3,
		"rolling window size")
	transformIndexCmd.Flags().Float64Var(&indexBase, "base", 100,
		"value the first point is rescaled to")
}
