package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/analyze"
	"github.com/pennyplot/pennyplot/internal/chart"
	"github.com/pennyplot/pennyplot/internal/pipeline"
)

var analyzeTrendMethod string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize a point stream (reads JSONL from stdin)",
	Long: `Computes descriptive statistics and a trend fit over the points on stdin:
count, total, mean, spread, the labels carrying the extremes, and the
fitted direction of the series.

Use --method theil-sen for a robust fit when a single splurge would
otherwise drag the trend line.`,
	Example: `  pennyplot data get monthly --format jsonl | pennyplot analyze
  pennyplot demo data --series daily | pennyplot analyze --method theil-sen
  pennyplot demo data | pennyplot analyze --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pipeline.IsTTY() {
			return fmt.Errorf("no input on stdin\n\n  Pipe JSONL points in, e.g.: pennyplot demo data | pennyplot analyze")
		}
		id, pts, err := pipeline.ReadPoints(os.Stdin)
		if err != nil {
			return err
		}
		if id == "" {
			id = "series"
		}

		method := analyze.TrendLinear
		switch analyzeTrendMethod {
		case "", "linear":
		case "theil-sen":
			method = analyze.TrendTheilSen
		default:
			return fmt.Errorf("invalid --method %q: expected linear or theil-sen", analyzeTrendMethod)
		}

		summary := analyze.Summarize(id, pts)
		fit, fitErr := analyze.Fit(id, pts, method)

		if globalFlags.Format == "json" {
			payload := map[string]interface{}{"summary": summary}
			if fitErr == nil {
				payload["trend"] = fit
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		printSimpleTable(cmd.OutOrStdout(), []string{"STAT", "VALUE"}, func(add func(...string)) {
			add("points", fmt.Sprintf("%d", summary.Count))
			if summary.Missing > 0 {
				add("missing", fmt.Sprintf("%d (%.0f%%)", summary.Missing, summary.MissingPct))
			}
			add("total", chart.FormatFloat(summary.Total))
			add("mean", chart.FormatFloat(summary.Mean))
			add("std", chart.FormatFloat(summary.Std))
			add("min", extremeCell(summary.Min, summary.MinLabel))
			add("median", chart.FormatFloat(summary.Median))
			add("max", extremeCell(summary.Max, summary.MaxLabel))
			add("change", fmt.Sprintf("%s (%.1f%%)", chart.FormatFloat(summary.Change), summary.ChangePct))
			if fitErr == nil {
				add("trend", fmt.Sprintf("%s (slope %s/point, r² %.2f)",
					fit.Direction, chart.FormatFloat(fit.Slope), fit.R2))
			}
		})
		return nil
	},
}

// extremeCell formats an extreme value with the label that carries it.
func extremeCell(v float64, label string) string {
	if label == "" {
		return chart.FormatFloat(v)
	}
	return fmt.Sprintf("%s (%s)", chart.FormatFloat(v), label)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeTrendMethod, "method", "linear",
		"trend fit method: linear|theil-sen")
}
