package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/chart"
	"github.com/pennyplot/pennyplot/internal/dataset"
	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/pipeline"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate sample spending data",
	Long: `Demo commands produce deterministic sample data so every chart command
can be tried without importing anything. The same --seed always yields the
same numbers.`,
}

// ─── demo data ────────────────────────────────────────────────────────────────

var (
	demoSeed   int64
	demoSeries string
)

var demoDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Emit a sample series as JSONL",
	Long: `Emits one sample series as JSONL on stdout, ready to pipe into chart or
transform commands.

Available series:
  monthly     total spend per month (12 points)
  daily       spend per day with weekend spikes (30 points)
  by-mood     discretionary spend split across emotional tags
  categories  per-category spend with budgets and trends (for breakdown)`,
	Example: `  pennyplot demo data | pennyplot chart bar
  pennyplot demo data --series daily | pennyplot chart spark
  pennyplot demo data --series categories | pennyplot chart breakdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch demoSeries {
		case "monthly":
			return pipeline.WriteJSONL(out, dataset.Monthly(demoSeed, 12))
		case "daily":
			return pipeline.WriteJSONL(out, dataset.Daily(demoSeed, 30))
		case "by-mood", "":
			return pipeline.WriteJSONL(out, dataset.ByMood(demoSeed))
		case "categories":
			return pipeline.WriteCategoriesJSONL(out, dataset.Categories(demoSeed))
		default:
			return fmt.Errorf("unknown series %q: expected monthly|daily|by-mood|categories", demoSeries)
		}
	},
}

// ─── demo dashboard ───────────────────────────────────────────────────────────

var demoDashSeed int64

var demoDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render every chart type at once from sample data",
	Long: `Generates the full sample dataset and renders one chart of each kind to
the terminal: a column chart of monthly spend, a daily sparkline, a mood
pie, a category breakdown, and a budget gauge.`,
	Example: `  pennyplot demo dashboard
  pennyplot demo dashboard --seed 7 --width 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		b, err := dataset.GenerateAll(cmd.Context(), demoDashSeed)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		width := chartWidth(deps)
		pal := deps.Config.Palette

		cols := geom.Bars(b.Monthly.Points, geom.BarOptions{Height: 8, Palette: pal})
		chart.Columns(w, b.Monthly.Title, cols, chart.ColumnOptions{Height: 8})
		fmt.Fprintln(w)

		fmt.Fprintln(w, b.Daily.Title)
		pl := geom.PolylineOf(b.Daily.Points, geom.PolylineOptions{Width: 300, Height: 80, Stroke: 2})
		fmt.Fprintln(w, chart.Spark(pl))
		fmt.Fprintln(w)

		pc := geom.PieOf(b.ByMood.Points, pal, 200, 30, true)
		chart.Pie(w, b.ByMood.Title, pc.Segments, chart.PieOptions{Width: width, Donut: true})
		fmt.Fprintln(w)

		entries := geom.Breakdown(b.Categories, geom.BreakdownOptions{
			MaxItems: 6,
			Palette:  pal,
		})
		chart.BreakdownList(w, "Spending by category", entries, chart.BreakdownOptions{Width: width})
		fmt.Fprintln(w)

		// Budget gauge: total spend against total budget across the
		// categories that set one.
		var spent, budget float64
		for _, c := range b.Categories {
			if c.Budget > 0 {
				spent += c.Amount
				budget += c.Budget
			}
		}
		if budget > 0 {
			ring := geom.Progress(spent/budget*100, 120, 10)
			chart.Gauge(w, ring, chart.GaugeOptions{Label: "Budget used"})
		}
		return nil
	},
}

// ─── demo live ────────────────────────────────────────────────────────────────

var (
	liveSeed  int64
	liveRate  float64
	liveCount int
)

var demoLiveCmd = &cobra.Command{
	Use:   "live",
	Short: "Stream synthetic expense events as JSONL",
	Long: `Streams synthetic expense events to stdout as JSONL, paced at --rate
events per second. Runs until --count events have been written, or until
interrupted when --count is 0.`,
	Example: `  pennyplot demo live --count 20
  pennyplot demo live --rate 5 | head -50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return dataset.Feed(ctx, cmd.OutOrStdout(), dataset.FeedOptions{
			Seed:    liveSeed,
			PerSec:  liveRate,
			Count:   liveCount,
			Verbose: deps.Config.Verbose,
		})
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.AddCommand(demoDataCmd)
	demoCmd.AddCommand(demoDashboardCmd)
	demoCmd.AddCommand(demoLiveCmd)

	demoDataCmd.Flags().Int64Var(&demoSeed, "seed", dataset.DefaultSeed,
		"random seed for reproducible data")
	demoDataCmd.Flags().StringVar(&demoSeries, "series", "by-mood",
		"which series to emit: monthly|daily|by-mood|categories")

	demoDashboardCmd.Flags().Int64Var(&demoDashSeed, "seed", dataset.DefaultSeed,
		"random seed for reproducible data")

	demoLiveCmd.Flags().Int64Var(&liveSeed, "seed", dataset.DefaultSeed,
		"random seed for reproducible events")
	demoLiveCmd.Flags().Float64Var(&liveRate, "rate", 2,
		"events per second")
	demoLiveCmd.Flags().IntVar(&liveCount, "count", 0,
		"stop after N events (0 = run until interrupted)")
}
