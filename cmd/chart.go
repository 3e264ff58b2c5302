package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/chart"
	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/pipeline"
	"github.com/pennyplot/pennyplot/internal/render"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Turn a stream of labeled values into a chart (reads JSONL from stdin)",
	Long: `Chart commands read JSONL points from stdin, compute the chart geometry,
and render it in the requested format. The default format draws to the
terminal; --format svg emits a vector image, --format json emits the raw
geometry for other renderers to consume.

Pipeline examples:
  pennyplot demo data | pennyplot chart bar
  pennyplot data get groceries --format jsonl | pennyplot chart spark
  pennyplot demo data --series by-mood | pennyplot chart donut --format svg --out mood.svg`,
}

// readStdinPoints fails fast with a usage hint when stdin is a terminal.
func readStdinPoints() (string, []model.Point, error) {
	if pipeline.IsTTY() {
		return "", nil, fmt.Errorf("no input on stdin\n\n  Pipe JSONL points in, e.g.: pennyplot demo data | pennyplot chart bar")
	}
	return pipeline.ReadPoints(os.Stdin)
}

// ─── chart bar ────────────────────────────────────────────────────────────────

var (
	chartBarMax     float64
	chartBarStacked bool
	chartBarValues  bool
	chartBarTitle   string
)

var chartBarCmd = &cobra.Command{
	Use:   "bar",
	Short: "Horizontal bar chart, one bar per point",
	Long: `Renders a horizontal bar chart with one labeled bar per point.

Bars scale against the largest value plus 10% headroom, so the longest bar
never touches the edge. Pass --max to pin the scale instead; values above
an explicit --max overshoot on purpose.

Negative values are supported — bars extend left from a zero baseline.`,
	Example: `  pennyplot demo data | pennyplot chart bar
  pennyplot data get dining --format jsonl | pennyplot chart bar --values
  pennyplot demo data | pennyplot chart bar --max 1000 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		title, pts, err := readStdinPoints()
		if err != nil {
			return err
		}
		if chartBarTitle != "" {
			title = chartBarTitle
		}

		layout := geom.Bars(pts, geom.BarOptions{
			MaxValue: chartBarMax,
			Stacked:  chartBarStacked,
			Palette:  deps.Config.Palette,
		})

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm {
			chart.Bar(cmd.OutOrStdout(), title, layout, chart.BarOptions{
				Width:      chartWidth(deps),
				ShowValues: chartBarValues,
			})
			return nil
		}
		result := buildResult(model.KindBarChart, "chart bar", layout, len(layout.Bars), nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── chart column ─────────────────────────────────────────────────────────────

var (
	chartColumnMax     float64
	chartColumnHeight  int
	chartColumnStacked bool
	chartColumnTitle   string
)

var chartColumnCmd = &cobra.Command{
	Use:   "column",
	Short: "Vertical column chart",
	Long: `Renders vertical columns, bottom-aligned, built from eighth-block runes.
With --stacked, each point's secondary value is drawn beneath the primary
with a lighter fill.`,
	Example: `  pennyplot demo data --series monthly | pennyplot chart column
  pennyplot demo data --series monthly | pennyplot chart column --height 12
  pennyplot demo data | pennyplot chart column --format svg --out spend.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		title, pts, err := readStdinPoints()
		if err != nil {
			return err
		}
		if chartColumnTitle != "" {
			title = chartColumnTitle
		}

		height := chartColumnHeight
		if height <= 0 {
			height = 8
		}
		layout := geom.Bars(pts, geom.BarOptions{
			MaxValue: chartColumnMax,
			Height:   float64(height),
			Stacked:  chartColumnStacked,
			Palette:  deps.Config.Palette,
		})

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm {
			chart.Columns(cmd.OutOrStdout(), title, layout, chart.ColumnOptions{
				Height: height,
			})
			return nil
		}
		result := buildResult(model.KindBarChart, "chart column", layout, len(layout.Bars), nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── chart spark ──────────────────────────────────────────────────────────────

var (
	chartSparkWidth  float64
	chartSparkHeight float64
)

var chartSparkCmd = &cobra.Command{
	Use:   "spark",
	Short: "One-line sparkline",
	Long: `Renders the series as a single line of block runes, one rune per point.
A flat series renders as a uniform row of the lowest block rune.

For non-terminal formats the full polyline geometry is emitted: mapped
points plus the rotated segment boxes that connect them.`,
	Example: `  pennyplot demo data --series daily | pennyplot chart spark
  pennyplot data get coffee --format jsonl | pennyplot chart spark
  pennyplot demo data --series daily | pennyplot chart spark --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		title, pts, err := readStdinPoints()
		if err != nil {
			return err
		}

		pl := geom.PolylineOf(pts, geom.PolylineOptions{
			Width:  chartSparkWidth,
			Height: chartSparkHeight,
			Stroke: 2,
		})

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm {
			if title != "" && !deps.Config.Quiet {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			fmt.Fprintln(cmd.OutOrStdout(), chart.Spark(pl))
			return nil
		}
		result := buildResult(model.KindLineChart, "chart spark", pl, len(pl.Points), nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── chart pie / donut ────────────────────────────────────────────────────────

var (
	chartPieSize   float64
	chartPieStroke float64
	chartPieTitle  string
)

var chartPieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Pie chart segments",
	Long: `Computes pie segments from the points on stdin: each value becomes an
angular span proportional to its share of the total, starting at twelve
o'clock and proceeding clockwise. Input order is preserved.

The terminal rendering is a proportional band plus a legend; --format svg
draws true arcs.`,
	Example: `  pennyplot demo data --series by-mood | pennyplot chart pie
  pennyplot demo data --series by-mood | pennyplot chart pie --format svg --out mood.svg
  pennyplot demo data | pennyplot chart pie --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPie(cmd, false, "chart pie")
	},
}

var chartDonutCmd = &cobra.Command{
	Use:   "donut",
	Short: "Donut chart segments",
	Long: `Same segment geometry as pie, plus a centered hole sized from the chart
stroke. SVG output draws annular wedges.`,
	Example: `  pennyplot demo data --series by-mood | pennyplot chart donut
  pennyplot demo data --series by-mood | pennyplot chart donut --format svg --out mood.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPie(cmd, true, "chart donut")
	},
}

func runPie(cmd *cobra.Command, donut bool, command string) error {
	deps, err := buildDeps()
	if err != nil {
		return err
	}
	title, pts, err := readStdinPoints()
	if err != nil {
		return err
	}
	if chartPieTitle != "" {
		title = chartPieTitle
	}

	pc := geom.PieOf(pts, deps.Config.Palette, chartPieSize, chartPieStroke, donut)

	format := resolveFormat(deps.Config.Format)
	if format == render.FormatTerm {
		chart.Pie(cmd.OutOrStdout(), title, pc.Segments, chart.PieOptions{
			Width: chartWidth(deps),
			Donut: donut,
		})
		return nil
	}
	result := buildResult(model.KindPieChart, command, pc, len(pc.Segments), nil)
	return render.RenderTo(globalFlags.Out, result, format)
}

// ─── chart ring ───────────────────────────────────────────────────────────────

var (
	ringPercent float64
	ringValue   float64
	ringTarget  float64
	ringSize    float64
	ringStroke  float64
	ringLabel   string
)

var chartRingCmd = &cobra.Command{
	Use:   "ring",
	Short: "Radial progress ring",
	Long: `Computes the geometry of a radial progress indicator. Give the progress
either directly with --percent, or as --value against --target. Progress
clamps to 0–100; a spending goal at 140% of target still draws a full ring.

This command takes no stdin input.`,
	Example: `  pennyplot chart ring --percent 42 --label "vacation fund"
  pennyplot chart ring --value 350 --target 500
  pennyplot chart ring --percent 80 --format svg --out goal.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}

		pct := ringPercent
		if ringTarget > 0 {
			pct = ringValue / ringTarget * 100
		}
		ring := geom.Progress(pct, ringSize, ringStroke)

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm {
			chart.Gauge(cmd.OutOrStdout(), ring, chart.GaugeOptions{
				Label: ringLabel,
			})
			return nil
		}
		result := buildResult(model.KindRing, "chart ring", ring, 1, nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── chart breakdown ──────────────────────────────────────────────────────────

var (
	breakdownMaxItems int
	breakdownPolarity string
	breakdownTitle    string
)

var chartBreakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Category breakdown, sorted and scaled",
	Long: `Reads category rows (name, amount, optional budget and trend) from stdin,
sorts them by amount descending, keeps the top --max-items, and scales each
row against the largest retained amount.

Trend arrows respect polarity: for spending, a rising trend is bad, so
--polarity negative (the default) colors up-arrows as warnings. Use
--polarity positive for savings or income, where up is good.`,
	Example: `  pennyplot demo data --series categories | pennyplot chart breakdown
  pennyplot demo data --series categories | pennyplot chart breakdown --max-items 5
  pennyplot data get savings --format jsonl | pennyplot chart breakdown --polarity positive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		if pipeline.IsTTY() {
			return fmt.Errorf("no input on stdin\n\n  Pipe category rows in, e.g.: pennyplot demo data --series categories | pennyplot chart breakdown")
		}
		items, err := pipeline.ReadCategories(os.Stdin)
		if err != nil {
			return err
		}

		positiveIsGood := false
		switch breakdownPolarity {
		case "negative", "":
		case "positive":
			positiveIsGood = true
		default:
			return fmt.Errorf("invalid --polarity %q: expected positive or negative", breakdownPolarity)
		}

		entries := geom.Breakdown(items, geom.BreakdownOptions{
			MaxItems:       breakdownMaxItems,
			PositiveIsGood: positiveIsGood,
			Palette:        deps.Config.Palette,
		})

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm {
			chart.BreakdownList(cmd.OutOrStdout(), breakdownTitle, entries, chart.BreakdownOptions{
				Width: chartWidth(deps),
			})
			return nil
		}
		result := buildResult(model.KindBreakdown, "chart breakdown", entries, len(entries), nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartBarCmd)
	chartCmd.AddCommand(chartColumnCmd)
	chartCmd.AddCommand(chartSparkCmd)
	chartCmd.AddCommand(chartPieCmd)
	chartCmd.AddCommand(chartDonutCmd)
	chartCmd.AddCommand(chartRingCmd)
	chartCmd.AddCommand(chartBreakdownCmd)

	// bar flags
	chartBarCmd.Flags().Float64Var(&chartBarMax, "max", 0,
		"explicit scale maximum (0 = largest value plus 10% headroom)")
	chartBarCmd.Flags().BoolVar(&chartBarStacked, "stacked", false,
		"stack each point's secondary value")
	chartBarCmd.Flags().BoolVar(&chartBarValues, "values", false,
		"print the numeric value next to each bar")
	chartBarCmd.Flags().StringVar(&chartBarTitle, "title", "",
		"chart title (default: series title from input)")

	// column flags
	chartColumnCmd.Flags().Float64Var(&chartColumnMax, "max", 0,
		"explicit scale maximum (0 = largest value plus 10% headroom)")
	chartColumnCmd.Flags().IntVar(&chartColumnHeight, "height", 8,
		"column height in rows")
	chartColumnCmd.Flags().BoolVar(&chartColumnStacked, "stacked", false,
		"stack each point's secondary value")
	chartColumnCmd.Flags().StringVar(&chartColumnTitle, "title", "",
		"chart title (default: series title from input)")

	// spark flags
	chartSparkCmd.Flags().Float64Var(&chartSparkWidth, "px-width", 300,
		"logical pixel width of the polyline geometry")
	chartSparkCmd.Flags().Float64Var(&chartSparkHeight, "px-height", 80,
		"logical pixel height of the polyline geometry")

	// pie / donut flags (shared variables, registered on both)
	for _, c := range []*cobra.Command{chartPieCmd, chartDonutCmd} {
		c.Flags().Float64Var(&chartPieSize, "size", 200,
			"chart diameter in logical pixels")
		c.Flags().Float64Var(&chartPieStroke, "stroke", 30,
			"ring stroke width in logical pixels (donut hole derives from this)")
		c.Flags().StringVar(&chartPieTitle, "title", "",
			"chart title (default: series title from input)")
	}

	// ring flags
	chartRingCmd.Flags().Float64Var(&ringPercent, "percent", 0,
		"progress percentage (clamped to 0-100)")
	chartRingCmd.Flags().Float64Var(&ringValue, "value", 0,
		"current value (used with --target)")
	chartRingCmd.Flags().Float64Var(&ringTarget, "target", 0,
		"target value; progress = value/target")
	chartRingCmd.Flags().Float64Var(&ringSize, "size", 120,
		"ring diameter in logical pixels")
	chartRingCmd.Flags().Float64Var(&ringStroke, "stroke", 10,
		"ring stroke width in logical pixels")
	chartRingCmd.Flags().StringVar(&ringLabel, "label", "",
		"label printed before the gauge")

	// breakdown flags
	chartBreakdownCmd.Flags().IntVar(&breakdownMaxItems, "max-items", 0,
		"keep only the N largest categories (0 = all)")
	chartBreakdownCmd.Flags().StringVar(&breakdownPolarity, "polarity", "negative",
		"trend polarity: negative (spending, up is bad) or positive (savings, up is good)")
	chartBreakdownCmd.Flags().StringVar(&breakdownTitle, "title", "",
		"list title")
}
