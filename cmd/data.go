package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/pipeline"
	"github.com/pennyplot/pennyplot/internal/render"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Store and retrieve series in the local database",
	Long: `Commands for accumulating series in the local database so charts can be
drawn without re-piping the raw numbers every time.

The database lives at ~/.pennyplot/pennyplot.db by default; override with
--db, PENNYPLOT_DB_PATH, or db_path in config.json.`,
}

// ─── data import ──────────────────────────────────────────────────────────────

var importTitle string

var dataImportCmd = &cobra.Command{
	Use:   "import <SERIES_ID>",
	Short: "Read JSONL points from stdin and store them under an ID",
	Long: `Reads JSONL points from stdin and stores them as a named series.
Importing to an existing ID overwrites it. IDs are case-insensitive.`,
	Example: `  pennyplot demo data | pennyplot data import demo
  cat groceries.jsonl | pennyplot data import groceries --title "Groceries 2026"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireID(args)
		if err != nil {
			return err
		}
		if pipeline.IsTTY() {
			return fmt.Errorf("no input on stdin\n\n  Pipe JSONL points in, e.g.: pennyplot demo data | pennyplot data import %s", id)
		}
		title, pts, err := pipeline.ReadPoints(os.Stdin)
		if err != nil {
			return err
		}
		if importTitle != "" {
			title = importTitle
		}

		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.PutSeries(model.Series{ID: id, Title: title, Points: pts}); err != nil {
			return fmt.Errorf("storing %s: %w", id, err)
		}
		if !deps.Config.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "stored %s: %d points\n", id, len(pts))
		}
		return nil
	},
}

// ─── data get ─────────────────────────────────────────────────────────────────

var dataGetCmd = &cobra.Command{
	Use:   "get <SERIES_ID>",
	Short: "Read a stored series",
	Long: `Reads a stored series and writes it in the requested format. The jsonl
format feeds straight into the chart commands.`,
	Example: `  pennyplot data get groceries --format jsonl | pennyplot chart bar
  pennyplot data get groceries --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireID(args)
		if err != nil {
			return err
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		series, ok, err := st.GetSeries(id)
		if err != nil {
			return fmt.Errorf("reading %s: %w", id, err)
		}
		if !ok {
			return fmt.Errorf("no stored series %q\n\n  Use: pennyplot data import %s < points.jsonl", id, id)
		}

		format := resolveFormat(deps.Config.Format)
		if format == render.FormatTerm || format == render.FormatJSONL {
			// Terminal default for raw series is the pipeline format, so
			// `data get X | chart bar` works without flags.
			return pipeline.WriteJSONL(cmd.OutOrStdout(), series)
		}
		result := buildResult(model.KindSeries, "data get "+id, series, len(series.Points), nil)
		return render.RenderTo(globalFlags.Out, result, format)
	},
}

// ─── data list ────────────────────────────────────────────────────────────────

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored series",
	Example: `  pennyplot data list
  pennyplot data list --format csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		infos, err := st.ListSeries()
		if err != nil {
			return fmt.Errorf("reading store: %w", err)
		}
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No series in local database.")
			fmt.Fprintln(cmd.OutOrStdout(), "  Use: pennyplot data import <ID> < points.jsonl")
			return nil
		}

		printSimpleTable(cmd.OutOrStdout(), []string{"ID", "TITLE", "POINTS", "SAVED AT"}, func(add func(...string)) {
			for _, in := range infos {
				title := in.Title
				if len(title) > 40 {
					title = title[:37] + "..."
				}
				add(in.ID, title, fmt.Sprintf("%d", in.Points), in.SavedAt.Format("2006-01-02 15:04"))
			}
		})
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d series  •  %s\n", len(infos), st.Path())
		return nil
	},
}

// ─── data rm ──────────────────────────────────────────────────────────────────

var dataRmCmd = &cobra.Command{
	Use:     "rm <SERIES_ID>",
	Short:   "Delete a stored series",
	Example: `  pennyplot data rm old-demo`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := requireID(args)
		if err != nil {
			return err
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteSeries(id); err != nil {
			return fmt.Errorf("deleting %s: %w", id, err)
		}
		if !deps.Config.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
		}
		return nil
	},
}

// ─── data stats ───────────────────────────────────────────────────────────────

var dataStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show database bucket statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Stats()
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		printSimpleTable(cmd.OutOrStdout(), []string{"BUCKET", "KEYS"}, func(add func(...string)) {
			for _, bs := range stats {
				add(bs.Bucket, fmt.Sprintf("%d", bs.Entries))
			}
		})
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", st.Path())
		return nil
	},
}

// ─── data clear ───────────────────────────────────────────────────────────────

var clearBucket string

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete stored data",
	Long: `Deletes all stored series and categories. Use --bucket to clear only one
bucket. There is no undo.`,
	Example: `  pennyplot data clear
  pennyplot data clear --bucket categories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.OpenStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Clear(clearBucket); err != nil {
			return err
		}
		if !deps.Config.Quiet {
			if clearBucket == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "cleared all buckets")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", clearBucket)
			}
		}
		return nil
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataImportCmd)
	dataCmd.AddCommand(dataGetCmd)
	dataCmd.AddCommand(dataListCmd)
	dataCmd.AddCommand(dataRmCmd)
	dataCmd.AddCommand(dataStatsCmd)
	dataCmd.AddCommand(dataClearCmd)

	dataImportCmd.Flags().StringVar(&importTitle, "title", "",
		"series title (default: title carried in the input, if any)")
	dataClearCmd.Flags().StringVar(&clearBucket, "bucket", "",
		"clear only this bucket: series|categories (default: all)")
}
