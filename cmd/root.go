// Package cmd implements the pennyplot CLI command tree.
// This file defines the root command and registers all global persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/app"
	"github.com/pennyplot/pennyplot/internal/config"
)

// globalFlags holds the parsed values of all persistent (global) flags.
// Commands read from this struct via the deps they receive.
var globalFlags struct {
	Format  string
	Out     string
	Width   int
	DB      string
	Quiet   bool
	Verbose bool
}

// rootCmd is the base command. Running `pennyplot` with no subcommand
// prints help.
var rootCmd = &cobra.Command{
	Use:   "pennyplot",
	Short: "pennyplot — chart geometry and terminal charts for spending data",
	Long: `pennyplot turns streams of labeled spending amounts into chart geometry
and renders it: terminal charts, SVG, tables, or raw geometry as JSON.

Quick start:
  pennyplot demo data | pennyplot chart bar        # bars from sample data
  pennyplot demo dashboard                          # everything at once
  pennyplot data import rent < expenses.jsonl       # store a series
  pennyplot data get rent --format jsonl | pennyplot chart spark`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildDeps resolves config and constructs the dependency container.
// Called at the start of each command's RunE.
func buildDeps() (*app.Deps, error) {
	cfg, err := config.Load(globalFlags.DB)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply CLI flag overrides
	cfg.Quiet = globalFlags.Quiet
	cfg.Verbose = globalFlags.Verbose

	if globalFlags.Format != "" {
		cfg.Format = globalFlags.Format
	}
	if globalFlags.Width > 0 {
		cfg.Width = globalFlags.Width
	}

	return app.New(cfg), nil
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&globalFlags.Format, "format", "",
		"output format: term|table|json|jsonl|csv|tsv|md|svg (default: term)")
	pf.StringVar(&globalFlags.Out, "out", "",
		"write output to file instead of stdout")
	pf.IntVar(&globalFlags.Width, "width", 0,
		"chart width in characters (default: auto-detect from $COLUMNS)")
	pf.StringVar(&globalFlags.DB, "db", "",
		"database path (overrides env PENNYPLOT_DB_PATH and config.json)")
	pf.BoolVar(&globalFlags.Quiet, "quiet", false,
		"suppress all non-error output")
	pf.BoolVar(&globalFlags.Verbose, "verbose", false,
		"show extra detail after output")
}
