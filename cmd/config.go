package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennyplot/pennyplot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pennyplot configuration",
	Long: `Configuration is resolved in layers, highest priority first:

  1. CLI flags            (--db, --format, --width)
  2. Environment          (PENNYPLOT_DB_PATH, PENNYPLOT_FORMAT)
  3. config.json          (current working directory)
  4. Built-in defaults`,
}

// ─── config init ──────────────────────────────────────────────────────────────

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config.json in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteTemplate(config.DefaultConfigFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.DefaultConfigFile)
		return nil
	},
}

// ─── config show ──────────────────────────────────────────────────────────────

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Shows the configuration after all layers are resolved, plus where the
config file was found (if any).`,
	Example: `  pennyplot config show
  pennyplot config show --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		cfg := deps.Config
		w := cmd.OutOrStdout()

		if globalFlags.Format == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"format":      cfg.Format,
				"width":       cfg.Width,
				"palette":     cfg.Palette,
				"db_path":     cfg.DBPath,
				"config_path": cfg.ConfigPath,
			})
		}

		fmt.Fprintf(w, "format   %s\n", cfg.Format)
		fmt.Fprintf(w, "width    %d\n", cfg.Width)
		fmt.Fprintf(w, "palette  %d colors\n", len(cfg.Palette))
		fmt.Fprintf(w, "db       %s\n", cfg.DBPath)
		if cfg.ConfigPath != "" {
			fmt.Fprintf(w, "config   %s\n", cfg.ConfigPath)
		} else {
			fmt.Fprintf(w, "config   (none found, using defaults)\n")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
