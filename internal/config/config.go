// Package config handles loading and resolving pennyplot configuration.
// Resolution order (first non-empty value wins):
//  1. CLI flags (--db, --format, --width)
//  2. Environment variables (PENNYPLOT_DB_PATH, PENNYPLOT_FORMAT)
//  3. config.json in the current working directory
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pennyplot/pennyplot/internal/geom"
)

const (
	DefaultConfigFile = "config.json"
	DefaultFormat     = "term"
	DefaultWidth      = 0 // 0 = auto-detect from $COLUMNS
	EnvDBPath         = "PENNYPLOT_DB_PATH"
	EnvFormat         = "PENNYPLOT_FORMAT"
)

// File is the on-disk representation of config.json.
type File struct {
	DefaultFormat string   `json:"default_format"`
	Width         int      `json:"width"`
	Palette       []string `json:"palette"`
	DBPath        string   `json:"db_path"`
}

// Config is the fully-resolved runtime configuration.
// All callers use this struct; the File is only read during loading.
type Config struct {
	Format     string
	Width      int
	Palette    geom.Palette
	DBPath     string
	ConfigPath string // path of the config.json that was loaded (empty if none found)

	// Runtime overrides set from CLI flags after Load()
	Quiet   bool
	Verbose bool
}

// Load resolves configuration from all sources.
// flagDB is the value of --db (empty string if not set).
func Load(flagDB string) (*Config, error) {
	cfg := &Config{
		Format:  DefaultFormat,
		Width:   DefaultWidth,
		Palette: geom.Default,
	}

	// Layer 1: config.json (lowest priority)
	if f, path, err := loadFile(); err == nil {
		applyFile(cfg, f, path)
	}

	// Layer 2: environment variables
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}

	// Layer 3: CLI flag (highest priority)
	if flagDB != "" {
		cfg.DBPath = flagDB
	}

	// Set default DB path if still unset
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.DBPath = filepath.Join(home, ".pennyplot", "pennyplot.db")
		}
	}

	return cfg, nil
}

// Validate returns an error when a configured palette entry is not a hex
// color. An empty palette is fine — the built-in default applies.
func (c *Config) Validate() error {
	for i, col := range c.Palette {
		if !validHexColor(col) {
			return fmt.Errorf("palette entry %d: %q is not a #rrggbb color", i, col)
		}
	}
	return nil
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// loadFile attempts to read config.json from the current working directory.
func loadFile() (*File, string, error) {
	path, err := filepath.Abs(DefaultConfigFile)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("config.json not found at %s", path)
		}
		return nil, "", fmt.Errorf("reading config.json: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", fmt.Errorf("parsing config.json: %w", err)
	}
	return &f, path, nil
}

// applyFile copies values from a parsed File into cfg.
func applyFile(cfg *Config, f *File, path string) {
	cfg.ConfigPath = path
	if f.DefaultFormat != "" {
		cfg.Format = f.DefaultFormat
	}
	if f.Width > 0 {
		cfg.Width = f.Width
	}
	if len(f.Palette) > 0 {
		cfg.Palette = geom.Palette(f.Palette)
	}
	if f.DBPath != "" {
		cfg.DBPath = f.DBPath
	}
}

// WriteTemplate writes a starter config.json to path. Refuses to overwrite.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	tmpl := File{
		DefaultFormat: DefaultFormat,
		Width:         80,
		Palette:       []string(geom.Default),
	}
	data, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
