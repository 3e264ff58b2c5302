package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to a temp dir for the duration of the test so that
// config.json lookups never hit the developer's working tree.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvFormat, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != DefaultFormat {
		t.Errorf("Format = %q, want %q", cfg.Format, DefaultFormat)
	}
	if len(cfg.Palette) == 0 {
		t.Error("expected default palette")
	}
	if cfg.DBPath == "" {
		t.Error("expected a default DB path")
	}
	if filepath.Base(cfg.DBPath) != "pennyplot.db" {
		t.Errorf("default DB file = %q, want pennyplot.db", filepath.Base(cfg.DBPath))
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := chdir(t)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvFormat, "")

	body := `{"default_format":"json","width":120,"db_path":"/tmp/pp.db","palette":["#112233"]}`
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Width != 120 {
		t.Errorf("Width = %d, want 120", cfg.Width)
	}
	if cfg.DBPath != "/tmp/pp.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.ConfigPath == "" {
		t.Error("ConfigPath should record the loaded file")
	}
	if got := cfg.Palette.At(0); got != "#112233" {
		t.Errorf("Palette.At(0) = %q", got)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := chdir(t)
	body := `{"default_format":"csv","db_path":"/from/file.db"}`
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvFormat, "svg")
	t.Setenv(EnvDBPath, "/from/env.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg (env wins over file)", cfg.Format)
	}
	if cfg.DBPath != "/from/env.db" {
		t.Errorf("DBPath = %q, want env value", cfg.DBPath)
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	chdir(t)
	t.Setenv(EnvDBPath, "/from/env.db")

	cfg, err := Load("/from/flag.db")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/from/flag.db" {
		t.Errorf("DBPath = %q, want flag value", cfg.DBPath)
	}
}

func TestValidatePalette(t *testing.T) {
	cfg := &Config{Palette: []string{"#abcdef", "#123456"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid palette rejected: %v", err)
	}
	cfg.Palette = append(cfg.Palette, "red")
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-hex palette entry")
	}
	cfg.Palette = []string{"#12345g"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bad hex digits")
	}
}

func TestWriteTemplate(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, DefaultConfigFile)
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	if err := WriteTemplate(path); err == nil {
		t.Error("expected refusal to overwrite existing config")
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load after template: %v", err)
	}
	if cfg.Width != 80 {
		t.Errorf("Width from template = %d, want 80", cfg.Width)
	}
}
