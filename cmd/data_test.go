package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/store"
)

func TestDataStatsTable(t *testing.T) {
	origDB := globalFlags.DB
	defer func() { globalFlags.DB = origDB }()
	globalFlags.DB = filepath.Join(t.TempDir(), "stats.db")

	st, err := store.Open(globalFlags.DB)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.PutSeries(model.Series{
		ID:     "rent",
		Title:  "Rent",
		Points: []model.Point{{Label: "Jan", Value: 1200}},
	}); err != nil {
		t.Fatalf("seed series: %v", err)
	}
	st.Close()

	var buf strings.Builder
	dataStatsCmd.SetOut(&buf)
	defer dataStatsCmd.SetOut(nil)

	if err := dataStatsCmd.RunE(dataStatsCmd, nil); err != nil {
		t.Fatalf("data stats: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"BUCKET", "KEYS", "series", "1"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats table missing %q:\n%s", want, out)
		}
	}
}
