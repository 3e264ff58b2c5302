package analyze

import (
	"math"
	"testing"

	"github.com/pennyplot/pennyplot/internal/model"
)

func pts(vals ...float64) []model.Point {
	out := make([]model.Point, len(vals))
	for i, v := range vals {
		out[i] = model.Point{Label: string(rune('a' + i)), Value: v}
	}
	return out
}

func almostEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) < 1e-9
}

// ─── Summarize ────────────────────────────────────────────────────────────────

func TestSummarizeBasics(t *testing.T) {
	s := Summarize("spend", pts(10, 20, 30, 40))
	if s.Count != 4 || s.Missing != 0 {
		t.Errorf("count/missing: %+v", s)
	}
	if !almostEqual(s.Total, 100) || !almostEqual(s.Mean, 25) {
		t.Errorf("total/mean: %+v", s)
	}
	if !almostEqual(s.Min, 10) || !almostEqual(s.Max, 40) {
		t.Errorf("min/max: %+v", s)
	}
	if !almostEqual(s.Median, 25) {
		t.Errorf("median = %g, want 25", s.Median)
	}
	if !almostEqual(s.Change, 30) || !almostEqual(s.ChangePct, 300) {
		t.Errorf("change: %+v", s)
	}
	if s.MaxLabel != "d" || s.MinLabel != "a" {
		t.Errorf("extreme labels: max=%q min=%q", s.MaxLabel, s.MinLabel)
	}
}

func TestSummarizeNaN(t *testing.T) {
	s := Summarize("x", pts(math.NaN(), 10, math.NaN(), 30))
	if s.Missing != 2 || !almostEqual(s.MissingPct, 50) {
		t.Errorf("missing: %+v", s)
	}
	if !almostEqual(s.Mean, 20) {
		t.Errorf("mean excludes NaN: %g", s.Mean)
	}
	if !almostEqual(s.First, 10) || !almostEqual(s.Last, 30) {
		t.Errorf("first/last skip NaN: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("x", nil)
	if s.Count != 0 {
		t.Errorf("count = %d", s.Count)
	}
	s = Summarize("x", pts(math.NaN()))
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Min) {
		t.Errorf("all-NaN series should summarize to NaN: %+v", s)
	}
}

// ─── Fit ──────────────────────────────────────────────────────────────────────

func TestFitLinear(t *testing.T) {
	// Perfect line y = 2x + 5
	tf, err := Fit("x", pts(5, 7, 9, 11, 13), TrendLinear)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(tf.Slope, 2) || !almostEqual(tf.Intercept, 5) {
		t.Errorf("slope=%g intercept=%g, want 2 and 5", tf.Slope, tf.Intercept)
	}
	if !almostEqual(tf.R2, 1) {
		t.Errorf("r2 = %g, want 1", tf.R2)
	}
	if tf.Direction != model.TrendUp {
		t.Errorf("direction = %q, want up", tf.Direction)
	}
}

func TestFitTheilSenIgnoresOutlier(t *testing.T) {
	// Slope 1 with one wild outlier. OLS gets dragged; Theil-Sen holds.
	series := pts(1, 2, 3, 4, 100, 6, 7, 8, 9)
	ts, err := Fit("x", series, TrendTheilSen)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ts.Slope-1) > 0.5 {
		t.Errorf("theil-sen slope = %g, want close to 1", ts.Slope)
	}
	ols, err := Fit("x", series, TrendLinear)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ols.Slope-1) < math.Abs(ts.Slope-1) {
		t.Error("outlier should hurt OLS more than Theil-Sen")
	}
}

func TestFitFlatAndErrors(t *testing.T) {
	tf, err := Fit("x", pts(50, 50, 50), TrendLinear)
	if err != nil {
		t.Fatal(err)
	}
	if tf.Direction != model.TrendStable {
		t.Errorf("flat series direction = %q, want stable", tf.Direction)
	}

	if _, err := Fit("x", pts(1), TrendLinear); err == nil {
		t.Error("expected error with a single point")
	}
	if _, err := Fit("x", pts(math.NaN(), math.NaN()), TrendLinear); err == nil {
		t.Error("expected error with only NaN points")
	}
}
