// Package transform implements stateless operators that take a slice of
// Points and return a new slice. Each operator is a pure function; no
// side effects, no I/O. Labels travel with their values.
package transform

import (
	"fmt"
	"math"

	"github.com/pennyplot/pennyplot/internal/model"
)

// ─── Percent Change ───────────────────────────────────────────────────────────

// PctChange computes (v[t] - v[t-period]) / |v[t-period]| * 100.
// Leading points that have no prior period are dropped.
// A zero prior value yields NaN for that point.
func PctChange(pts []model.Point, period int) ([]model.Point, error) {
	if period < 1 {
		return nil, fmt.Errorf("pct-change: period must be >= 1, got %d", period)
	}
	if len(pts) <= period {
		return nil, fmt.Errorf("pct-change: need more than %d points, got %d", period, len(pts))
	}
	out := make([]model.Point, 0, len(pts)-period)
	for i := period; i < len(pts); i++ {
		curr := pts[i].Value
		prev := pts[i-period].Value
		var val float64
		if math.IsNaN(curr) || math.IsNaN(prev) || prev == 0 {
			val = math.NaN()
		} else {
			val = (curr - prev) / math.Abs(prev) * 100
		}
		p := pts[i]
		p.Value = val
		out = append(out, p)
	}
	return out, nil
}

// ─── Difference ───────────────────────────────────────────────────────────────

// Diff computes the n-th order difference. order=1: v[t]-v[t-1],
// order=2: diff of diff.
func Diff(pts []model.Point, order int) ([]model.Point, error) {
	if order < 1 || order > 2 {
		return nil, fmt.Errorf("diff: order must be 1 or 2, got %d", order)
	}
	result := pts
	var err error
	for i := 0; i < order; i++ {
		result, err = diffOnce(result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func diffOnce(pts []model.Point) ([]model.Point, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("diff: need at least 2 points, got %d", len(pts))
	}
	out := make([]model.Point, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		var val float64
		if math.IsNaN(pts[i].Value) || math.IsNaN(pts[i-1].Value) {
			val = math.NaN()
		} else {
			val = pts[i].Value - pts[i-1].Value
		}
		p := pts[i]
		p.Value = val
		out = append(out, p)
	}
	return out, nil
}

// ─── Rolling Mean ─────────────────────────────────────────────────────────────

// Roll computes a trailing rolling mean over a window of the given size.
// Points before the window fills are dropped, so the output has
// len(pts)-window+1 entries. NaN inside a window makes that mean NaN.
func Roll(pts []model.Point, window int) ([]model.Point, error) {
	if window < 2 {
		return nil, fmt.Errorf("roll: window must be >= 2, got %d", window)
	}
	if len(pts) < window {
		return nil, fmt.Errorf("roll: need at least %d points, got %d", window, len(pts))
	}
	out := make([]model.Point, 0, len(pts)-window+1)
	for i := window - 1; i < len(pts); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += pts[j].Value
		}
		p := pts[i]
		p.Value = sum / float64(window)
		out = append(out, p)
	}
	return out, nil
}

// ─── Cumulative Sum ───────────────────────────────────────────────────────────

// CumSum computes the running total. NaN values are skipped (running
// total carries forward) and reported as warnings.
func CumSum(pts []model.Point) ([]model.Point, []string) {
	out := make([]model.Point, len(pts))
	var warnings []string
	total := 0.0
	for i, p := range pts {
		if math.IsNaN(p.Value) {
			warnings = append(warnings, fmt.Sprintf("%s: NaN skipped in running total", p.Label))
		} else {
			total += p.Value
		}
		p.Value = total
		out[i] = p
	}
	return out, warnings
}

// ─── Normalize ────────────────────────────────────────────────────────────────

// Index rescales the series so the first point equals base (typically 100).
// A zero or NaN first value is an error since there is nothing to index to.
func Index(pts []model.Point, base float64) ([]model.Point, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("index: empty series")
	}
	first := pts[0].Value
	if first == 0 || math.IsNaN(first) {
		return nil, fmt.Errorf("index: first value %g cannot anchor an index", first)
	}
	out := make([]model.Point, len(pts))
	for i, p := range pts {
		p.Value = p.Value / first * base
		out[i] = p
	}
	return out, nil
}
