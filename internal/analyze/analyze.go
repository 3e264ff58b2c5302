// Package analyze computes statistical summaries and trend fits over
// slices of Points. All functions are pure; no I/O.
package analyze

import (
	"fmt"
	"math"
	"sort"

	"github.com/pennyplot/pennyplot/internal/model"
)

// ─── Summary ──────────────────────────────────────────────────────────────────

// Summary holds descriptive statistics for a point series.
type Summary struct {
	SeriesID   string  `json:"series_id"`
	Count      int     `json:"count"`       // total points
	Missing    int     `json:"missing"`     // NaN count
	MissingPct float64 `json:"missing_pct"` // percent missing
	Total      float64 `json:"total"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Min        float64 `json:"min"`
	P25        float64 `json:"p25"`
	Median     float64 `json:"median"`
	P75        float64 `json:"p75"`
	Max        float64 `json:"max"`
	First      float64 `json:"first"`      // first non-NaN value
	Last       float64 `json:"last"`       // last non-NaN value
	Change     float64 `json:"change"`     // Last - First
	ChangePct  float64 `json:"change_pct"` // (Last-First)/|First| * 100
	MaxLabel   string  `json:"max_label,omitempty"`
	MinLabel   string  `json:"min_label,omitempty"`
}

// Summarize computes descriptive statistics over pts.
// NaN values are excluded from all numeric computations but counted.
func Summarize(seriesID string, pts []model.Point) Summary {
	s := Summary{SeriesID: seriesID, Count: len(pts)}
	if len(pts) == 0 {
		return s
	}

	var vals []float64
	for _, p := range pts {
		if math.IsNaN(p.Value) {
			s.Missing++
		} else {
			vals = append(vals, p.Value)
		}
	}
	s.MissingPct = float64(s.Missing) / float64(s.Count) * 100
	if len(vals) == 0 {
		nan := math.NaN()
		s.Total, s.Mean, s.Std = nan, nan, nan
		s.Min, s.Max, s.Median, s.P25, s.P75 = nan, nan, nan, nan, nan
		s.First, s.Last, s.Change, s.ChangePct = nan, nan, nan, nan
		return s
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Total = sumF(vals)
	s.Mean = s.Total / float64(len(vals))
	s.Std = stddevF(vals, s.Mean)
	s.Median = percentile(sorted, 50)
	s.P25 = percentile(sorted, 25)
	s.P75 = percentile(sorted, 75)

	// Which labels carry the extremes: useful when points are categories.
	for _, p := range pts {
		switch p.Value {
		case s.Max:
			if s.MaxLabel == "" {
				s.MaxLabel = p.Label
			}
		case s.Min:
			if s.MinLabel == "" {
				s.MinLabel = p.Label
			}
		}
	}

	// First and last non-NaN values in original order
	for _, p := range pts {
		if !math.IsNaN(p.Value) {
			s.First = p.Value
			break
		}
	}
	for i := len(pts) - 1; i >= 0; i-- {
		if !math.IsNaN(pts[i].Value) {
			s.Last = pts[i].Value
			break
		}
	}
	s.Change = s.Last - s.First
	if s.First != 0 {
		s.ChangePct = s.Change / math.Abs(s.First) * 100
	} else {
		s.ChangePct = math.NaN()
	}

	return s
}

// ─── Trend ────────────────────────────────────────────────────────────────────

// TrendMethod selects the regression algorithm.
type TrendMethod string

const (
	TrendLinear   TrendMethod = "linear"
	TrendTheilSen TrendMethod = "theil-sen"
)

// TrendFit holds the output of a trend analysis.
type TrendFit struct {
	SeriesID  string      `json:"series_id"`
	Method    TrendMethod `json:"method"`
	Slope     float64     `json:"slope"` // value units per point
	Intercept float64     `json:"intercept"`
	R2        float64     `json:"r2"`
	Direction model.Trend `json:"direction"`
}

// Fit fits a trend line to the points. X is the point index, so the slope
// reads as units per point (per day for daily data, per month for monthly).
// NaN points are excluded. The flat threshold is relative to the series
// mean, so a $5 drift on a $2000 series still counts as flat.
func Fit(seriesID string, pts []model.Point, method TrendMethod) (TrendFit, error) {
	tf := TrendFit{SeriesID: seriesID, Method: method}

	var xy []point
	for i, p := range pts {
		if math.IsNaN(p.Value) {
			continue
		}
		xy = append(xy, point{float64(i), p.Value})
	}
	if len(xy) < 2 {
		return tf, fmt.Errorf("trend: need at least 2 non-NaN points, got %d", len(xy))
	}

	switch method {
	case TrendTheilSen:
		tf.Slope = theilSenSlope(xy)
		xMean := meanPts(xy, func(p point) float64 { return p.x })
		yMean := meanPts(xy, func(p point) float64 { return p.y })
		tf.Intercept = yMean - tf.Slope*xMean
	default: // linear OLS
		tf.Slope, tf.Intercept = olsRegress(xy)
	}

	tf.R2 = r2(xy, tf.Slope, tf.Intercept)

	yMean := meanPts(xy, func(p point) float64 { return p.y })
	threshold := math.Abs(yMean) * 0.001
	switch {
	case tf.Slope > threshold:
		tf.Direction = model.TrendUp
	case tf.Slope < -threshold:
		tf.Direction = model.TrendDown
	default:
		tf.Direction = model.TrendStable
	}
	return tf, nil
}

// ─── Math helpers ─────────────────────────────────────────────────────────────

func sumF(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s
}

func stddevF(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var sq float64
	for _, v := range vals {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(vals)-1))
}

func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	idx := p / 100 * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

type point struct{ x, y float64 }

func olsRegress(pts []point) (slope, intercept float64) {
	n := float64(len(pts))
	var xSum, ySum, xySum, x2Sum float64
	for _, p := range pts {
		xSum += p.x
		ySum += p.y
		xySum += p.x * p.y
		x2Sum += p.x * p.x
	}
	denom := n*x2Sum - xSum*xSum
	if denom == 0 {
		return 0, ySum / n
	}
	slope = (n*xySum - xSum*ySum) / denom
	intercept = (ySum - slope*xSum) / n
	return
}

func theilSenSlope(pts []point) float64 {
	var slopes []float64
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			dx := pts[j].x - pts[i].x
			if dx == 0 {
				continue
			}
			slopes = append(slopes, (pts[j].y-pts[i].y)/dx)
		}
	}
	if len(slopes) == 0 {
		return 0
	}
	sort.Float64s(slopes)
	return percentile(slopes, 50)
}

func r2(pts []point, slope, intercept float64) float64 {
	var yMean float64
	for _, p := range pts {
		yMean += p.y
	}
	yMean /= float64(len(pts))

	var ssTot, ssRes float64
	for _, p := range pts {
		pred := slope*p.x + intercept
		ssTot += (p.y - yMean) * (p.y - yMean)
		ssRes += (p.y - pred) * (p.y - pred)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}

func meanPts(pts []point, f func(point) float64) float64 {
	var s float64
	for _, p := range pts {
		s += f(p)
	}
	return s / float64(len(pts))
}
