// Package model defines the canonical data types used throughout pennyplot.
// These types are the single source of truth for the labeled series that
// flow through pipelines and the result envelope that every command returns.
package model

import (
	"fmt"
	"strings"
	"time"
)

// ─── Series Types ─────────────────────────────────────────────────────────────

// Point is a single labeled data point in a series.
// Value must be finite; the geometry engines do not validate it and a NaN
// propagates into the computed geometry (garbage in, garbage out — but never
// a panic). Secondary carries an optional stacked companion value, e.g. a
// "needs" amount stacked under a "wants" amount.
type Point struct {
	Label          string  `json:"label"`
	Value          float64 `json:"value"`
	Color          string  `json:"color,omitempty"`
	Secondary      float64 `json:"secondary,omitempty"`
	SecondaryColor string  `json:"secondary_color,omitempty"`
	Icon           string  `json:"icon,omitempty"`
}

// Series bundles an ordered sequence of points under an identifier.
// Order is significant for line and sparkline charts (x-axis order) and
// irrelevant for pie and breakdown charts, which re-derive their own order.
type Series struct {
	ID     string  `json:"series_id"`
	Title  string  `json:"title,omitempty"`
	Points []Point `json:"points"`
}

// Values returns the point values in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// ─── Category / Breakdown Types ───────────────────────────────────────────────

// Trend is the tri-state direction of a category between two periods.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// ParseTrend maps a free-form string to a Trend, defaulting to stable.
func ParseTrend(s string) (Trend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "rising", "+":
		return TrendUp, nil
	case "down", "falling", "-":
		return TrendDown, nil
	case "", "stable", "flat", "=":
		return TrendStable, nil
	}
	return TrendStable, fmt.Errorf("unknown trend %q (want up|down|stable)", s)
}

// CategoryItem is one row of a category breakdown: an amount, an optional
// budget ceiling (0 = no budget set) and the period-over-period trend.
type CategoryItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Budget float64 `json:"budget,omitempty"`
	Trend  Trend   `json:"trend,omitempty"`
	Color  string  `json:"color,omitempty"`
	Icon   string  `json:"icon,omitempty"`
}

// ─── Result Envelope ─────────────────────────────────────────────────────────

// ResultStats carries timing and size metadata for a command result.
type ResultStats struct {
	DurationMs int64 `json:"duration_ms"`
	Items      int   `json:"items"`
}

// Result is the uniform envelope returned by every command.
// The Data field holds the typed payload; Kind identifies what is in it.
// Renderers switch on Kind to format output appropriately.
type Result struct {
	Kind        string      `json:"kind"`
	GeneratedAt time.Time   `json:"generated_at"`
	Command     string      `json:"command"`
	Data        interface{} `json:"data"`
	Warnings    []string    `json:"warnings,omitempty"`
	Stats       ResultStats `json:"stats"`
}

// Kind constants for Result.Kind.
const (
	KindSeries    = "series"
	KindBarChart  = "bar_chart"
	KindLineChart = "line_chart"
	KindPieChart  = "pie_chart"
	KindRing      = "progress_ring"
	KindBreakdown = "breakdown"
	KindTable     = "table"
)
