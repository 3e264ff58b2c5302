// Package geom turns labeled numeric series into chart geometry: bar heights,
// polyline segments, pie angles, progress arcs and breakdown proportions.
//
// Every function here is pure and allocation-light: no I/O, no state, no
// clock. Degenerate input (empty series, all-equal values, zero totals) is
// absorbed with safe defaults rather than errors — a chart renderer has no
// good way to surface a mid-frame failure, so the contract is "always render
// something", at worst a flat or empty chart.
package geom

// Headroom is the factor applied to a series maximum when the caller does
// not supply an explicit one, so the tallest element never touches the top
// of its container.
const Headroom = 1.1

// Denominator returns the scaling reference for a series of magnitudes.
// If explicitMax is positive it wins unchanged. Otherwise the series maximum
// is taken with 10% headroom. An empty or all-non-positive series yields 1,
// so dividing by the result is always safe.
func Denominator(values []float64, explicitMax float64) float64 {
	if explicitMax > 0 {
		return explicitMax
	}
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return 1
	}
	return max * Headroom
}

// Proportion returns v/max, or 0 when max is not positive.
// The result is not clamped: v larger than max yields a proportion above 1,
// which is the caller's responsibility (an explicitly under-specified max is
// a legitimate way to let a bar overflow its container).
func Proportion(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

// NormalizedRange describes the span of a series.
// Range is never zero: a flat or empty series gets the sentinel 1 so that
// (v-Min)/Range stays finite.
type NormalizedRange struct {
	Min   float64
	Max   float64
	Range float64
}

// RangeOf derives the normalized range of values.
// Empty input yields {0, 0, 1}.
func RangeOf(values []float64) NormalizedRange {
	if len(values) == 0 {
		return NormalizedRange{Range: 1}
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	r := max - min
	if r == 0 {
		r = 1
	}
	return NormalizedRange{Min: min, Max: max, Range: r}
}

// Clamp bounds v to [lo, hi]. Clamping is idempotent.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
