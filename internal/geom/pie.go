package geom

import (
	"math"

	"github.com/pennyplot/pennyplot/internal/model"
)

const (
	fullCircle  = 360.0
	halfCircle  = 180.0
	quarterTurn = 90.0
	deg2rad     = math.Pi / halfCircle
)

// EdgeMask marks which edges of a bordered box a quadrant-approximating
// painter should color. One edge stands in for each 90° quadrant, clockwise
// from twelve o'clock.
type EdgeMask uint8

const (
	EdgeTop EdgeMask = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Has reports whether e contains edge.
func (e EdgeMask) Has(edge EdgeMask) bool { return e&edge != 0 }

// SpanEdges returns the edges for the angular span [start, end) in degrees.
// The quadrant edge for [k*90, (k+1)*90) switches on once the span reaches
// into it. This is a coarse approximation: a span under 90° that sits inside
// one quadrant activates a single edge and renders as an incomplete ring —
// an accepted limitation of border-box painting. Vector targets should use
// the exact angles instead.
func SpanEdges(start, end float64) EdgeMask {
	if end <= start {
		return 0
	}
	var mask EdgeMask
	for k := 0; k < 4; k++ {
		var (
			lo = float64(k) * quarterTurn
			hi = lo + quarterTurn
		)
		if start < hi && end > lo {
			mask |= EdgeTop << k
		}
	}
	return mask
}

// Segment is one angular slice of a pie or donut chart.
// StartAngle and EndAngle are cumulative degrees in [0, 360]; across a
// computed slice sequence they are monotonically non-decreasing, adjacent
// segments share their boundary angle, and the last EndAngle is exactly 360
// when the total is positive.
type Segment struct {
	Label      string   `json:"label"`
	Value      float64  `json:"value"`
	Percentage float64  `json:"percentage"`
	StartAngle float64  `json:"start_angle"`
	EndAngle   float64  `json:"end_angle"`
	Color      string   `json:"color"`
	Edges      EdgeMask `json:"edges"`
}

// Segments partitions the full circle across points in input order — caller
// ordering is meaningful (category order) and never re-sorted here. Colors
// fall back to pal cycled by index (nil pal means Default). A zero or
// negative total yields all-zero percentages and angles, not an error.
func Segments(points []model.Point, pal Palette) []Segment {
	if pal == nil {
		pal = Default
	}
	var total float64
	for _, p := range points {
		total += p.Value
	}

	segs := make([]Segment, len(points))
	var cum float64
	for i, p := range points {
		s := Segment{
			Label: p.Label,
			Value: p.Value,
			Color: p.Color,
		}
		if s.Color == "" {
			s.Color = pal.At(i)
		}
		if total > 0 {
			s.Percentage = p.Value / total * 100
			s.StartAngle = cum / total * fullCircle
			cum += p.Value
			s.EndAngle = cum / total * fullCircle
		}
		s.Edges = SpanEdges(s.StartAngle, s.EndAngle)
		segs[i] = s
	}
	return segs
}

// PieChart bundles segments with the box they are drawn in, so renderers
// get angles and dimensions from one value.
type PieChart struct {
	Segments []Segment `json:"segments"`
	Size     float64   `json:"size"`
	Stroke   float64   `json:"stroke,omitempty"`
	Donut    bool      `json:"donut,omitempty"`
	Hole     Hole      `json:"hole,omitempty"`
}

// PieOf computes the full pie (or donut) geometry for points in a size×size
// box. Stroke only matters in donut mode, where it sets the ring thickness.
func PieOf(points []model.Point, pal Palette, size, stroke float64, donut bool) PieChart {
	pc := PieChart{
		Segments: Segments(points, pal),
		Size:     size,
		Stroke:   stroke,
		Donut:    donut,
	}
	if donut {
		pc.Hole = DonutHole(size, stroke)
	}
	return pc
}

// Hole is the inner cut-out box of a donut chart, centered in the pie's box.
type Hole struct {
	Size   float64 `json:"size"`
	Offset float64 `json:"offset"`
}

// DonutHole computes the hole for a pie of the given box size and ring
// stroke width. A stroke of half the size or more leaves no hole.
func DonutHole(size, stroke float64) Hole {
	inner := size - 2*stroke
	if inner < 0 {
		inner = 0
	}
	return Hole{Size: inner, Offset: stroke}
}

// ArcPoint returns the (x, y) position on a circle of the given radius at
// angle degrees, measured clockwise from twelve o'clock, relative to the
// circle center. Shared by vector renderers so the angle convention lives in
// exactly one place.
func ArcPoint(angle, radius float64) (x, y float64) {
	rad := (angle - quarterTurn) * deg2rad
	return radius * math.Cos(rad), radius * math.Sin(rad)
}
