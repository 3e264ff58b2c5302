package geom

import (
	"math"

	"github.com/pennyplot/pennyplot/internal/model"
)

// PolylineOptions sets the pixel box a polyline is fitted into.
type PolylineOptions struct {
	Width  float64
	Height float64
	// Stroke is the rendered segment thickness. Kept with the geometry so
	// box-model painters can anchor rectangles without re-deriving it.
	Stroke float64
}

// PolyPoint is a data point mapped into pixel space.
// Y grows downward (screen coordinates): larger values sit higher on screen
// and therefore have smaller Y.
type PolyPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// LineSegment connects two adjacent polyline points for targets that cannot
// draw arbitrary lines: a rectangle of the given Length anchored at (X, Y)
// and rotated by Angle degrees around its left-center point. Rotating around
// the start rather than the center is what keeps consecutive segments
// visually connected.
type LineSegment struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
}

// Polyline is the computed line chart geometry.
type Polyline struct {
	Points   []PolyPoint     `json:"points"`
	Segments []LineSegment   `json:"segments,omitempty"`
	Range    NormalizedRange `json:"range"`
	Spacing  float64         `json:"spacing"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Stroke   float64         `json:"stroke,omitempty"`
}

// PolylineOf fits points into the box described by opts.
//
// Horizontal spacing is width/(n-1); a single point takes the full width as
// its spacing so nothing divides by zero. A flat series keeps Range's
// sentinel of 1 and renders at a constant Y with 0° segments. Series of
// fewer than two points produce no segments.
//
// Continuity guarantee: segment i's (X2, Y2) is exactly segment i+1's (X, Y)
// by construction — end coordinates are taken from the next point, never
// reconstructed from length and angle, so no drift accumulates.
func PolylineOf(points []model.Point, opts PolylineOptions) Polyline {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	nr := RangeOf(values)

	n := len(points)
	div := n - 1
	if div < 1 {
		div = 1
	}
	spacing := opts.Width / float64(div)

	pl := Polyline{
		Points:  make([]PolyPoint, n),
		Range:   nr,
		Spacing: spacing,
		Width:   opts.Width,
		Height:  opts.Height,
		Stroke:  opts.Stroke,
	}
	for i, p := range points {
		pl.Points[i] = PolyPoint{
			X:     float64(i) * spacing,
			Y:     opts.Height - ((p.Value-nr.Min)/nr.Range)*opts.Height,
			Value: p.Value,
			Label: p.Label,
		}
	}
	if n < 2 {
		return pl
	}

	pl.Segments = make([]LineSegment, n-1)
	for i := 0; i < n-1; i++ {
		var (
			a  = pl.Points[i]
			b  = pl.Points[i+1]
			dx = b.X - a.X
			dy = b.Y - a.Y
		)
		pl.Segments[i] = LineSegment{
			X:      a.X,
			Y:      a.Y,
			X2:     b.X,
			Y2:     b.Y,
			Length: math.Sqrt(dx*dx + dy*dy),
			Angle:  math.Atan2(dy, dx) * rad2deg,
		}
	}
	return pl
}

const rad2deg = halfCircle / math.Pi
