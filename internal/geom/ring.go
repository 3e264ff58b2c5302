package geom

import "math"

// Ring is the computed geometry of a radial progress indicator.
// Stroke-based targets draw an arc of ArcLength out of Circumference;
// border-box targets color Edges, one per crossed 25% boundary, each
// rotated in quarter-turn steps.
type Ring struct {
	Percent       float64  `json:"percent"`
	Size          float64  `json:"size"`
	Stroke        float64  `json:"stroke"`
	Radius        float64  `json:"radius"`
	Circumference float64  `json:"circumference"`
	ArcLength     float64  `json:"arc_length"`
	Edges         EdgeMask `json:"edges"`
	Hole          Hole     `json:"hole"`
}

// ClampPercent bounds a progress value to [0, 100].
func ClampPercent(p float64) float64 {
	return Clamp(p, 0, 100)
}

// Progress computes the ring for a 0–100 value inside a size×size box with
// the given stroke width. Out-of-range input is clamped, never rejected.
// The center content (label or icon) is the painter's business and is laid
// out independently of the ring.
func Progress(percent, size, stroke float64) Ring {
	p := ClampPercent(percent)
	r := (size - stroke) / 2
	if r < 0 {
		r = 0
	}
	c := 2 * math.Pi * r
	return Ring{
		Percent:       p,
		Size:          size,
		Stroke:        stroke,
		Radius:        r,
		Circumference: c,
		ArcLength:     p / 100 * c,
		Edges:         SpanEdges(0, p/100*fullCircle),
		Hole:          DonutHole(size, stroke),
	}
}
