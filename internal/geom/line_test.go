package geom_test

import (
	"math"
	"testing"

	"github.com/pennyplot/pennyplot/internal/geom"
)

func polyOf(values []float64, w, h float64) geom.Polyline {
	return geom.PolylineOf(pts(interleave(values)...), geom.PolylineOptions{Width: w, Height: h})
}

// interleave turns values into ("", v) label/value pairs for pts.
func interleave(values []float64) []interface{} {
	var out []interface{}
	for _, v := range values {
		out = append(out, "", v)
	}
	return out
}

func TestPolylineContinuity(t *testing.T) {
	pl := polyOf([]float64{3, 9, 1, 14, 7, 7, 2}, 300, 120)
	if len(pl.Segments) != 6 {
		t.Fatalf("got %d segments, want 6", len(pl.Segments))
	}
	for i := 0; i < len(pl.Segments)-1; i++ {
		cur, next := pl.Segments[i], pl.Segments[i+1]
		if cur.X2 != next.X || cur.Y2 != next.Y {
			t.Errorf("segment %d end (%v,%v) != segment %d start (%v,%v)",
				i, cur.X2, cur.Y2, i+1, next.X, next.Y)
		}
	}
}

func TestPolylineInvertedY(t *testing.T) {
	pl := polyOf([]float64{0, 10}, 100, 50)
	if pl.Points[1].Y >= pl.Points[0].Y {
		t.Errorf("larger value should sit higher on screen: y %v >= %v",
			pl.Points[1].Y, pl.Points[0].Y)
	}
	if !almostEqual(pl.Points[0].Y, 50) {
		t.Errorf("minimum value y = %v, want bottom of box (50)", pl.Points[0].Y)
	}
	if !almostEqual(pl.Points[1].Y, 0) {
		t.Errorf("maximum value y = %v, want top of box (0)", pl.Points[1].Y)
	}
}

// Flat series: range falls back to 1, every point renders at the same y,
// every segment is horizontal with length equal to the point spacing.
func TestPolylineFlatSeries(t *testing.T) {
	pl := polyOf([]float64{5, 5, 5, 5}, 300, 100)
	if pl.Range.Range != 1 {
		t.Fatalf("flat series range = %v, want fallback 1", pl.Range.Range)
	}
	for i, p := range pl.Points {
		if p.Y != pl.Points[0].Y {
			t.Errorf("point %d y = %v, want constant %v", i, p.Y, pl.Points[0].Y)
		}
	}
	if !almostEqual(pl.Spacing, 100) {
		t.Errorf("spacing = %v, want 300/3", pl.Spacing)
	}
	for i, s := range pl.Segments {
		if !almostEqual(s.Length, pl.Spacing) {
			t.Errorf("segment %d length = %v, want spacing %v", i, s.Length, pl.Spacing)
		}
		if s.Angle != 0 {
			t.Errorf("segment %d angle = %v, want 0", i, s.Angle)
		}
	}
}

func TestPolylineDegenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		pl := polyOf(nil, 100, 100)
		if len(pl.Segments) != 0 || len(pl.Points) != 0 {
			t.Errorf("empty series: %d points %d segments, want 0/0", len(pl.Points), len(pl.Segments))
		}
	})
	t.Run("single point", func(t *testing.T) {
		pl := polyOf([]float64{8}, 100, 100)
		if len(pl.Segments) != 0 {
			t.Errorf("single point produced %d segments, want 0", len(pl.Segments))
		}
		// spacing defaults to the full width instead of dividing by zero
		if !almostEqual(pl.Spacing, 100) {
			t.Errorf("single point spacing = %v, want full width 100", pl.Spacing)
		}
		if math.IsNaN(pl.Points[0].Y) {
			t.Error("single point y is NaN")
		}
	})
}

func TestPolylineAngle(t *testing.T) {
	// Two points, horizontal spacing 100, rising by the full height 100.
	// dy is -100 in screen coordinates, so the angle is -45°.
	pl := polyOf([]float64{0, 1}, 100, 100)
	s := pl.Segments[0]
	if !almostEqual(s.Angle, -45) {
		t.Errorf("angle = %v, want -45", s.Angle)
	}
	if !almostEqual(s.Length, 100*math.Sqrt2) {
		t.Errorf("length = %v, want 100*sqrt2", s.Length)
	}
}

func TestPolylineAnchorIsStartPoint(t *testing.T) {
	pl := polyOf([]float64{2, 6, 4}, 200, 80)
	for i, s := range pl.Segments {
		p := pl.Points[i]
		if s.X != p.X || s.Y != p.Y {
			t.Errorf("segment %d anchored at (%v,%v), want start point (%v,%v)",
				i, s.X, s.Y, p.X, p.Y)
		}
	}
}
