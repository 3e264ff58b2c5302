package geom_test

import (
	"testing"

	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
)

// pts builds a point slice from alternating (label, value) pairs.
func pts(pairs ...interface{}) []model.Point {
	var out []model.Point
	for i := 0; i < len(pairs)-1; i += 2 {
		out = append(out, model.Point{
			Label: pairs[i].(string),
			Value: pairs[i+1].(float64),
		})
	}
	return out
}

func TestBarsHeights(t *testing.T) {
	layout := geom.Bars(pts("a", 20.0, "b", 40.0), geom.BarOptions{MaxValue: 80, Height: 160})
	if len(layout.Bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(layout.Bars))
	}
	if h := layout.Bars[0].Height; !almostEqual(h, 40) {
		t.Errorf("bar a height = %v, want 40 (20/80 of 160)", h)
	}
	if h := layout.Bars[1].Height; !almostEqual(h, 80) {
		t.Errorf("bar b height = %v, want 80", h)
	}
	if p := layout.Bars[1].Percent; !almostEqual(p, 50) {
		t.Errorf("bar b percent = %v, want 50", p)
	}
}

func TestBarsMonotonic(t *testing.T) {
	layout := geom.Bars(pts("low", 10.0, "high", 90.0), geom.BarOptions{Height: 100})
	if layout.Bars[1].Height < layout.Bars[0].Height {
		t.Errorf("larger value produced smaller bar: %v < %v",
			layout.Bars[1].Height, layout.Bars[0].Height)
	}
}

// An explicit max below the data maximum must overflow, not clamp. Callers
// rely on this to let a blown budget visually burst its container.
func TestBarsExplicitMaxBelowDataNotClamped(t *testing.T) {
	layout := geom.Bars(pts("over", 120.0), geom.BarOptions{MaxValue: 100, Height: 200})
	b := layout.Bars[0]
	if b.Percent <= 100 {
		t.Errorf("percent = %v, want >100 for value above explicit max", b.Percent)
	}
	if !almostEqual(b.Height, 240) {
		t.Errorf("height = %v, want 240 (120%% of the 200px budget)", b.Height)
	}
}

func TestBarsSingleElement(t *testing.T) {
	layout := geom.Bars(pts("only", 7.0), geom.BarOptions{Height: 100})
	if len(layout.Bars) != 1 {
		t.Fatalf("got %d bars, want 1", len(layout.Bars))
	}
	if layout.Bars[0].Height <= 0 {
		t.Errorf("single bar height = %v, want positive", layout.Bars[0].Height)
	}
}

func TestBarsEmptySeries(t *testing.T) {
	layout := geom.Bars(nil, geom.BarOptions{Height: 100})
	if len(layout.Bars) != 0 {
		t.Errorf("got %d bars for empty series, want 0", len(layout.Bars))
	}
	if layout.Max != 1 {
		t.Errorf("empty series max = %v, want fallback 1", layout.Max)
	}
}

func TestBarsStacked(t *testing.T) {
	points := []model.Point{{Label: "jan", Value: 30, Secondary: 20}}
	layout := geom.Bars(points, geom.BarOptions{MaxValue: 100, Height: 100, Stacked: true})
	b := layout.Bars[0]
	if !almostEqual(b.Height, 30) || !almostEqual(b.SecondaryHeight, 20) {
		t.Errorf("stacked heights = %v/%v, want 30/20", b.Height, b.SecondaryHeight)
	}
	if b.Height+b.SecondaryHeight > layout.Height {
		t.Errorf("combined stack %v exceeds budget %v", b.Height+b.SecondaryHeight, layout.Height)
	}
}

func TestBarsPaletteFallback(t *testing.T) {
	layout := geom.Bars(pts("a", 1.0, "b", 2.0), geom.BarOptions{Height: 10})
	for i, b := range layout.Bars {
		if b.Color == "" {
			t.Errorf("bar %d has no color, want palette fallback", i)
		}
	}
	explicit := []model.Point{{Label: "c", Value: 1, Color: "#123456"}}
	layout = geom.Bars(explicit, geom.BarOptions{Height: 10})
	if layout.Bars[0].Color != "#123456" {
		t.Errorf("explicit color overridden: got %s", layout.Bars[0].Color)
	}
}

func TestBarsNegativeValuePassesThrough(t *testing.T) {
	layout := geom.Bars(pts("refund", -25.0, "spend", 75.0), geom.BarOptions{Height: 100})
	if layout.Bars[0].Height >= 0 {
		t.Errorf("negative value height = %v, want negative pass-through", layout.Bars[0].Height)
	}
}
