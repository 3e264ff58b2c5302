package geom

import "github.com/pennyplot/pennyplot/internal/model"

// BarOptions controls bar layout computation.
type BarOptions struct {
	// MaxValue is the explicit reference maximum. If 0, the layout derives
	// max(values)*Headroom. An explicit value below the data maximum is
	// honored as-is and produces proportions above 1 — deliberately not
	// clamped here.
	MaxValue float64
	// Height is the vertical pixel budget for vertical bars.
	Height float64
	// Stacked renders each point's Secondary value beneath its Value.
	// Callers guarantee Value+Secondary fits MaxValue; the layout does not.
	Stacked bool
	// Palette supplies fallback colors for points without one.
	// Nil means Default.
	Palette Palette
}

// Bar is the computed layout of a single bar.
// Height and SecondaryHeight are pixels for vertical rendering; Percent is
// the 0–100 length for horizontal rendering, independent of Height.
type Bar struct {
	Label           string  `json:"label"`
	Value           float64 `json:"value"`
	Secondary       float64 `json:"secondary,omitempty"`
	Height          float64 `json:"height"`
	SecondaryHeight float64 `json:"secondary_height,omitempty"`
	Percent         float64 `json:"percent"`
	Color           string  `json:"color"`
	SecondaryColor  string  `json:"secondary_color,omitempty"`
	Icon            string  `json:"icon,omitempty"`
}

// BarLayout is the full computed bar chart geometry.
type BarLayout struct {
	Max     float64 `json:"max"`
	Height  float64 `json:"height"`
	Stacked bool    `json:"stacked,omitempty"`
	Bars    []Bar   `json:"bars"`
}

// Bars computes the layout for points under opts. A single-element series is
// a valid layout; an empty one yields zero bars. Negative values pass
// through as negative heights and percents — the terminal painter draws them
// from a zero baseline, other targets decide for themselves.
func Bars(points []model.Point, opts BarOptions) BarLayout {
	pal := opts.Palette
	if pal == nil {
		pal = Default
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	max := Denominator(values, opts.MaxValue)

	layout := BarLayout{
		Max:     max,
		Height:  opts.Height,
		Stacked: opts.Stacked,
		Bars:    make([]Bar, len(points)),
	}
	for i, p := range points {
		prop := Proportion(p.Value, max)
		b := Bar{
			Label:   p.Label,
			Value:   p.Value,
			Height:  prop * opts.Height,
			Percent: prop * 100,
			Color:   p.Color,
			Icon:    p.Icon,
		}
		if b.Color == "" {
			b.Color = pal.At(i)
		}
		if opts.Stacked {
			b.Secondary = p.Secondary
			b.SecondaryHeight = Proportion(p.Secondary, max) * opts.Height
			b.SecondaryColor = p.SecondaryColor
			if b.SecondaryColor == "" {
				b.SecondaryColor = pal.At(i + 1)
			}
		}
		layout.Bars[i] = b
	}
	return layout
}
