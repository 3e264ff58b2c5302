package geom

import (
	"sort"

	"github.com/pennyplot/pennyplot/internal/model"
)

// Tone classifies a trend arrow for styling.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGood
	ToneBad
)

// TrendGlyph is the presentational mapping of a trend: an arrow and whether
// the movement is good or bad for the viewer.
type TrendGlyph struct {
	Icon string `json:"icon"`
	Tone Tone   `json:"tone"`
}

// TrendArrow maps a trend to its glyph. positiveIsGood states whether a
// rising value is desirable: true for income and savings, false for
// spending. There is no sensible default — the polarity must come from the
// caller every time, or a rising grocery bill turns green.
func TrendArrow(t model.Trend, positiveIsGood bool) TrendGlyph {
	switch t {
	case model.TrendUp:
		g := TrendGlyph{Icon: "↑", Tone: ToneBad}
		if positiveIsGood {
			g.Tone = ToneGood
		}
		return g
	case model.TrendDown:
		g := TrendGlyph{Icon: "↓", Tone: ToneGood}
		if positiveIsGood {
			g.Tone = ToneBad
		}
		return g
	default:
		return TrendGlyph{Icon: "→", Tone: ToneNeutral}
	}
}

// BreakdownOptions controls breakdown shaping.
type BreakdownOptions struct {
	// MaxItems truncates the sorted list. 0 keeps everything.
	MaxItems int
	// PositiveIsGood is the trend polarity passed to TrendArrow.
	PositiveIsGood bool
	// Palette supplies fallback colors. Nil means Default.
	Palette Palette
}

// BreakdownEntry is one shaped row of a category breakdown.
type BreakdownEntry struct {
	model.CategoryItem
	// Proportion is Amount relative to the largest amount among the
	// retained entries — not the pre-truncation set — so the top entry
	// always fills its row.
	Proportion float64    `json:"proportion"`
	OverBudget bool       `json:"over_budget"`
	Arrow      TrendGlyph `json:"arrow"`
}

// Breakdown sorts items descending by amount, truncates to MaxItems, and
// scales each retained entry against the retained maximum. Entries whose
// amount exceeds a set budget are flagged for alternate styling. The input
// slice is not mutated.
func Breakdown(items []model.CategoryItem, opts BreakdownOptions) []BreakdownEntry {
	pal := opts.Palette
	if pal == nil {
		pal = Default
	}

	sorted := make([]model.CategoryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	if opts.MaxItems > 0 && len(sorted) > opts.MaxItems {
		sorted = sorted[:opts.MaxItems]
	}

	var max float64
	for _, it := range sorted {
		if it.Amount > max {
			max = it.Amount
		}
	}

	out := make([]BreakdownEntry, len(sorted))
	for i, it := range sorted {
		e := BreakdownEntry{
			CategoryItem: it,
			Proportion:   Proportion(it.Amount, max),
			OverBudget:   it.Budget > 0 && it.Amount > it.Budget,
			Arrow:        TrendArrow(it.Trend, opts.PositiveIsGood),
		}
		if e.Color == "" {
			e.Color = pal.At(i)
		}
		out[i] = e
	}
	return out
}
