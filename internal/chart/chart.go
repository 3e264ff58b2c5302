// Package chart paints computed geometry onto the terminal using block and
// box-drawing runes. It consumes geom output and never recomputes layout
// math itself — the split keeps "compute correct proportions" and
// "approximate them with character cells" separable concerns.
//
// All painters handle degenerate geometry (no bars, no segments, zero
// proportions) by printing an empty-but-valid chart, never by failing.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pennyplot/pennyplot/internal/geom"
)

// fills are the per-segment fill runes cycled by pie and stacked painters so
// adjacent slices stay distinguishable without color.
var fills = []rune{'█', '▓', '▒', '░'}

// levels are the eighth-block runes used by sparklines, lowest to highest.
var levels = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// ─── Horizontal bars ──────────────────────────────────────────────────────────

// BarOptions controls horizontal bar rendering.
type BarOptions struct {
	// Width is the total character width available. If 0, auto-detects
	// from $COLUMNS, falls back to 80.
	Width int
	// ShowValues prints the numeric value next to each label.
	ShowValues bool
}

// Bar renders layout as labeled horizontal bars, one row per bar.
//
// Output example:
//
//	spending by category
//	shopping   510.00  ████████████████████
//	dining     420.00  ████████████████
//	groceries  380.00  ██████████████
//
// Negative values are supported: bars extend left from a zero baseline, the
// way a refund offsets a spend.
func Bar(w io.Writer, title string, layout geom.BarLayout, opts BarOptions) {
	totalWidth := opts.Width
	if totalWidth <= 0 {
		totalWidth = termWidth()
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	if len(layout.Bars) == 0 {
		return
	}

	labelWidth, valWidth := 0, 0
	hasNeg := false
	var minProp, maxProp float64
	for i, b := range layout.Bars {
		if l := runeLen(b.Label); l > labelWidth {
			labelWidth = l
		}
		if l := len(FormatFloat(b.Value)); l > valWidth {
			valWidth = l
		}
		prop := b.Percent / 100
		if i == 0 || prop < minProp {
			minProp = prop
		}
		if i == 0 || prop > maxProp {
			maxProp = prop
		}
		if b.Value < 0 {
			hasNeg = true
		}
	}
	if minProp > 0 {
		minProp = 0
	}

	barAreaWidth := totalWidth - labelWidth - 4
	if opts.ShowValues {
		barAreaWidth -= valWidth + 2
	}
	if barAreaWidth < 4 {
		barAreaWidth = 4
	}

	span := maxProp - minProp
	if span == 0 {
		span = 1
	}
	var zeroPos int
	if hasNeg {
		zeroPos = int(math.Round((-minProp / span) * float64(barAreaWidth-1)))
	}

	for _, b := range layout.Bars {
		prop := b.Percent / 100
		var bar string
		if hasNeg {
			bar = biBar(prop, minProp, span, barAreaWidth, zeroPos)
		} else {
			barLen := int(math.Round(prop / span * float64(barAreaWidth)))
			if barLen < 1 && b.Value > 0 {
				barLen = 1 // every positive bar stays visible
			}
			if barLen > barAreaWidth {
				barLen = barAreaWidth
			}
			if barLen < 0 {
				barLen = 0
			}
			bar = strings.Repeat("█", barLen)
		}
		if opts.ShowValues {
			fmt.Fprintf(w, "%-*s  %*s  %s\n", labelWidth, b.Label, valWidth, FormatFloat(b.Value), bar)
		} else {
			fmt.Fprintf(w, "%-*s  %s\n", labelWidth, b.Label, bar)
		}
	}
}

// biBar renders a bar extending left (negative) or right (positive) from a
// zero baseline at zeroPos within a field of width barAreaWidth.
func biBar(prop, minProp, span float64, barAreaWidth, zeroPos int) string {
	buf := []rune(strings.Repeat(" ", barAreaWidth))
	if zeroPos >= 0 && zeroPos < barAreaWidth {
		buf[zeroPos] = '│'
	}
	if prop >= 0 {
		end := zeroPos + int(math.Round(prop/span*float64(barAreaWidth-1)))
		if end > barAreaWidth {
			end = barAreaWidth
		}
		for i := zeroPos + 1; i <= end && i < barAreaWidth; i++ {
			buf[i] = '█'
		}
	} else {
		start := zeroPos - int(math.Round((-prop)/span*float64(barAreaWidth-1)))
		if start < 0 {
			start = 0
		}
		for i := start; i < zeroPos && i < barAreaWidth; i++ {
			buf[i] = '█'
		}
	}
	return string(buf)
}

// ─── Vertical columns ─────────────────────────────────────────────────────────

// ColumnOptions controls vertical column rendering.
type ColumnOptions struct {
	// Height is the number of character rows for the column body.
	// If 0, defaults to 8.
	Height int
}

// Columns renders layout as vertical columns built from eighth-block runes,
// bottom-aligned the way the geometry intends. Stacked secondary values are
// drawn beneath the primary with a lighter fill.
func Columns(w io.Writer, title string, layout geom.BarLayout, opts ColumnOptions) {
	height := opts.Height
	if height <= 0 {
		height = 8
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	n := len(layout.Bars)
	if n == 0 {
		return
	}

	// eighths of a row each column fills, from the precomputed proportions
	cells := float64(height * 8)
	primary := make([]int, n)
	secondary := make([]int, n)
	for i, b := range layout.Bars {
		primary[i] = clampInt(int(math.Round(b.Percent/100*cells)), 0, height*8)
		if layout.Stacked && layout.Max > 0 {
			sec := geom.Proportion(b.Secondary, layout.Max)
			secondary[i] = clampInt(int(math.Round(sec*cells)), 0, height*8-primary[i])
		}
	}

	for row := height; row > 0; row-- {
		var sb strings.Builder
		floor := (row - 1) * 8
		for i := range layout.Bars {
			total := primary[i] + secondary[i]
			switch {
			case secondary[i] > floor+8 || (secondary[i] > floor && total > floor+8):
				// row fully inside or crossing into the secondary stack
				sb.WriteRune('▒')
			case total >= floor+8:
				sb.WriteRune('█')
			case total > floor:
				sb.WriteRune(levels[total-floor-1])
			default:
				sb.WriteRune(' ')
			}
			sb.WriteRune(' ')
		}
		fmt.Fprintf(w, "%s\n", strings.TrimRight(sb.String(), " "))
	}

	// label initials under the columns
	var sb strings.Builder
	for _, b := range layout.Bars {
		r := ' '
		for _, c := range b.Label {
			r = c
			break
		}
		sb.WriteRune(r)
		sb.WriteRune(' ')
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(sb.String(), " "))
}

// ─── Sparkline ────────────────────────────────────────────────────────────────

// Spark renders a polyline as a one-line block sparkline string.
// The y-mapping is already done by the geometry; each point's height within
// the box picks one of eight block levels. A flat series renders as a level
// row, an empty one as the empty string.
func Spark(pl geom.Polyline) string {
	if len(pl.Points) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range pl.Points {
		// invert back from screen coordinates to a 0..1 fill
		fill := 0.0
		if pl.Height > 0 {
			fill = (pl.Height - p.Y) / pl.Height
		}
		idx := int(fill * float64(len(levels)-1))
		idx = clampInt(idx, 0, len(levels)-1)
		sb.WriteRune(levels[idx])
	}
	return sb.String()
}

// ─── Pie / donut ──────────────────────────────────────────────────────────────

// PieOptions controls pie band rendering.
type PieOptions struct {
	// Width is the character width of the proportion band. If 0,
	// auto-detects from $COLUMNS, falls back to 80.
	Width int
	// Donut marks the chart as a ring in the legend header.
	Donut bool
}

// Pie renders segments as a single proportional band plus a legend line per
// segment with its percentage and angular span. The band is the terminal's
// honest equivalent of a pie: 360° mapped onto a row of cells, each segment
// filled with its own rune.
func Pie(w io.Writer, title string, segs []geom.Segment, opts PieOptions) {
	width := opts.Width
	if width <= 0 {
		width = termWidth()
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	if len(segs) == 0 {
		return
	}

	band := []rune(strings.Repeat(" ", width))
	for i, s := range segs {
		var (
			from = int(math.Round(s.StartAngle / 360 * float64(width)))
			to   = int(math.Round(s.EndAngle / 360 * float64(width)))
		)
		for c := from; c < to && c < width; c++ {
			band[c] = fills[i%len(fills)]
		}
	}
	fmt.Fprintf(w, "%s\n", string(band))

	labelWidth := 0
	for _, s := range segs {
		if l := runeLen(s.Label); l > labelWidth {
			labelWidth = l
		}
	}
	for i, s := range segs {
		fmt.Fprintf(w, "%c %-*s  %5.1f%%  %6.1f°–%.1f°\n",
			fills[i%len(fills)], labelWidth, s.Label,
			s.Percentage, s.StartAngle, s.EndAngle)
	}
}

// ─── Progress gauge ───────────────────────────────────────────────────────────

// GaugeOptions controls progress gauge rendering.
type GaugeOptions struct {
	// Width is the character width of the gauge body. If 0, defaults to 40.
	Width int
	// Label is printed before the gauge, e.g. a goal name.
	Label string
}

// Gauge renders a progress ring as a flat gauge with the percent label the
// ring would carry in its center.
//
//	vacation fund  [████████████··················]  42%
func Gauge(w io.Writer, ring geom.Ring, opts GaugeOptions) {
	width := opts.Width
	if width <= 0 {
		width = 40
	}
	filled := int(math.Round(ring.Percent / 100 * float64(width)))
	filled = clampInt(filled, 0, width)

	bar := strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
	if opts.Label != "" {
		fmt.Fprintf(w, "%s  [%s]  %.0f%%\n", opts.Label, bar, ring.Percent)
		return
	}
	fmt.Fprintf(w, "[%s]  %.0f%%\n", bar, ring.Percent)
}

// ─── Breakdown list ───────────────────────────────────────────────────────────

// BreakdownOptions controls breakdown list rendering.
type BreakdownOptions struct {
	// Width is the total character width available. If 0, auto-detects
	// from $COLUMNS, falls back to 80.
	Width int
}

// BreakdownList renders shaped breakdown entries, one row per category,
// with a trend arrow, the amount, and a bar scaled against the largest
// retained entry. Over-budget rows get a '!' marker after the amount.
//
//	spending breakdown
//	↑ Shopping    510.00   ████████████████████
//	↓ Dining      420.00   ████████████████
//	→ Groceries   380.00 ! ██████████████
func BreakdownList(w io.Writer, title string, entries []geom.BreakdownEntry, opts BreakdownOptions) {
	totalWidth := opts.Width
	if totalWidth <= 0 {
		totalWidth = termWidth()
	}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	if len(entries) == 0 {
		return
	}

	labelWidth, valWidth := 0, 0
	for _, e := range entries {
		if l := runeLen(e.Name); l > labelWidth {
			labelWidth = l
		}
		if l := runeLen(FormatFloat(e.Amount)); l > valWidth {
			valWidth = l
		}
	}
	// arrow + space + label + 2 + value + space + marker + space
	barAreaWidth := totalWidth - labelWidth - valWidth - 7
	if barAreaWidth < 4 {
		barAreaWidth = 4
	}

	for _, e := range entries {
		fill := int(math.Round(e.Proportion * float64(barAreaWidth)))
		fill = clampInt(fill, 0, barAreaWidth)
		marker := ' '
		if e.OverBudget {
			marker = '!'
		}
		fmt.Fprintf(w, "%s %-*s  %*s %c %s\n",
			e.Arrow.Icon, labelWidth, e.Name,
			valWidth, FormatFloat(e.Amount), marker,
			strings.Repeat("█", fill))
	}
}

// ─── Utilities ────────────────────────────────────────────────────────────────

// FormatFloat formats a value for chart labels: no unnecessary trailing
// zeros, compact notation for large magnitudes.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "."
	}
	abs := math.Abs(v)
	var s string
	switch {
	case abs == 0:
		return "0"
	case abs >= 1e6:
		s = strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case abs >= 1e3:
		s = strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K"
	default:
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}
	if strings.Contains(s, ".") && !strings.HasSuffix(s, "M") && !strings.HasSuffix(s, "K") {
		s = strings.TrimRight(s, "0")
		if strings.HasSuffix(s, ".") {
			s += "0"
		}
	}
	return s
}

// termWidth returns the terminal width from $COLUMNS, defaulting to 80.
func termWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 20 {
			return n
		}
	}
	return 80
}

func runeLen(s string) int {
	return len([]rune(s))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
