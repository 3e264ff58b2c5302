package render

import (
	"fmt"
	"html"
	"io"

	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
)

// SVG writes result as a standalone SVG document. Unlike the border-box
// approximation the geometry also supports, this target has real vector
// paths, so pies and rings are drawn with exact arcs from the computed
// angles — the angle math is shared, only the paint step differs.
func SVG(w io.Writer, result *model.Result) error {
	switch data := result.Data.(type) {
	case geom.BarLayout:
		return svgBars(w, data)
	case geom.Polyline:
		return svgPolyline(w, data)
	case geom.PieChart:
		return svgPie(w, data)
	case geom.Ring:
		return svgRing(w, data)
	case []geom.BreakdownEntry:
		return svgBreakdown(w, data)
	}
	return fmt.Errorf("no SVG form for result kind %q", result.Kind)
}

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">` + "\n"

// ─── Bars ─────────────────────────────────────────────────────────────────────

func svgBars(w io.Writer, layout geom.BarLayout) error {
	const barWidth, gap = 24.0, 8.0
	var (
		height = layout.Height
		width  = float64(len(layout.Bars))*(barWidth+gap) + gap
	)
	if height <= 0 {
		height = 120
	}
	fmt.Fprintf(w, svgHeader, int(width), int(height), int(width), int(height))
	for i, b := range layout.Bars {
		x := gap + float64(i)*(barWidth+gap)
		// bottom-aligned: y counts down from the box height
		h := b.Height
		if h < 0 {
			h = 0 // SVG rects cannot have negative height; callers wanting
			// bidirectional bars use the terminal painter
		}
		if layout.Stacked && b.SecondaryHeight > 0 {
			fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				formatFloatAttr(x), formatFloatAttr(height-b.SecondaryHeight),
				formatFloatAttr(barWidth), formatFloatAttr(b.SecondaryHeight), b.SecondaryColor)
			fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				formatFloatAttr(x), formatFloatAttr(height-b.SecondaryHeight-h),
				formatFloatAttr(barWidth), formatFloatAttr(h), b.Color)
			continue
		}
		fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			formatFloatAttr(x), formatFloatAttr(height-h),
			formatFloatAttr(barWidth), formatFloatAttr(h), b.Color)
	}
	fmt.Fprintln(w, "</svg>")
	return nil
}

// ─── Polyline ─────────────────────────────────────────────────────────────────

func svgPolyline(w io.Writer, pl geom.Polyline) error {
	width, height := pl.Width, pl.Height
	if width <= 0 {
		width = 300
	}
	if height <= 0 {
		height = 100
	}
	stroke := pl.Stroke
	if stroke <= 0 {
		stroke = 2
	}
	fmt.Fprintf(w, svgHeader, int(width), int(height), int(width), int(height))
	fmt.Fprintf(w, `<polyline fill="none" stroke="%s" stroke-width="%s" points="`,
		geom.Default.At(0), formatFloatAttr(stroke))
	for i, p := range pl.Points {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%s,%s", formatFloatAttr(p.X), formatFloatAttr(p.Y))
	}
	fmt.Fprintln(w, `"/>`)
	fmt.Fprintln(w, "</svg>")
	return nil
}

// ─── Pie / donut ──────────────────────────────────────────────────────────────

func svgPie(w io.Writer, pc geom.PieChart) error {
	size := pc.Size
	if size <= 0 {
		size = 160
	}
	var (
		c     = size / 2
		outer = size / 2
		inner float64
	)
	if pc.Donut {
		inner = outer - pc.Stroke
		if inner < 0 {
			inner = 0
		}
	}
	fmt.Fprintf(w, svgHeader, int(size), int(size), int(size), int(size))
	for _, s := range pc.Segments {
		if s.EndAngle <= s.StartAngle {
			continue // zero-share segment paints nothing
		}
		// a full-circle segment has coincident arc endpoints, which SVG
		// renders as nothing — draw it as a circle instead
		if s.EndAngle-s.StartAngle >= 360 {
			if inner > 0 {
				fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
					formatFloatAttr(c), formatFloatAttr(c), formatFloatAttr((outer+inner)/2),
					s.Color, formatFloatAttr(outer-inner))
			} else {
				fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
					formatFloatAttr(c), formatFloatAttr(c), formatFloatAttr(outer), s.Color)
			}
			continue
		}
		fmt.Fprintf(w, `<path d="%s" fill="%s"/>`+"\n", arcPath(c, outer, inner, s), s.Color)
	}
	fmt.Fprintln(w, "</svg>")
	return nil
}

// arcPath builds the path data for one segment: move to the arc start, sweep
// the outer arc, then either close through the center (pie) or back along
// the inner arc (donut).
func arcPath(c, outer, inner float64, s geom.Segment) string {
	var (
		large  = 0
		x1, y1 = geom.ArcPoint(s.StartAngle, outer)
		x2, y2 = geom.ArcPoint(s.EndAngle, outer)
	)
	if s.EndAngle-s.StartAngle > 180 {
		large = 1
	}
	if inner <= 0 {
		return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
			formatFloatAttr(c), formatFloatAttr(c),
			formatFloatAttr(c+x1), formatFloatAttr(c+y1),
			formatFloatAttr(outer), formatFloatAttr(outer), large,
			formatFloatAttr(c+x2), formatFloatAttr(c+y2))
	}
	x3, y3 := geom.ArcPoint(s.EndAngle, inner)
	x4, y4 := geom.ArcPoint(s.StartAngle, inner)
	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s L %s %s A %s %s 0 %d 0 %s %s Z",
		formatFloatAttr(c+x1), formatFloatAttr(c+y1),
		formatFloatAttr(outer), formatFloatAttr(outer), large,
		formatFloatAttr(c+x2), formatFloatAttr(c+y2),
		formatFloatAttr(c+x3), formatFloatAttr(c+y3),
		formatFloatAttr(inner), formatFloatAttr(inner), large,
		formatFloatAttr(c+x4), formatFloatAttr(c+y4))
}

// ─── Progress ring ────────────────────────────────────────────────────────────

func svgRing(w io.Writer, r geom.Ring) error {
	size := r.Size
	if size <= 0 {
		size = 120
	}
	c := size / 2
	fmt.Fprintf(w, svgHeader, int(size), int(size), int(size), int(size))
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="#e5e7eb" stroke-width="%s"/>`+"\n",
		formatFloatAttr(c), formatFloatAttr(c), formatFloatAttr(r.Radius), formatFloatAttr(r.Stroke))
	// stroke-dasharray carries the computed arc; the -90° rotation moves the
	// dash start from three o'clock to twelve o'clock
	fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="%s %s" transform="rotate(-90 %s %s)"/>`+"\n",
		formatFloatAttr(c), formatFloatAttr(c), formatFloatAttr(r.Radius),
		geom.Default.At(0), formatFloatAttr(r.Stroke),
		formatFloatAttr(r.ArcLength), formatFloatAttr(r.Circumference),
		formatFloatAttr(c), formatFloatAttr(c))
	fmt.Fprintf(w, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%s">%.0f%%</text>`+"\n",
		formatFloatAttr(c), formatFloatAttr(c), formatFloatAttr(size/5), r.Percent)
	fmt.Fprintln(w, "</svg>")
	return nil
}

// ─── Breakdown ────────────────────────────────────────────────────────────────

func svgBreakdown(w io.Writer, entries []geom.BreakdownEntry) error {
	const rowHeight, barLeft, barArea = 28.0, 120.0, 260.0
	var (
		width  = barLeft + barArea + 20
		height = float64(len(entries))*rowHeight + 10
	)
	fmt.Fprintf(w, svgHeader, int(width), int(height), int(width), int(height))
	for i, e := range entries {
		y := 10 + float64(i)*rowHeight
		fill := e.Color
		if e.OverBudget {
			fill = "#ef4444"
		}
		// category names come from user input, so XML-escape them
		fmt.Fprintf(w, `<text x="0" y="%s" font-family="sans-serif" font-size="12">%s %s</text>`+"\n",
			formatFloatAttr(y+12), html.EscapeString(e.Name), html.EscapeString(e.Arrow.Icon))
		fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="14" rx="4" fill="%s"/>`+"\n",
			formatFloatAttr(barLeft), formatFloatAttr(y),
			formatFloatAttr(e.Proportion*barArea), fill)
	}
	fmt.Fprintln(w, "</svg>")
	return nil
}
