package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/render"
)

func resultOf(kind string, data interface{}) *model.Result {
	return &model.Result{
		Kind:        kind,
		GeneratedAt: time.Now().UTC(),
		Command:     "test",
		Data:        data,
	}
}

func barLayout() geom.BarLayout {
	return geom.Bars([]model.Point{
		{Label: "dining", Value: 420},
		{Label: "transport", Value: 120},
	}, geom.BarOptions{Height: 100})
}

func TestRenderTableBars(t *testing.T) {
	var buf strings.Builder
	err := render.Render(&buf, resultOf(model.KindBarChart, barLayout()), render.FormatTable)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"LABEL", "VALUE", "PERCENT", "dining", "transport"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCSV(t *testing.T) {
	var buf strings.Builder
	err := render.Render(&buf, resultOf(model.KindBarChart, barLayout()), render.FormatCSV)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "LABEL,VALUE,HEIGHT,PERCENT" {
		t.Errorf("unexpected CSV header %q", lines[0])
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf strings.Builder
	err := render.Render(&buf, resultOf(model.KindBarChart, barLayout()), render.FormatMD)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "|---|") {
		t.Errorf("markdown output missing separator row:\n%s", out)
	}
}

func TestRenderJSONLSeries(t *testing.T) {
	s := model.Series{ID: "groceries", Points: []model.Point{
		{Label: "jan", Value: 310}, {Label: "feb", Value: 280},
	}}
	var buf strings.Builder
	err := render.Render(&buf, resultOf(model.KindSeries, s), render.FormatJSONL)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSONL lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"series_id":"groceries"`) {
		t.Errorf("JSONL row missing series id: %s", lines[0])
	}
}

func TestSVGPieUsesArcs(t *testing.T) {
	pc := geom.PieOf([]model.Point{
		{Label: "needs", Value: 50},
		{Label: "wants", Value: 30},
		{Label: "savings", Value: 20},
	}, nil, 160, 0, false)
	var buf strings.Builder
	err := render.Render(&buf, resultOf(model.KindPieChart, pc), render.FormatSVG)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "<path") != 3 {
		t.Errorf("got %d paths, want 3:\n%s", strings.Count(out, "<path"), out)
	}
	if !strings.Contains(out, " A ") {
		t.Error("pie paths contain no arc commands")
	}
	// the 50% slice spans exactly half the circle: large-arc flag stays 0,
	// but a 3-slice pie must still close at the top
	if !strings.Contains(out, "</svg>") {
		t.Error("unterminated SVG document")
	}
}

func TestSVGDonutHasInnerArc(t *testing.T) {
	pc := geom.PieOf([]model.Point{
		{Label: "spent", Value: 70},
		{Label: "left", Value: 30},
	}, nil, 160, 24, true)
	var buf strings.Builder
	if err := render.SVG(&buf, resultOf(model.KindPieChart, pc)); err != nil {
		t.Fatalf("SVG returned error: %v", err)
	}
	path := buf.String()
	if strings.Count(path, " A ") < 4 {
		t.Errorf("donut paths should sweep outer and inner arcs:\n%s", path)
	}
}

func TestSVGFullCircleSegment(t *testing.T) {
	// a single 100% slice has coincident arc endpoints and must fall back
	// to a circle element
	pc := geom.PieOf([]model.Point{{Label: "all", Value: 1}}, nil, 160, 0, false)
	var buf strings.Builder
	if err := render.SVG(&buf, resultOf(model.KindPieChart, pc)); err != nil {
		t.Fatalf("SVG returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "<circle") {
		t.Errorf("full-circle segment not drawn as a circle:\n%s", buf.String())
	}
}

func TestSVGRingDasharray(t *testing.T) {
	r := geom.Progress(25, 120, 12)
	var buf strings.Builder
	if err := render.SVG(&buf, resultOf(model.KindRing, r)); err != nil {
		t.Fatalf("SVG returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("ring missing stroke-dasharray arc")
	}
	if !strings.Contains(out, `rotate(-90`) {
		t.Error("ring missing quarter-turn rotation to twelve o'clock")
	}
	if !strings.Contains(out, "25%") {
		t.Error("ring missing center percent label")
	}
}

func TestSVGPolylinePointCount(t *testing.T) {
	pl := geom.PolylineOf([]model.Point{
		{Value: 1}, {Value: 3}, {Value: 2},
	}, geom.PolylineOptions{Width: 300, Height: 100})
	var buf strings.Builder
	if err := render.SVG(&buf, resultOf(model.KindLineChart, pl)); err != nil {
		t.Fatalf("SVG returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<polyline") {
		t.Fatal("missing polyline element")
	}
	attr := out[strings.Index(out, `points="`)+len(`points="`):]
	attr = attr[:strings.Index(attr, `"`)]
	if got := len(strings.Fields(attr)); got != 3 {
		t.Errorf("polyline has %d points, want 3 (%q)", got, attr)
	}
}

func TestSVGBreakdownEscapesNames(t *testing.T) {
	entries := geom.Breakdown([]model.CategoryItem{
		{Name: "Food & Groceries", Amount: 420, Trend: model.TrendDown},
		{Name: "Rent", Amount: 1200},
	}, geom.BreakdownOptions{})
	var buf strings.Builder
	if err := render.SVG(&buf, resultOf(model.KindBreakdown, entries)); err != nil {
		t.Fatalf("SVG returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Food &amp; Groceries") {
		t.Errorf("category name not XML-escaped:\n%s", out)
	}
	if strings.Contains(out, "Food & Groceries") {
		t.Errorf("raw ampersand survived in text content:\n%s", out)
	}
}

func TestSVGUnknownKind(t *testing.T) {
	err := render.SVG(&strings.Builder{}, resultOf(model.KindTable, "not geometry"))
	if err == nil {
		t.Error("expected error for payload without an SVG form")
	}
}
