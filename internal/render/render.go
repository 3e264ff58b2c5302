// Package render converts Result values into human-readable or
// machine-parseable output. Each format is a separate function; the
// top-level Render dispatcher selects based on the format string. Terminal
// painting lives in internal/chart; this package covers the structured
// formats plus SVG for vector targets.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/pennyplot/pennyplot/internal/chart"
	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
)

// Format constants matching --format flag values.
const (
	FormatTerm  = "term"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatMD    = "md"
	FormatSVG   = "svg"
)

// Render writes result to w in the specified format.
// The terminal format is handled by the commands themselves (they own the
// painters); everything else dispatches here.
func Render(w io.Writer, result *model.Result, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatJSONL:
		return renderJSONL(w, result)
	case FormatCSV:
		return renderDelimited(w, result, ',')
	case FormatTSV:
		return renderDelimited(w, result, '\t')
	case FormatMD:
		return renderMarkdown(w, result)
	case FormatSVG:
		return SVG(w, result)
	default:
		return renderTable(w, result)
	}
}

// RenderTo writes to stdout by default; if path is non-empty, writes to file.
func RenderTo(path string, result *model.Result, format string) error {
	if path == "" {
		return Render(os.Stdout, result, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return Render(f, result, format)
}

// ─── JSON ─────────────────────────────────────────────────────────────────────

func renderJSON(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// ─── JSONL ────────────────────────────────────────────────────────────────────

func renderJSONL(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	switch data := result.Data.(type) {
	case model.Series:
		for _, p := range data.Points {
			row := map[string]interface{}{
				"series_id": data.ID,
				"label":     p.Label,
				"value":     p.Value,
			}
			if p.Secondary != 0 {
				row["secondary"] = p.Secondary
			}
			if p.Color != "" {
				row["color"] = p.Color
			}
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	case []geom.BreakdownEntry:
		for _, e := range data {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(result.Data)
	}
}

// ─── Tabular rows ─────────────────────────────────────────────────────────────

// rows flattens a result payload into a header plus string rows, shared by
// the table, delimited and markdown formats.
func rows(result *model.Result) ([]string, [][]string, error) {
	switch data := result.Data.(type) {
	case model.Series:
		head := []string{"SERIES", "LABEL", "VALUE"}
		var out [][]string
		for _, p := range data.Points {
			out = append(out, []string{data.ID, p.Label, chart.FormatFloat(p.Value)})
		}
		return head, out, nil

	case geom.BarLayout:
		head := []string{"LABEL", "VALUE", "HEIGHT", "PERCENT"}
		var out [][]string
		for _, b := range data.Bars {
			out = append(out, []string{
				b.Label,
				chart.FormatFloat(b.Value),
				fmt.Sprintf("%.1f", b.Height),
				fmt.Sprintf("%.1f", b.Percent),
			})
		}
		return head, out, nil

	case geom.Polyline:
		head := []string{"LABEL", "VALUE", "X", "Y"}
		var out [][]string
		for _, p := range data.Points {
			out = append(out, []string{
				p.Label,
				chart.FormatFloat(p.Value),
				fmt.Sprintf("%.1f", p.X),
				fmt.Sprintf("%.1f", p.Y),
			})
		}
		return head, out, nil

	case geom.PieChart:
		head := []string{"LABEL", "VALUE", "PERCENT", "START", "END"}
		var out [][]string
		for _, s := range data.Segments {
			out = append(out, []string{
				s.Label,
				chart.FormatFloat(s.Value),
				fmt.Sprintf("%.1f", s.Percentage),
				fmt.Sprintf("%.1f", s.StartAngle),
				fmt.Sprintf("%.1f", s.EndAngle),
			})
		}
		return head, out, nil

	case geom.Ring:
		head := []string{"PERCENT", "RADIUS", "ARC", "CIRCUMFERENCE"}
		out := [][]string{{
			fmt.Sprintf("%.1f", data.Percent),
			fmt.Sprintf("%.1f", data.Radius),
			fmt.Sprintf("%.1f", data.ArcLength),
			fmt.Sprintf("%.1f", data.Circumference),
		}}
		return head, out, nil

	case []geom.BreakdownEntry:
		head := []string{"CATEGORY", "AMOUNT", "BUDGET", "SHARE", "TREND", "OVER"}
		var out [][]string
		for _, e := range data {
			budget := ""
			if e.Budget > 0 {
				budget = chart.FormatFloat(e.Budget)
			}
			over := ""
			if e.OverBudget {
				over = "!"
			}
			out = append(out, []string{
				e.Name,
				chart.FormatFloat(e.Amount),
				budget,
				fmt.Sprintf("%.0f%%", e.Proportion*100),
				e.Arrow.Icon,
				over,
			})
		}
		return head, out, nil
	}
	return nil, nil, fmt.Errorf("no tabular form for result kind %q", result.Kind)
}

// ─── Table ────────────────────────────────────────────────────────────────────

func renderTable(w io.Writer, result *model.Result) error {
	head, body, err := rows(result)
	if err != nil {
		// payloads without a tabular form fall back to JSON
		return renderJSON(w, result)
	}
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(head)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetAutoWrapText(false)
	for _, row := range body {
		tw.Append(row)
	}
	tw.Render()
	return nil
}

// ─── Delimited (CSV / TSV) ────────────────────────────────────────────────────

func renderDelimited(w io.Writer, result *model.Result, sep rune) error {
	head, body, err := rows(result)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if err := cw.Write(head); err != nil {
		return err
	}
	for _, row := range body {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ─── Markdown ─────────────────────────────────────────────────────────────────

func renderMarkdown(w io.Writer, result *model.Result) error {
	head, body, err := rows(result)
	if err != nil {
		return err
	}
	writeRow := func(cells []string) {
		fmt.Fprint(w, "|")
		for _, c := range cells {
			fmt.Fprintf(w, " %s |", c)
		}
		fmt.Fprintln(w)
	}
	writeRow(head)
	fmt.Fprint(w, "|")
	for range head {
		fmt.Fprint(w, "---|")
	}
	fmt.Fprintln(w)
	for _, row := range body {
		writeRow(row)
	}
	return nil
}

// formatFloatAttr trims a float for SVG attributes.
func formatFloatAttr(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
