// Package pipeline provides helpers for reading and writing labeled point
// streams via stdin/stdout in JSONL format — the canonical pipe format.
package pipeline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pennyplot/pennyplot/internal/model"
)

// ReadPoints reads JSONL records from r (stdin) and returns the series ID
// and slice of points. Each line must be a JSON object with at least a
// "value" field; "label" and the optional presentation fields pass through.
func ReadPoints(r io.Reader) (string, []model.Point, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	type row struct {
		SeriesID       string   `json:"series_id"`
		Label          string   `json:"label"`
		Value          *float64 `json:"value"`
		Color          string   `json:"color"`
		Secondary      float64  `json:"secondary"`
		SecondaryColor string   `json:"secondary_color"`
		Icon           string   `json:"icon"`
	}

	var (
		points   []model.Point
		seriesID string
		lineNum  int
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var rec row
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return "", nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		if seriesID == "" && rec.SeriesID != "" {
			seriesID = rec.SeriesID
		}
		if rec.Value == nil {
			return "", nil, fmt.Errorf("line %d: missing value field", lineNum)
		}
		points = append(points, model.Point{
			Label:          rec.Label,
			Value:          *rec.Value,
			Color:          rec.Color,
			Secondary:      rec.Secondary,
			SecondaryColor: rec.SecondaryColor,
			Icon:           rec.Icon,
		})
	}
	if err := scanner.Err(); err != nil {
		return "", nil, fmt.Errorf("reading input: %w", err)
	}
	if len(points) == 0 {
		return "", nil, fmt.Errorf("no points read from input (is stdin empty?)")
	}
	return seriesID, points, nil
}

// ReadCategories reads JSONL category records from r for breakdown charts.
// Each line needs "name" and "amount"; "budget" and "trend" are optional.
func ReadCategories(r io.Reader) ([]model.CategoryItem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	type row struct {
		Name   string   `json:"name"`
		Label  string   `json:"label"` // accepted alias for name
		Amount *float64 `json:"amount"`
		Value  *float64 `json:"value"` // accepted alias for amount
		Budget float64  `json:"budget"`
		Trend  string   `json:"trend"`
		Color  string   `json:"color"`
		Icon   string   `json:"icon"`
	}

	var (
		items   []model.CategoryItem
		lineNum int
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var rec row
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		name := rec.Name
		if name == "" {
			name = rec.Label
		}
		amount := rec.Amount
		if amount == nil {
			amount = rec.Value
		}
		if amount == nil {
			return nil, fmt.Errorf("line %d: missing amount field", lineNum)
		}
		trend, err := model.ParseTrend(rec.Trend)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		items = append(items, model.CategoryItem{
			Name:   name,
			Amount: *amount,
			Budget: rec.Budget,
			Trend:  trend,
			Color:  rec.Color,
			Icon:   rec.Icon,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no categories read from input (is stdin empty?)")
	}
	return items, nil
}

// WriteJSONL writes a series as JSONL to w, one point per line.
func WriteJSONL(w io.Writer, s model.Series) error {
	enc := json.NewEncoder(w)
	for _, p := range s.Points {
		rec := map[string]interface{}{
			"series_id": s.ID,
			"label":     p.Label,
			"value":     p.Value,
		}
		if p.Secondary != 0 {
			rec["secondary"] = p.Secondary
		}
		if p.Color != "" {
			rec["color"] = p.Color
		}
		if p.Icon != "" {
			rec["icon"] = p.Icon
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteCategoriesJSONL writes category items as JSONL to w.
func WriteCategoriesJSONL(w io.Writer, items []model.CategoryItem) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}

// IsTTY returns true if stdin is an interactive terminal rather than a
// pipe or redirected file.
func IsTTY() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
