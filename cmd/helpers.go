package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/pennyplot/pennyplot/internal/app"
	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/render"
)

// normaliseID lower-cases and trims a series ID so user input and stored
// keys agree.
func normaliseID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// resolveFormat returns the effective format string, falling back to "term".
func resolveFormat(cfgFormat string) string {
	if globalFlags.Format != "" {
		return globalFlags.Format
	}
	if cfgFormat != "" {
		return cfgFormat
	}
	return render.FormatTerm
}

// chartWidth returns the effective chart width: flag first, then config,
// then 0 so the painter auto-detects.
func chartWidth(deps *app.Deps) int {
	if globalFlags.Width > 0 {
		return globalFlags.Width
	}
	return deps.Config.Width
}

// buildResult wraps chart geometry in the standard result envelope.
func buildResult(kind, command string, data any, items int, warnings []string) *model.Result {
	return &model.Result{
		Kind:        kind,
		GeneratedAt: time.Now(),
		Command:     command,
		Data:        data,
		Warnings:    warnings,
		Stats:       model.ResultStats{Items: items},
	}
}

// printSimpleTable renders a simple table with headers using tablewriter.
// The fill callback receives an add function taking row values.
func printSimpleTable(w io.Writer, headers []string, fill func(add func(...string))) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)

	fill(func(cols ...string) {
		tw.Append(cols)
	})
	tw.Render()
}

// requireID validates that a positional series ID argument is usable.
func requireID(args []string) (string, error) {
	id := normaliseID(args[0])
	if id == "" {
		return "", fmt.Errorf("series ID must not be empty")
	}
	return id, nil
}
