// Package benchmarks measures the hot paths a dashboard redraw hits on
// every frame: geometry computation and JSONL encode/decode. Everything
// runs on generated data — no fixtures, no network.
//
//	go test ./tests/benchmarks/... -bench=. -benchmem -count=10 | tee base.txt
//	benchstat base.txt after.txt
package benchmarks_test

import (
	"bytes"
	"testing"

	"github.com/pennyplot/pennyplot/internal/dataset"
	"github.com/pennyplot/pennyplot/internal/geom"
	"github.com/pennyplot/pennyplot/internal/model"
	"github.com/pennyplot/pennyplot/internal/pipeline"
)

func points(n int) []model.Point {
	s := dataset.Daily(dataset.DefaultSeed, n)
	return s.Points
}

// ─── Geometry ─────────────────────────────────────────────────────────────────

func BenchmarkBars30(b *testing.B) {
	pts := points(30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geom.Bars(pts, geom.BarOptions{Height: 200})
	}
}

func BenchmarkPolyline365(b *testing.B) {
	pts := points(365)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geom.PolylineOf(pts, geom.PolylineOptions{Width: 300, Height: 80, Stroke: 2})
	}
}

func BenchmarkSegments(b *testing.B) {
	pts := dataset.ByMood(dataset.DefaultSeed).Points
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geom.Segments(pts, nil)
	}
}

func BenchmarkBreakdown(b *testing.B) {
	items := dataset.Categories(dataset.DefaultSeed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geom.Breakdown(items, geom.BreakdownOptions{MaxItems: 6})
	}
}

// ─── Pipeline codec ───────────────────────────────────────────────────────────

func BenchmarkWriteJSONL(b *testing.B) {
	s := dataset.Daily(dataset.DefaultSeed, 365)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := pipeline.WriteJSONL(&buf, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadPoints(b *testing.B) {
	var buf bytes.Buffer
	if err := pipeline.WriteJSONL(&buf, dataset.Daily(dataset.DefaultSeed, 365)); err != nil {
		b.Fatal(err)
	}
	raw := buf.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := pipeline.ReadPoints(bytes.NewReader(raw)); err != nil {
			b.Fatal(err)
		}
	}
}
