package dataset

import (
	"bufio"
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/pennyplot/pennyplot/internal/model"
)

func TestDeterministic(t *testing.T) {
	a := Monthly(7, 12)
	b := Monthly(7, 12)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce identical monthly series")
	}
	c := Monthly(8, 12)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should differ")
	}
}

func TestMonthlyBounds(t *testing.T) {
	s := Monthly(DefaultSeed, 6)
	if len(s.Points) != 6 {
		t.Fatalf("points = %d, want 6", len(s.Points))
	}
	if s.Points[0].Label != "Jul" || s.Points[5].Label != "Dec" {
		t.Errorf("labels = %q..%q, want Jul..Dec", s.Points[0].Label, s.Points[5].Label)
	}
	// Silly inputs clamp instead of failing.
	if got := len(Monthly(DefaultSeed, 0).Points); got != 1 {
		t.Errorf("months=0 gave %d points", got)
	}
	if got := len(Monthly(DefaultSeed, 99).Points); got != 12 {
		t.Errorf("months=99 gave %d points", got)
	}
}

func TestCategoriesShape(t *testing.T) {
	items := Categories(DefaultSeed)
	if len(items) == 0 {
		t.Fatal("no categories generated")
	}
	for _, it := range items {
		if it.Name == "" || it.Amount <= 0 {
			t.Errorf("bad item: %+v", it)
		}
		if it.Color == "" || it.Color[0] != '#' {
			t.Errorf("%s: missing color", it.Name)
		}
	}
}

func TestByMoodLabels(t *testing.T) {
	s := ByMood(DefaultSeed)
	seen := map[string]bool{}
	for _, p := range s.Points {
		seen[p.Label] = true
		if p.Value <= 0 {
			t.Errorf("%s: value %g", p.Label, p.Value)
		}
	}
	for _, want := range []string{"stressed", "bored", "happy"} {
		if !seen[want] {
			t.Errorf("missing mood %q", want)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	b, err := GenerateAll(context.Background(), DefaultSeed)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(b.Monthly.Points) != 12 || len(b.Daily.Points) != 30 {
		t.Errorf("bundle sizes: monthly=%d daily=%d",
			len(b.Monthly.Points), len(b.Daily.Points))
	}
	if len(b.Categories) == 0 || len(b.ByMood.Points) == 0 {
		t.Error("bundle missing categories or moods")
	}

	// Concurrency must not break determinism.
	b2, err := GenerateAll(context.Background(), DefaultSeed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b, b2) {
		t.Error("bundle not deterministic")
	}
}

func TestFeedCountAndShape(t *testing.T) {
	var sb strings.Builder
	err := Feed(context.Background(), &sb, FeedOptions{Seed: 1, PerSec: 1000, Count: 5})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	sc := bufio.NewScanner(strings.NewReader(sb.String()))
	n := 0
	for sc.Scan() {
		var p model.Point
		if err := json.Unmarshal(sc.Bytes(), &p); err != nil {
			t.Fatalf("line %d: %v", n+1, err)
		}
		if p.Label == "" || p.Value <= 0 {
			t.Errorf("line %d: bad point %+v", n+1, p)
		}
		n++
	}
	if n != 5 {
		t.Errorf("events = %d, want 5", n)
	}
}

func TestFeedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var sb strings.Builder
	// Low rate so the first Wait blocks on the canceled context.
	if err := Feed(ctx, &sb, FeedOptions{Seed: 1, PerSec: 0.001, Count: 10}); err != nil {
		t.Errorf("canceled feed should return nil, got %v", err)
	}
}
