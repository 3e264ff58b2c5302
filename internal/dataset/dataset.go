// Package dataset generates deterministic sample spending data. All
// generators are seeded, so the same seed always produces the same
// series. Used by the demo commands and by cross-package tests that
// need realistic input without a database.
package dataset

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/pennyplot/pennyplot/internal/model"
)

// DefaultSeed keeps demo output stable across runs.
const DefaultSeed = 42

// catalog mirrors the default expense categories a new user starts with.
type catalogEntry struct {
	Name      string
	Icon      string
	Color     string
	Essential bool
	Base      float64 // typical monthly spend
	Budget    float64 // 0 = no budget set
}

var catalog = []catalogEntry{
	{"Food & Groceries", "shopping-cart", "#4CAF50", true, 420, 450},
	{"Eating Out", "utensils", "#FF9800", false, 260, 200},
	{"Rent/Housing", "home", "#2196F3", true, 1200, 1200},
	{"Utilities", "zap", "#9C27B0", true, 140, 160},
	{"Transportation", "car", "#607D8B", true, 110, 150},
	{"Entertainment", "film", "#E91E63", false, 95, 120},
	{"Shopping", "shopping-bag", "#00BCD4", false, 180, 150},
	{"Healthcare", "heart", "#F44336", true, 60, 0},
	{"Subscriptions", "repeat", "#673AB7", false, 48, 50},
	{"Gifts", "gift", "#CDDC39", false, 35, 0},
}

// moods are the emotional tags expenses carry.
var moods = []struct {
	Name  string
	Share float64 // rough share of tagged spend
}{
	{"stressed", 0.28},
	{"bored", 0.22},
	{"happy", 0.18},
	{"anxious", 0.12},
	{"celebratory", 0.10},
	{"impulsive", 0.10},
}

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// jitter returns base scaled by a random factor in [1-spread, 1+spread],
// rounded to cents.
func jitter(rng *rand.Rand, base, spread float64) float64 {
	f := 1 + (rng.Float64()*2-1)*spread
	return math.Round(base*f*100) / 100
}

// ─── Generators ───────────────────────────────────────────────────────────────

// Categories returns one month of spend per category, with budgets and a
// trend relative to an imagined prior month.
func Categories(seed int64) []model.CategoryItem {
	rng := rand.New(rand.NewSource(seed))
	items := make([]model.CategoryItem, 0, len(catalog))
	for _, c := range catalog {
		amount := jitter(rng, c.Base, 0.35)
		prior := jitter(rng, c.Base, 0.35)
		trend := model.TrendStable
		switch {
		case amount > prior*1.05:
			trend = model.TrendUp
		case amount < prior*0.95:
			trend = model.TrendDown
		}
		items = append(items, model.CategoryItem{
			Name:   c.Name,
			Amount: amount,
			Budget: c.Budget,
			Trend:  trend,
			Color:  c.Color,
			Icon:   c.Icon,
		})
	}
	return items
}

// Monthly returns total spend per month for the given number of trailing
// months, ending in December. A mild upward drift makes trend charts
// interesting.
func Monthly(seed int64, months int) model.Series {
	if months < 1 {
		months = 1
	}
	if months > len(monthLabels) {
		months = len(monthLabels)
	}
	rng := rand.New(rand.NewSource(seed + 1))
	base := 0.0
	for _, c := range catalog {
		base += c.Base
	}
	pts := make([]model.Point, 0, months)
	start := len(monthLabels) - months
	for i := 0; i < months; i++ {
		drift := 1 + 0.02*float64(i)
		pts = append(pts, model.Point{
			Label: monthLabels[start+i],
			Value: jitter(rng, base*drift, 0.12),
		})
	}
	return model.Series{ID: "monthly", Title: "Monthly spending", Points: pts}
}

// Daily returns per-day spend for the given number of days, with weekend
// spikes. Labels are day numbers.
func Daily(seed int64, days int) model.Series {
	if days < 1 {
		days = 1
	}
	rng := rand.New(rand.NewSource(seed + 2))
	pts := make([]model.Point, 0, days)
	for i := 0; i < days; i++ {
		base := 55.0
		if i%7 == 5 || i%7 == 6 {
			base = 95
		}
		pts = append(pts, model.Point{
			Label: fmt.Sprintf("%d", i+1),
			Value: jitter(rng, base, 0.5),
		})
	}
	return model.Series{ID: "daily", Title: "Daily spending", Points: pts}
}

// ByMood splits a month of discretionary spend across emotional tags.
func ByMood(seed int64) model.Series {
	rng := rand.New(rand.NewSource(seed + 3))
	total := 0.0
	for _, c := range catalog {
		if !c.Essential {
			total += c.Base
		}
	}
	pts := make([]model.Point, 0, len(moods))
	for _, m := range moods {
		pts = append(pts, model.Point{
			Label: m.Name,
			Value: jitter(rng, total*m.Share, 0.25),
		})
	}
	return model.Series{ID: "by-mood", Title: "Spending by mood", Points: pts}
}

// ─── Bundle ───────────────────────────────────────────────────────────────────

// Bundle is the full demo dataset.
type Bundle struct {
	Monthly    model.Series
	Daily      model.Series
	ByMood     model.Series
	Categories []model.CategoryItem
}

// GenerateAll builds every demo series concurrently. Each generator has
// its own derived seed so the result does not depend on scheduling.
func GenerateAll(ctx context.Context, seed int64) (*Bundle, error) {
	b := &Bundle{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.Monthly = Monthly(seed, 12)
		return nil
	})
	g.Go(func() error {
		b.Daily = Daily(seed, 30)
		return nil
	})
	g.Go(func() error {
		b.ByMood = ByMood(seed)
		return nil
	})
	g.Go(func() error {
		b.Categories = Categories(seed)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b, nil
}
