package dataset

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/pennyplot/pennyplot/internal/model"
)

// FeedOptions controls the live demo stream.
type FeedOptions struct {
	Seed    int64
	PerSec  float64 // events per second, <=0 means 2
	Count   int     // total events, <=0 means unbounded
	Verbose bool
}

// Feed writes a stream of synthetic expense events to w as JSONL, one
// point per line, paced by a rate limiter. It returns when Count events
// have been written or the context is canceled.
func Feed(ctx context.Context, w io.Writer, opts FeedOptions) error {
	perSec := opts.PerSec
	if perSec <= 0 {
		perSec = 2
	}
	limiter := rate.NewLimiter(rate.Limit(perSec), 1)
	rng := rand.New(rand.NewSource(opts.Seed))
	enc := json.NewEncoder(w)

	for n := 0; opts.Count <= 0 || n < opts.Count; n++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c := catalog[rng.Intn(len(catalog))]
		m := moods[rng.Intn(len(moods))]
		p := model.Point{
			Label: c.Name,
			Value: jitter(rng, c.Base/20, 0.6),
			Color: c.Color,
			Icon:  m.Name,
		}
		if err := enc.Encode(p); err != nil {
			return err
		}
		if opts.Verbose {
			slog.Info("feed event",
				"n", n+1, "category", c.Name, "mood", m.Name, "amount", p.Value,
				"at", time.Now().Format(time.RFC3339))
		}
	}
	return nil
}
