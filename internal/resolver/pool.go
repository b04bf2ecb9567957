package resolver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"sports-webcast/internal/webcast"
)

// DefaultWorkers bounds how many probe tabs run at once.
const DefaultWorkers = 4

// DefaultBudget is the per-event wait budget for a probe.
const DefaultBudget = 30 * time.Second

// Pool resolves a batch of events concurrently through a shared Prober.
// Each resolution is independent: one exceeding its budget is abandoned as
// an empty result without touching its siblings.
type Pool struct {
	prober  Prober
	workers int
	budget  time.Duration
	log     *slog.Logger
}

// NewPool returns a Pool with at most workers concurrent probes and the
// given per-event budget. Non-positive arguments select the defaults.
func NewPool(prober Prober, workers int, budget time.Duration, log *slog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Pool{prober: prober, workers: workers, budget: budget, log: log}
}

// ResolveAll probes every event and returns the canonicalized URL sets
// keyed by event identity. Completion order is irrelevant; only the pool's
// limiter is shared between workers.
func (p *Pool) ResolveAll(ctx context.Context, events []webcast.Event) map[string][]string {
	results := make(map[string][]string, len(events))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	total := len(events)
	for i, ev := range events {
		g.Go(func() error {
			p.log.Debug("checking event",
				slog.Int("index", i+1),
				slog.Int("total", total),
				slog.String("name", ev.Name),
			)

			probeCtx, cancel := context.WithTimeout(gctx, p.budget)
			defer cancel()

			urls := Select(p.prober.Probe(probeCtx, ev.Iframe))

			mu.Lock()
			results[ev.Key()] = urls
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; resolution failures are empty results.
	_ = g.Wait()

	return results
}
