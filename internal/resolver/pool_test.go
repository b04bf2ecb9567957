package resolver

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sports-webcast/internal/webcast"
)

type fakeProber struct {
	mu      sync.Mutex
	byURL   map[string][]string
	delay   time.Duration
	active  int32
	maxSeen int32
}

func (f *fakeProber) Probe(ctx context.Context, pageURL string) []string {
	n := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		max := atomic.LoadInt32(&f.maxSeen)
		if n <= max || atomic.CompareAndSwapInt32(&f.maxSeen, max, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(f.delay):
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byURL[pageURL]
}

func poolLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func eventsNamed(names ...string) []webcast.Event {
	out := make([]webcast.Event, 0, len(names))
	for _, name := range names {
		out = append(out, webcast.Event{
			Name:     name,
			Category: webcast.CategoryDarts,
			Iframe:   "https://embed.example/" + name,
		})
	}
	return out
}

func TestPool_ResolveAll(t *testing.T) {
	events := eventsNamed("a", "b")
	prober := &fakeProber{byURL: map[string][]string{
		"https://embed.example/a": {"https://cdn.example/a/index.m3u8"},
	}}
	pool := NewPool(prober, 2, time.Second, poolLogger())

	results := pool.ResolveAll(context.Background(), events)
	if len(results) != 2 {
		t.Fatalf("expected a result per event, got %d", len(results))
	}

	got := results[events[0].Key()]
	if len(got) != 1 || got[0] != "https://cdn.example/a/tracks-v1a1/mono.ts.m3u8" {
		t.Errorf("resolved URLs should be canonicalized: %v", got)
	}
	if urls := results[events[1].Key()]; len(urls) != 0 {
		t.Errorf("unresolvable event should yield an empty set, got %v", urls)
	}
}

func TestPool_budget_exceeded_is_empty_result(t *testing.T) {
	events := eventsNamed("slow")
	prober := &fakeProber{
		byURL: map[string][]string{"https://embed.example/slow": {"https://cdn.example/s/index.m3u8"}},
		delay: 500 * time.Millisecond,
	}
	pool := NewPool(prober, 1, 20*time.Millisecond, poolLogger())

	results := pool.ResolveAll(context.Background(), events)
	if urls := results[events[0].Key()]; len(urls) != 0 {
		t.Errorf("a probe over budget must be abandoned as empty, got %v", urls)
	}
}

func TestPool_unresolvable_does_not_block_siblings(t *testing.T) {
	events := eventsNamed("dead", "fast")
	prober := &fakeProber{
		byURL: map[string][]string{"https://embed.example/fast": {"https://cdn.example/f/index.m3u8"}},
	}
	pool := NewPool(prober, 2, time.Second, poolLogger())

	results := pool.ResolveAll(context.Background(), events)
	if urls := results[events[1].Key()]; len(urls) != 1 {
		t.Errorf("sibling resolution must complete, got %v", urls)
	}
}

func TestPool_respects_worker_limit(t *testing.T) {
	events := eventsNamed("a", "b", "c", "d", "e", "f")
	prober := &fakeProber{delay: 20 * time.Millisecond}
	pool := NewPool(prober, 2, time.Second, poolLogger())

	pool.ResolveAll(context.Background(), events)
	if max := atomic.LoadInt32(&prober.maxSeen); max > 2 {
		t.Errorf("worker limit exceeded: saw %d concurrent probes", max)
	}
}
