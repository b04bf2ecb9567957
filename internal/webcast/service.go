package webcast

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sports-webcast/internal/catalog"
	"sports-webcast/internal/platform/metrics"
)

// CatalogSource fetches the raw event listing.
type CatalogSource interface {
	Streams(ctx context.Context) (*catalog.Feed, error)
}

// Resolver discovers playable media URLs for a batch of events. Results are
// keyed by Event.Key; an event with no discoverable stream simply has no
// entry (or an empty slice) in the map.
type Resolver interface {
	ResolveAll(ctx context.Context, events []Event) map[string][]string
}

// Store is the artifact read/overwrite target. The previous run's document
// is the only state carried between runs.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// RunStatus reports the outcome of the most recent pipeline run.
type RunStatus struct {
	LastRun time.Time `json:"last_run"`
	Events  int       `json:"events"`
	Entries int       `json:"entries"`
	Error   string    `json:"error,omitempty"`
}

// Service runs the scrape → resolve → encode → reconcile → persist pipeline.
// Runs are serialized; the reconcile step is single-threaded by design.
type Service struct {
	catalog  CatalogSource
	resolver Resolver
	store    Store
	norm     *Normalizer
	log      *slog.Logger
	metrics  *metrics.Metrics

	mu   sync.Mutex
	last RunStatus
}

// NewService wires the pipeline. Metrics may be nil to disable recording.
func NewService(src CatalogSource, res Resolver, store Store, log *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		catalog:  src,
		resolver: res,
		store:    store,
		norm:     NewNormalizer(),
		log:      log,
		metrics:  m,
	}
}

// Run executes one full pipeline pass. A catalog fetch failure aborts the
// run before anything is written; every other failure is isolated to the
// event it concerns.
func (s *Service) Run(ctx context.Context) (*RunStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := s.run(ctx)
	if err != nil {
		s.last = RunStatus{LastRun: time.Now(), Error: err.Error()}
		if s.metrics != nil {
			s.metrics.IncRunFailures()
		}
		return nil, err
	}
	s.last = *status
	return status, nil
}

func (s *Service) run(ctx context.Context) (*RunStatus, error) {
	started := time.Now()

	feed, err := s.catalog.Streams(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	events := s.norm.Normalize(feed)
	s.log.Info("catalog normalized",
		slog.Int("events", len(events)),
		slog.String("date", s.norm.Today()),
	)

	urls := s.resolver.ResolveAll(ctx, events)

	date := s.norm.Today()
	fresh := Encode(events, urls, date)

	final, stats := Reconcile(s.readPrior(), fresh, date)

	if err := s.store.Write([]byte(final.Render())); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	s.record(fresh, final, stats, len(events))
	s.log.Info("playlist merged",
		slog.Int("entries", len(final.Entries)),
		slog.Int("carried", stats.Carried),
		slog.Int("forced_ended", stats.ForcedEnded),
		slog.Int("duration_ms", int(time.Since(started).Milliseconds())),
	)

	return &RunStatus{LastRun: started, Events: len(events), Entries: len(final.Entries)}, nil
}

// readPrior recovers the previous document from the artifact. Any read or
// parse irregularity degrades to "no prior state"; the merge must always be
// able to proceed from current-run data alone.
func (s *Service) readPrior() *Document {
	data, err := s.store.Read()
	if err != nil {
		s.log.Debug("no prior artifact", slog.String("error", err.Error()))
		return nil
	}
	return ParseDocument(string(data))
}

// Playlist returns the current artifact content, if any.
func (s *Service) Playlist() ([]byte, bool) {
	data, err := s.store.Read()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// LastStatus returns the most recent run outcome.
func (s *Service) LastStatus() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Service) record(fresh, final *Document, stats MergeStats, events int) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncRuns()
	s.metrics.AddEventsScraped(events)
	s.metrics.AddForcedEnded(stats.ForcedEnded)

	placeholders := 0
	for i := range fresh.Entries {
		if fresh.Entries[i].Status == StatusNoStream {
			placeholders++
		}
	}
	s.metrics.AddPlaceholders(placeholders)
	s.metrics.AddStreamsResolved(len(fresh.Entries) - placeholders)

	var live, upcoming, ended int
	for i := range final.Entries {
		switch final.Entries[i].Status {
		case StatusLive:
			live++
		case StatusEnded:
			ended++
		default:
			upcoming++
		}
	}
	s.metrics.SetEntryCounts(live, upcoming, ended)
}
