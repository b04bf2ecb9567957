package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the webcast pipeline.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal            prometheus.Counter
	runFailuresTotal     prometheus.Counter
	eventsScrapedTotal   prometheus.Counter
	streamsResolvedTotal prometheus.Counter
	placeholdersTotal    prometheus.Counter
	forcedEndedTotal     prometheus.Counter
	entries              *prometheus.GaugeVec

	requestsTotal prometheus.Counter
	errorsTotal   prometheus.Counter
}

// New creates and registers Prometheus metrics for the pipeline.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_runs_total",
			Help: "Total number of completed pipeline runs",
		}),
		runFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_run_failures_total",
			Help: "Total number of pipeline runs aborted before writing output",
		}),
		eventsScrapedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_events_scraped_total",
			Help: "Total number of events admitted from the catalog",
		}),
		streamsResolvedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_streams_resolved_total",
			Help: "Total number of playlist entries emitted with a real stream URL",
		}),
		placeholdersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_placeholders_total",
			Help: "Total number of placeholder entries emitted for unresolved events",
		}),
		forcedEndedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_entries_forced_ended_total",
			Help: "Total number of entries ended because they vanished from the catalog",
		}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "webcast_entries",
			Help: "Entries in the last merged document, by lifecycle status",
		}, []string{"status"}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_requests_total",
			Help: "Total number of HTTP requests received in serve mode",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "webcast_request_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
	}

	registry.MustRegister(
		m.runsTotal,
		m.runFailuresTotal,
		m.eventsScrapedTotal,
		m.streamsResolvedTotal,
		m.placeholdersTotal,
		m.forcedEndedTotal,
		m.entries,
		m.requestsTotal,
		m.errorsTotal,
	)
	return m
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() { m.requestsTotal.Inc() }

// IncErrors increments the request error counter.
func (m *Metrics) IncErrors() { m.errorsTotal.Inc() }

// IncRuns increments the completed-runs counter.
func (m *Metrics) IncRuns() { m.runsTotal.Inc() }

// IncRunFailures increments the aborted-runs counter.
func (m *Metrics) IncRunFailures() { m.runFailuresTotal.Inc() }

// AddEventsScraped adds to the admitted-events counter.
func (m *Metrics) AddEventsScraped(n int) { m.eventsScrapedTotal.Add(float64(n)) }

// AddStreamsResolved adds to the resolved-entries counter.
func (m *Metrics) AddStreamsResolved(n int) { m.streamsResolvedTotal.Add(float64(n)) }

// AddPlaceholders adds to the placeholder-entries counter.
func (m *Metrics) AddPlaceholders(n int) { m.placeholdersTotal.Add(float64(n)) }

// AddForcedEnded adds to the forced-ended counter.
func (m *Metrics) AddForcedEnded(n int) { m.forcedEndedTotal.Add(float64(n)) }

// SetEntryCounts sets the per-status entry gauges for the last document.
func (m *Metrics) SetEntryCounts(live, upcoming, ended int) {
	m.entries.WithLabelValues("live").Set(float64(live))
	m.entries.WithLabelValues("upcoming").Set(float64(upcoming))
	m.entries.WithLabelValues("ended").Set(float64(ended))
}

// Handler returns an http.Handler that serves Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
