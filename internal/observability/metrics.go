package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a report run.
type Metrics struct {
	SeasonsFetched   prometheus.Counter
	StormsFetched    prometheus.Counter
	StormFetchErrors prometheus.Counter
	PointsParsed     prometheus.Counter
	ReportsWritten   prometheus.Counter
	SummariesSent    prometheus.Counter

	// Source request metrics.
	RequestDuration *prometheus.HistogramVec // labels: query={list,points}

	RunDuration    prometheus.Gauge
	LastRunSuccess prometheus.Gauge
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SeasonsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "seasons_fetched_total",
			Help:      "Seasons whose storm list was fetched.",
		}),
		StormsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "storms_fetched_total",
			Help:      "Storms listed across all fetched seasons.",
		}),
		StormFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "storm_fetch_errors_total",
			Help:      "Storms kept without points because their point query failed.",
		}),
		PointsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "points_parsed_total",
			Help:      "Track points parsed.",
		}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "reports_written_total",
			Help:      "Report files written.",
		}),
		SummariesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typhoon_report",
			Name:      "summaries_published_total",
			Help:      "Season summaries published to Kafka.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "typhoon_report",
			Name:      "source_request_duration_seconds",
			Help:      "Typhoon API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"query"}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "typhoon_report",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		LastRunSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "typhoon_report",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time the last successful run finished.",
		}),
	}
}

// Collectors returns every collector, for registration or pushing.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SeasonsFetched,
		m.StormsFetched,
		m.StormFetchErrors,
		m.PointsParsed,
		m.ReportsWritten,
		m.SummariesSent,
		m.RequestDuration,
		m.RunDuration,
		m.LastRunSuccess,
	}
}
