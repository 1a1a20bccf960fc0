package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Forecast request outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeEmpty       = "empty"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
)

// Metrics holds the Prometheus collectors for forecast fetching and aggregation.
type Metrics struct {
	ForecastRequests      *prometheus.CounterVec // labels: level={adm1..adm4}, outcome={ok,empty,unavailable,malformed}
	ForecastFetchDuration prometheus.Histogram
	RecordsSkipped        *prometheus.CounterVec // labels: reason={invalid_timestamp,incomplete}
	RegionsLoaded         prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ForecastRequests,
		m.ForecastFetchDuration,
		m.RecordsSkipped,
		m.RegionsLoaded,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cek_cuaca",
			Name:      "forecast_requests_total",
			Help:      "Forecast requests by administrative level and outcome.",
		}, []string{"level", "outcome"}),
		ForecastFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cek_cuaca",
			Name:      "forecast_fetch_duration_seconds",
			Help:      "BMKG API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cek_cuaca",
			Name:      "forecast_records_skipped_total",
			Help:      "Hourly forecast records left out of the daily summaries.",
		}, []string{"reason"}),
		RegionsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cek_cuaca",
			Name:      "provinces_loaded",
			Help:      "Number of provinces in the loaded region hierarchy.",
		}),
	}
}
