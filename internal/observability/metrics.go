package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// visualization service.
type Metrics struct {
	DatasetRows     prometheus.Gauge
	RowsSkipped     prometheus.Gauge
	NullTimestamps  prometheus.Gauge
	DatasetLoadedAt prometheus.Gauge

	FigureRequests prometheus.Counter
	FigureDuration prometheus.Histogram
	PointsRendered prometheus.Histogram

	SelectionClicks prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.DatasetRows,
		m.RowsSkipped,
		m.NullTimestamps,
		m.DatasetLoadedAt,
		m.FigureRequests,
		m.FigureDuration,
		m.PointsRendered,
		m.SelectionClicks,
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
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "omni_viz",
			Name:      "dataset_rows",
			Help:      "Number of records in the loaded dataset.",
		}),
		RowsSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "omni_viz",
			Name:      "dataset_rows_skipped",
			Help:      "Lines dropped during parse for a wrong field count.",
		}),
		NullTimestamps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "omni_viz",
			Name:      "dataset_null_timestamps",
			Help:      "Rows retained with an uncomposable timestamp.",
		}),
		DatasetLoadedAt: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "omni_viz",
			Name:      "dataset_loaded_timestamp_seconds",
			Help:      "Unix time at which the dataset snapshot was loaded.",
		}),
		FigureRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "omni_viz",
			Name:      "figure_requests_total",
			Help:      "Total figure recomputations requested.",
		}),
		FigureDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "omni_viz",
			Name:      "figure_request_duration_seconds",
			Help:      "Duration of a filter-and-render cycle.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		PointsRendered: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "omni_viz",
			Name:      "points_rendered",
			Help:      "Points per rendered figure.",
			Buckets:   []float64{0, 10, 100, 500, 1000, 5000, 10000, 50000},
		}),
		SelectionClicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "omni_viz",
			Name:      "selection_clicks_total",
			Help:      "Point click events echoed back to the user.",
		}),
	}
}
