package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJobName = "esg_catalog"

// Metrics holds the Prometheus metrics of a catalog update run.
type Metrics struct {
	Sources          prometheus.Gauge
	MergeRecords     *prometheus.CounterVec
	LastUpdate       prometheus.Gauge
	SinkErrors       *prometheus.CounterVec
	URLsSeeded       prometheus.Counter
	CrawlQueueLength prometheus.Gauge

	registry *prometheus.Registry
}

// New registers the run metrics on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Sources: factory.NewGauge(prometheus.GaugeOpts{
			Name: "esg_catalog_sources",
			Help: "Number of sources in the saved catalog document.",
		}),
		MergeRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "esg_catalog_merge_records_total",
			Help: "Records handled by the merge, by outcome.",
		}, []string{"outcome"}), // added, replaced, retained
		LastUpdate: factory.NewGauge(prometheus.GaugeOpts{
			Name: "esg_catalog_last_update_timestamp_seconds",
			Help: "Unix time of the last successful catalog save.",
		}),
		SinkErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "esg_catalog_sink_errors_total",
			Help: "Failures while publishing the catalog to a sink.",
		}, []string{"sink"}),
		URLsSeeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "esg_catalog_urls_seeded_total",
			Help: "Source URLs pushed onto the crawl queue.",
		}),
		CrawlQueueLength: factory.NewGauge(prometheus.GaugeOpts{
			Name: "esg_catalog_crawl_queue_length",
			Help: "Length of the crawl queue after seeding.",
		}),
		registry: reg,
	}
}

// ObserveMerge records the outcome of one merge and save.
func (m *Metrics) ObserveMerge(added, replaced, retained, total int, savedAt time.Time) {
	m.MergeRecords.WithLabelValues("added").Add(float64(added))
	m.MergeRecords.WithLabelValues("replaced").Add(float64(replaced))
	m.MergeRecords.WithLabelValues("retained").Add(float64(retained))
	m.Sources.Set(float64(total))
	m.LastUpdate.Set(float64(savedAt.UnixNano()) / float64(time.Second))
}

// IncSinkErrors counts a failed publish to the named sink.
func (m *Metrics) IncSinkErrors(sink string) {
	m.SinkErrors.WithLabelValues(sink).Inc()
}

// Export writes the metrics to a node-exporter textfile and/or pushes them to
// a Pushgateway. Empty targets are skipped.
func (m *Metrics) Export(ctx context.Context, textfile, pushgatewayURL string) error {
	var errs []error
	if textfile != "" {
		if err := prometheus.WriteToTextfile(textfile, m.registry); err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics textfile: %w", err))
		}
	}
	if pushgatewayURL != "" {
		if err := push.New(pushgatewayURL, pushJobName).Gatherer(m.registry).PushContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to push metrics: %w", err))
		}
	}
	return errors.Join(errs...)
}
