package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated       *prometheus.CounterVec
	transactionCreateDuration prometheus.Histogram
	transactionsCategorized   *prometheus.CounterVec
	classifierOutcomes        *prometheus.CounterVec
	reportsGenerated          *prometheus.CounterVec
	reportDuration            prometheus.Histogram
	scheduledReportRuns       *prometheus.CounterVec
	scheduledRunDuration      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"direction", "state"},
		),
		transactionCreateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_create_duration_milliseconds",
				Help:    "Transaction recording duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsCategorized: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_categorized_total",
				Help: "Total number of category assignments by source",
			},
			[]string{"source"},
		),
		classifierOutcomes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_outcomes_total",
				Help: "Total number of classifier decisions by rule and result",
			},
			[]string{"rule", "result"},
		),
		reportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generation attempts",
			},
			[]string{"window", "format", "outcome"},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		scheduledReportRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scheduled_report_runs_total",
				Help: "Total number of scheduled per-user report runs",
			},
			[]string{"window", "outcome"},
		),
		scheduledRunDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scheduled_run_duration_seconds",
				Help:    "Full scheduler sweep duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions.created":
		m.transactionsCreated.WithLabelValues(tags["direction"], tags["state"]).Inc()
	case "transactions.categorized":
		if source := tags["source"]; source != "" {
			m.transactionsCategorized.WithLabelValues(source).Inc()
		}
	case "classifier.outcome":
		m.classifierOutcomes.WithLabelValues(tags["rule"], tags["status"]).Inc()
	case "reports.generated":
		m.reportsGenerated.WithLabelValues(tags["window"], tags["format"], tags["outcome"]).Inc()
	case "scheduler.report_run":
		m.scheduledReportRuns.WithLabelValues(tags["window"], tags["outcome"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transactions.create":
		m.transactionCreateDuration.Observe(float64(duration.Milliseconds()))
	case "reports.generate":
		m.reportDuration.Observe(float64(duration.Milliseconds()))
	case "scheduler.sweep":
		m.scheduledRunDuration.Observe(duration.Seconds())
	}
}
