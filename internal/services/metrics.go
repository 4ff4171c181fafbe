package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_upload_files_total",
			Help: "Uploaded files by outcome",
		},
		[]string{"outcome"},
	)

	screeningRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_screening_runs_total",
			Help: "Screening runs by result",
		},
		[]string{"result"},
	)

	screeningDuration = promauto.NewSummary(
		prometheus.SummaryOpts{
			Name: "cv_screening_duration_seconds",
			Help: "Duration of a whole screening run in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
	)

	downloadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cv_download_failures_total",
			Help: "CV downloads that degraded to a placeholder",
		},
	)

	upstreamErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_upstream_errors_total",
			Help: "Model provider failures by kind",
		},
		[]string{"kind"},
	)

	contractViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_contract_violations_total",
			Help: "Results whose status disagrees with the score threshold or whose score is out of range",
		},
	)

	notificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Best-effort notifications that could not be delivered",
		},
		[]string{"sink", "event"},
	)

	cleanupAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_cleanup_attempts_total",
			Help: "Retried object deletions by result",
		},
		[]string{"result"},
	)
)
