package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "submissions_received_total",
			Help: "Total number of application submissions received",
		},
	)

	SubmissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_completed_total",
			Help: "Total number of submissions by terminal outcome",
		},
		[]string{"outcome"},
	)

	DispatchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_attempts_total",
			Help: "Total number of delivery attempts by channel and status",
		},
		[]string{"channel", "status"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dispatch_duration_seconds",
			Help: "Duration of channel delivery attempts in seconds",
		},
		[]string{"channel"},
	)
)
