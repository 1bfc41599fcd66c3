// Package metrics defines the service's Prometheus collectors. The write
// counters and quota rejections are the observability half of the
// anti-abuse quotas: the ceilings stop runaway writes, the counters tell
// you it's happening.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total users successfully registered",
		},
	)
	ExerciseLogsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercise_logs_created_total",
			Help: "Total exercise logs successfully created",
		},
	)
	QuotaRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quota_rejections_total",
			Help: "Writes rejected by a record-count ceiling",
		},
		[]string{"resource"}, // users|exercise_logs
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(ExerciseLogsCreated)
	prometheus.MustRegister(QuotaRejections)
}
