// Package metrics содержит счётчики Prometheus, отдаваемые на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "training_http_requests_total",
		Help: "HTTP-запросы по маршруту, методу и статусу.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "training_http_request_duration_seconds",
		Help:    "Длительность обработки HTTP-запросов.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"route", "method"})

	TokenOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "training_strava_token_operations_total",
		Help: "Операции с токенами Strava: exchange, refresh, revoke.",
	}, []string{"operation", "result"})

	StravaAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "training_strava_api_requests_total",
		Help: "Запросы к REST API Strava по результату.",
	}, []string{"endpoint", "result"})

	PlanGenerations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "training_plan_generations_total",
		Help: "Генерации плана тренировок по результату.",
	}, []string{"result"})
)

const (
	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultInvalid = "invalid"
)
