package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auto_api_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})

	CarsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auto_api_cars_purged_total",
		Help: "Cars hard-deleted by the purge scheduler.",
	})

	CarsPurgeFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auto_api_cars_purge_failed_total",
		Help: "Purge attempts that failed, e.g. lost races against direct deletes.",
	})

	QueueMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auto_api_queue_messages_total",
		Help: "Queue messages by METHOD and outcome.",
	}, []string{"method", "outcome"})
)
