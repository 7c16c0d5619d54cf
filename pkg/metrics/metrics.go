package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts served requests by route template, method and status
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hello_service_http_requests_total",
		Help: "Total number of HTTP requests served",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records request latency by route template and method
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "hello_service_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// GreetingsTotal counts greetings produced by the hello endpoint
var GreetingsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "hello_service_greetings_total",
		Help: "Total number of greetings returned",
	},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(GreetingsTotal)
}
