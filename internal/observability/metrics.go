package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reviews"

var (
	// HTTPRequests is labelled by the gin route template, never the raw path.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "api", Name: "requests_total",
			Help: "Requests served by the review API, by route template and status.",
		},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "api", Name: "request_seconds",
			Help:    "Time spent serving review API requests.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "restaurant_cache", Name: "events_total",
			Help: "Restaurant read cache lookups and writes (hit, miss, set, del).",
		},
		[]string{"cache", "event"},
	)
	AuditEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "audit", Name: "events_total",
			Help: "Audit trail events by action and outcome (queued, dropped, failed).",
		},
		[]string{"action", "outcome"},
	)
	StoreUnavailable = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "store", Name: "unavailable_total",
			Help: "Requests answered 503 because the database did not answer its ping.",
		},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, AuditEvents, StoreUnavailable)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveAudit(action, outcome string) {
	AuditEvents.WithLabelValues(action, outcome).Inc()
}
