package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homenest", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "homenest", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homenest", Name: "store_operations_total", Help: "Document store operations."},
		[]string{"collection", "op", "outcome"}, // outcome: ok|error
	)
	AuthOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homenest", Name: "auth_verifications_total", Help: "Bearer credential verifications."},
		[]string{"outcome"}, // outcome: ok|rejected
	)
	ThrottledRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "homenest", Name: "throttled_requests_total", Help: "Requests rejected by the rate limiter."},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, StoreOps, AuthOutcomes, ThrottledRequests)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveStore(collection, op, outcome string) {
	StoreOps.WithLabelValues(collection, op, outcome).Inc()
}

// ObserveAuth records a credential verification; outcome is ok|rejected.
func ObserveAuth(outcome string) {
	AuthOutcomes.WithLabelValues(outcome).Inc()
}

func ObserveThrottle() { ThrottledRequests.Inc() }
