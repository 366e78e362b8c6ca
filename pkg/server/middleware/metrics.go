package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request and export counters on its own registry.
type Metrics struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	exports       *prometheus.CounterVec
	exportLatency prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "destiny",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "destiny",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "destiny",
			Name:      "report_exports_total",
			Help:      "Report exports by outcome.",
		}, []string{"outcome"}),
		exportLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "destiny",
			Name:      "report_export_duration_seconds",
			Help:      "Time spent generating a report.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60},
		}),
	}
	reg.MustRegister(m.requests, m.latency, m.exports, m.exportLatency)
	return m
}

func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(route, req.Method).Observe(time.Since(started).Seconds())
	})
}

// ObserveExport satisfies session.ExportObserver.
func (m *Metrics) ObserveExport(outcome string, elapsed time.Duration) {
	m.exports.WithLabelValues(outcome).Inc()
	m.exportLatency.Observe(elapsed.Seconds())
}
