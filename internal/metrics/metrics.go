package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	storageFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_storage_failures_total",
			Help: "Blob store reads or writes that failed or returned unreadable documents.",
		},
		[]string{"op", "key"},
	)

	cartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_mutations_total",
			Help: "Cart and favorites mutations by action.",
		},
		[]string{"action"},
	)

	reconciliationDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_reconciliation_dropped_total",
			Help: "Cart lines and favorites dropped because their product left the catalog.",
		},
		[]string{"store"},
	)

	ordersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Completed checkouts by payment method.",
		},
		[]string{"payment_method"},
	)

	orderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_order_value",
			Help:    "Order totals including shipping.",
			Buckets: []float64{10, 25, 50, 100, 150, 250, 500, 1000},
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordStorageFailure(op, key string) {
	storageFailuresTotal.WithLabelValues(op, key).Inc()
}

func RecordCartMutation(action string) {
	cartMutationsTotal.WithLabelValues(action).Inc()
}

func RecordReconciliationDrop(store string, dropped int) {
	if dropped <= 0 {
		return
	}

	reconciliationDroppedTotal.WithLabelValues(store).Add(float64(dropped))
}

func RecordOrderPlaced(paymentMethod string, total float64) {
	ordersPlacedTotal.WithLabelValues(paymentMethod).Inc()
	orderValue.Observe(total)
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type patternMatcher interface {
	Handler(r *http.Request) (http.Handler, string)
}

// Middleware records request metrics. When next is a *http.ServeMux the
// matched route pattern is used as the path label so that slugs do not
// explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		pathPattern := r.URL.Path
		if mux, ok := next.(patternMatcher); ok {
			if _, pattern := mux.Handler(r); pattern != "" {
				pathPattern = pattern
			}
		}

		defer func() {

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
