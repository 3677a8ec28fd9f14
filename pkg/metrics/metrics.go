package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	prometheus.MustRegister(requests, latency)
	return &ServerMetrics{Requests: requests, LatencyMS: latency}
}

// CheckoutMetrics counts fulfillment outcomes. A nil receiver is a no-op so
// the engine can run without a registry in tests.
type CheckoutMetrics struct {
	ReceiptsIssued prometheus.Counter
	LinesGranted   prometheus.Counter
	LinesRejected  prometheus.Counter
	CodeRetries    prometheus.Counter
	NotifyFailures prometheus.Counter
}

func NewCheckoutMetrics() *CheckoutMetrics {
	m := &CheckoutMetrics{
		ReceiptsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront", Subsystem: "checkout",
			Name: "receipts_issued_total", Help: "Receipts successfully issued.",
		}),
		LinesGranted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront", Subsystem: "checkout",
			Name: "lines_granted_total", Help: "Cart lines whose reservation was granted.",
		}),
		LinesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront", Subsystem: "checkout",
			Name: "lines_rejected_total", Help: "Cart lines whose reservation was rejected.",
		}),
		CodeRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront", Subsystem: "checkout",
			Name: "receipt_code_retries_total", Help: "Receipt code collisions retried.",
		}),
		NotifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storefront", Subsystem: "checkout",
			Name: "notify_failures_total", Help: "Best-effort purchase notifications that failed.",
		}),
	}
	prometheus.MustRegister(m.ReceiptsIssued, m.LinesGranted, m.LinesRejected, m.CodeRetries, m.NotifyFailures)
	return m
}

func (m *CheckoutMetrics) AddGranted(n int) {
	if m == nil {
		return
	}
	m.LinesGranted.Add(float64(n))
}

func (m *CheckoutMetrics) AddRejected(n int) {
	if m == nil {
		return
	}
	m.LinesRejected.Add(float64(n))
}

func (m *CheckoutMetrics) IncReceipts() {
	if m == nil {
		return
	}
	m.ReceiptsIssued.Inc()
}

func (m *CheckoutMetrics) IncCodeRetries() {
	if m == nil {
		return
	}
	m.CodeRetries.Inc()
}

func (m *CheckoutMetrics) IncNotifyFailures() {
	if m == nil {
		return
	}
	m.NotifyFailures.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
