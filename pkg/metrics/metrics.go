package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookingsSubmitted prometheus.Counter
	bookingsRejected  *prometheus.CounterVec
	bookingsConfirmed prometheus.Counter
	exports           *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном registry (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		bookingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Bookings accepted from the submission form",
			ConstLabels: constLabels,
		}),

		bookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Submissions rejected by validation or admission",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		bookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Bookings switched from pending to confirmed",
			ConstLabels: constLabels,
		}),

		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "exports_total",
			Help:        "Spreadsheet exports by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookingsSubmitted,
		m.bookingsRejected,
		m.bookingsConfirmed,
		m.exports,
	)

	return m
}

// ObserveHTTPRequest учитывает один HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingSubmitted() {
	m.bookingsSubmitted.Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncBookingConfirmed() {
	m.bookingsConfirmed.Inc()
}

func (m *Metrics) IncExport(result string) {
	m.exports.WithLabelValues(result).Inc()
}

// Noop заглушка, когда метрики выключены
type Noop struct{}

func (Noop) IncBookingSubmitted()      {}
func (Noop) IncBookingRejected(string) {}
func (Noop) IncBookingConfirmed()      {}
func (Noop) IncExport(string)          {}
