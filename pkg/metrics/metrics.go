package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics клиентские метрики обращений к API бронирования
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal        *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	RequestsInFlight     prometheus.Gauge
	AvailabilityFallback prometheus.Counter
	BookingsCreated      prometheus.Counter
	BookingsCancelled    prometheus.Counter
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_api_requests_total",
			Help:        "Total number of requests sent to the booking API",
			ConstLabels: labels,
		}, []string{"code", "method"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "booking_api_request_duration_seconds",
			Help:        "Duration of requests sent to the booking API",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"code", "method"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_api_requests_in_flight",
			Help:        "Number of in-flight requests to the booking API",
			ConstLabels: labels,
		}),
		AvailabilityFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "availability_fallback_total",
			Help:        "Number of availability fetches that fell back to an all-open grid",
			ConstLabels: labels,
		}),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of bookings created by this client",
			ConstLabels: labels,
		}),
		BookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Number of bookings cancelled by this client",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.RequestsInFlight,
		m.AvailabilityFallback,
		m.BookingsCreated,
		m.BookingsCancelled,
	)

	return m
}

// Registry возвращает registry с метриками клиента
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// InstrumentRoundTripper оборачивает транспорт сбором метрик запросов
func (m *Metrics) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperInFlight(m.RequestsInFlight,
		promhttp.InstrumentRoundTripperCounter(m.RequestsTotal,
			promhttp.InstrumentRoundTripperDuration(m.RequestDuration, next),
		),
	)
}

// RecordAvailabilityFallback фиксирует деградацию получения доступных слотов
func (m *Metrics) RecordAvailabilityFallback() {
	m.AvailabilityFallback.Inc()
}

// RecordBookingCreated фиксирует созданное бронирование
func (m *Metrics) RecordBookingCreated() {
	m.BookingsCreated.Inc()
}

// RecordBookingCancelled фиксирует отмененное бронирование
func (m *Metrics) RecordBookingCancelled() {
	m.BookingsCancelled.Inc()
}

// WriteToTextfile сохраняет метрики в формате textfile-коллектора node_exporter
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
