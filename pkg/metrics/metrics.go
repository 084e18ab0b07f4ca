package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты расчёта слотов для метки outcome
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeClosed  = "closed"
	OutcomeInvalid = "invalid"
)

// Metrics набор Prometheus метрик сервиса
// Все методы безопасно вызывать на nil - тогда метрики просто не собираются
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	SlotComputations *prometheus.CounterVec
	SlotsReturned    *prometheus.HistogramVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry (для тестов)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),

		SlotComputations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_computations_total",
			Help:        "Availability computations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SlotsReturned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "slots_returned",
			Help:        "Number of free start times returned per computation",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 5, 10, 20, 30, 45, 60},
		}, []string{}),
	}
}

// ObserveHTTPRequest записывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPool обновляет метрики пула соединений
func (m *Metrics) SetDBPool(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues().Set(float64(open))
	m.DBInUse.WithLabelValues().Set(float64(inUse))
	m.DBIdle.WithLabelValues().Set(float64(idle))
}

// ObserveSlotComputation записывает результат расчёта свободных слотов
func (m *Metrics) ObserveSlotComputation(outcome string, slots int) {
	if m == nil {
		return
	}
	m.SlotComputations.WithLabelValues(outcome).Inc()
	m.SlotsReturned.WithLabelValues().Observe(float64(slots))
}
