package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration   *prometheus.HistogramVec
	dbConnectionsOpen *prometheus.GaugeVec
	dbConnectionsIdle *prometheus.GaugeVec
	dbConnectionsUsed *prometheus.GaugeVec
}

// New создает и регистрирует коллектор метрик
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Open database connections.",
		}, []string{"service"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Idle database connections.",
		}, []string{"service"}),

		dbConnectionsUsed: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "Database connections currently in use.",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats публикует состояние пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnectionsOpen.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.dbConnectionsIdle.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
	m.dbConnectionsUsed.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
}
