package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасно вызывать на nil (метрики выключены)
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	slotsGenerated  prometheus.Counter
	windowFallbacks *prometheus.CounterVec
	historyBatches  prometheus.Counter
	changesRecorded *prometheus.CounterVec
	cacheResults    *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает и регистрирует метрики в указанном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		slotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "time_slots_generated_total",
			Help:        "Time slot labels produced for booking UIs.",
			ConstLabels: constLabels,
		}),
		windowFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "working_window_fallbacks_total",
			Help:        "Working windows resolved to the default range.",
			ConstLabels: constLabels,
		}, []string{"reason"}),
		historyBatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_history_batches_total",
			Help:        "Grouped change batches rendered.",
			ConstLabels: constLabels,
		}),
		changesRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_changes_recorded_total",
			Help:        "Field-level reservation change records written.",
			ConstLabels: constLabels,
		}, []string{"change_type"}),
		cacheResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_requests_total",
			Help:        "Cache lookups by result.",
			ConstLabels: constLabels,
		}, []string{"cache", "result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.slotsGenerated,
		m.windowFallbacks,
		m.historyBatches,
		m.changesRecorded,
		m.cacheResults,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues("open").Set(float64(open))
	m.dbConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) AddSlotsGenerated(n int) {
	if m == nil {
		return
	}
	m.slotsGenerated.Add(float64(n))
}

func (m *Metrics) IncWindowFallback(reason string) {
	if m == nil {
		return
	}
	m.windowFallbacks.WithLabelValues(reason).Inc()
}

func (m *Metrics) AddHistoryBatches(n int) {
	if m == nil {
		return
	}
	m.historyBatches.Add(float64(n))
}

func (m *Metrics) AddChangesRecorded(changeType string, n int) {
	if m == nil {
		return
	}
	m.changesRecorded.WithLabelValues(changeType).Add(float64(n))
}

// IncCacheResult result: hit | miss | error
func (m *Metrics) IncCacheResult(cache, result string) {
	if m == nil {
		return
	}
	m.cacheResults.WithLabelValues(cache, result).Inc()
}
