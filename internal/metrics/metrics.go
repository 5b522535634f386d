// Package metrics provides Prometheus instrumentation for the triage service.
package metrics

import (
	"context"
	"database/sql"
	"runtime"
	"time"

	"fraudtriage/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fraudtriage"

// PrometheusCollector implements triage.MetricsCollector.
type PrometheusCollector struct {
	operationDuration *prometheus.HistogramVec
	assessments       *prometheus.CounterVec
	riskScores        prometheus.Histogram
	errors            *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec

	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbWaitCount        prometheus.Gauge
	goroutines         prometheus.Gauge
}

// NewPrometheusCollector creates the collectors and registers them with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Triage operation latency in seconds.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Triage decisions by priority.",
		}, []string{"priority"}),
		riskScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribution of model risk scores.",
			Buckets:   []float64{.1, .2, .3, .4, .5, .6, .7, .8, .85, .9, 1},
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Triage errors by operation and reason.",
		}, []string{"operation", "reason"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by entity and result.",
		}, []string{"entity", "result"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_open_connections",
			Help: "Number of open database connections.",
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_in_use_connections",
			Help: "Number of in-use database connections.",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "db_wait_count_total",
			Help: "Total number of connections waited for.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "goroutines",
			Help: "Current number of goroutines.",
		}),
	}

	reg.MustRegister(
		c.operationDuration,
		c.assessments,
		c.riskScores,
		c.errors,
		c.cacheLookups,
		c.dbOpenConnections,
		c.dbInUseConnections,
		c.dbWaitCount,
		c.goroutines,
	)
	return c
}

func (c *PrometheusCollector) RecordOperationDuration(op string, duration time.Duration) {
	c.operationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordAssessment(priority models.Priority, riskScore float64) {
	c.assessments.WithLabelValues(priority.String()).Inc()
	c.riskScores.Observe(riskScore)
}

func (c *PrometheusCollector) RecordError(op, reason string) {
	c.errors.WithLabelValues(op, reason).Inc()
}

func (c *PrometheusCollector) RecordCacheHit(key string) {
	c.cacheLookups.WithLabelValues(key, "hit").Inc()
}

func (c *PrometheusCollector) RecordCacheMiss(key string) {
	c.cacheLookups.WithLabelValues(key, "miss").Inc()
}

// StartDBStatsCollector periodically samples sql.DBStats and the goroutine
// count into gauges. Call in a goroutine; exits when ctx is done.
func (c *PrometheusCollector) StartDBStatsCollector(ctx context.Context, db *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := db.Stats()
			c.dbOpenConnections.Set(float64(stats.OpenConnections))
			c.dbInUseConnections.Set(float64(stats.InUse))
			c.dbWaitCount.Set(float64(stats.WaitCount))
			c.goroutines.Set(float64(runtime.NumGoroutine()))
		}
	}
}

// Handler exposes the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
