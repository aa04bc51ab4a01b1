// Package metrics exposes engine activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	_ engine.Observer        = (*EngineMetrics)(nil)
	_ engine.CommandObserver = (*EngineMetrics)(nil)
)

// EngineMetrics records engine notifications and runner command outcomes.
type EngineMetrics struct {
	// Labels: command, outcome
	commandsTotal *prometheus.CounterVec
	// Labels: command
	commandDuration *prometheus.HistogramVec

	lowStockTotal *prometheus.CounterVec
	// Labels: outcome
	restocksTotal     *prometheus.CounterVec
	requestsCompleted prometheus.Counter

	pendingRequests prometheus.Gauge
	pendingWorkers  prometheus.Gauge
	pendingRestocks prometheus.Gauge
}

// NewEngineMetrics registers every collector with registry, or with the
// default registerer when registry is nil.
func NewEngineMetrics(registry prometheus.Registerer) *EngineMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &EngineMetrics{
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_commands_total",
				Help: "Engine commands handled, by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "warehouse_command_duration_seconds",
				Help:    "Time spent applying a command on the engine goroutine",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		lowStockTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_low_stock_total",
				Help: "Low stock signals raised, by SKU",
			},
			[]string{"sku"},
		),
		restocksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warehouse_restocks_total",
				Help: "Replenishments finished, by outcome",
			},
			[]string{"outcome"},
		),
		requestsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_requests_loaded_total",
			Help: "Picking requests that reached the truck",
		}),
		pendingRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warehouse_pending_requests",
			Help: "Requests waiting for a worker",
		}),
		pendingWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warehouse_pending_workers",
			Help: "Idle workers waiting for a request",
		}),
		pendingRestocks: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warehouse_pending_restocks",
			Help: "SKUs queued for replenishment",
		}),
	}
}

func (m *EngineMetrics) CommandHandled(name string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	m.commandsTotal.WithLabelValues(name, outcome).Inc()
	m.commandDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (m *EngineMetrics) LowStock(sku kernel.SKU) {
	m.lowStockTotal.WithLabelValues(sku.String()).Inc()
}

func (m *EngineMetrics) Restocked(_ kernel.SKU, committed bool) {
	outcome := "committed"
	if !committed {
		outcome = "rejected"
	}
	m.restocksTotal.WithLabelValues(outcome).Inc()
}

func (m *EngineMetrics) RequestCompleted(*request.PickingRequest) {
	m.requestsCompleted.Inc()
}

func (m *EngineMetrics) QueueDepths(requests, workers, restocks int) {
	m.pendingRequests.Set(float64(requests))
	m.pendingWorkers.Set(float64(workers))
	m.pendingRestocks.Set(float64(restocks))
}

// Handler serves the collectors of gatherer in the text exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
