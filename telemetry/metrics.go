package telemetry

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Namespace = "chainkit"

	SubsystemTx     = "tx"
	SubsystemBlock  = "block"
	SubsystemQuery  = "query"
	SubsystemEngine = "engine"

	LabelMode      = "mode"
	LabelResult    = "result"
	LabelCodespace = "codespace"
	LabelPath      = "path"
	LabelOperation = "operation"

	ResultOK  = "ok"
	ResultErr = "error"
)

// Metrics groups the collectors of one application instance.
type Metrics struct {
	registry *prom.Registry

	TxCounter       *prom.CounterVec
	TxGasUsed       *prom.HistogramVec
	BlockHeight     prom.Gauge
	CommitHistogram prom.Histogram
	QueryCounter    *prom.CounterVec
	EngineCallCount *prom.CounterVec
	EngineCacheMiss prom.Counter
}

// NewMetrics creates the collectors and registers them with a fresh
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prom.NewRegistry(),
		TxCounter: prom.NewCounterVec(
			prom.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemTx,
				Name:      "total",
				Help:      "Total number of processed transactions.",
			},
			[]string{LabelMode, LabelResult, LabelCodespace}),
		TxGasUsed: prom.NewHistogramVec(
			prom.HistogramOpts{
				Namespace: Namespace,
				Subsystem: SubsystemTx,
				Name:      "gas_used",
				Help:      "Histogram of gas used per transaction.",
				Buckets:   prom.ExponentialBuckets(1000, 4, 10),
			},
			[]string{LabelMode}),
		BlockHeight: prom.NewGauge(
			prom.GaugeOpts{
				Namespace: Namespace,
				Subsystem: SubsystemBlock,
				Name:      "height",
				Help:      "Latest committed height.",
			}),
		CommitHistogram: prom.NewHistogram(
			prom.HistogramOpts{
				Namespace: Namespace,
				Subsystem: SubsystemBlock,
				Name:      "commit_seconds",
				Help:      "Histogram of commit latency.",
				Buckets:   prom.DefBuckets,
			}),
		QueryCounter: prom.NewCounterVec(
			prom.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemQuery,
				Name:      "total",
				Help:      "Total number of queries.",
			},
			[]string{LabelPath, LabelResult}),
		EngineCallCount: prom.NewCounterVec(
			prom.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemEngine,
				Name:      "call_total",
				Help:      "Total number of contract engine calls.",
			},
			[]string{LabelOperation, LabelResult}),
		EngineCacheMiss: prom.NewCounter(
			prom.CounterOpts{
				Namespace: Namespace,
				Subsystem: SubsystemEngine,
				Name:      "cache_miss_total",
				Help:      "Total number of compiled code cache misses.",
			}),
	}
	m.registry.MustRegister(
		m.TxCounter,
		m.TxGasUsed,
		m.BlockHeight,
		m.CommitHistogram,
		m.QueryCounter,
		m.EngineCallCount,
		m.EngineCacheMiss,
	)
	return m
}

// Registry exposes the collectors for scraping.
func (m *Metrics) Registry() *prom.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultErr
	}
	return ResultOK
}

// MeasureSince observes the seconds elapsed since start.
func MeasureSince(h prom.Observer, start time.Time) {
	h.Observe(time.Since(start).Seconds())
}
