// Package metrics exposes prometheus collectors for dispatched JSON-RPC calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jsonrpc_connector"

// maxMethodLabel caps label length so arbitrary client input cannot inflate series names
const maxMethodLabel = 64

// Metrics aggregates connector collectors
type Metrics struct {
	Calls     *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	BatchSize prometheus.Histogram
	InFlight  prometheus.Gauge
}

// ObserveCall records a settled call; code 0 means success
func (m *Metrics) ObserveCall(method string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	method = methodLabel(method)
	m.Calls.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.Latency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveBatch records a batch size
func (m *Metrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.BatchSize.Observe(float64(size))
}

// Begin marks a call in flight and returns its completion func
func (m *Metrics) Begin() func() {
	if m == nil {
		return func() {}
	}
	m.InFlight.Inc()
	return m.InFlight.Dec
}

func methodLabel(method string) string {
	if method == "" {
		return "unknown"
	}
	if len(method) > maxMethodLabel {
		return method[:maxMethodLabel]
	}
	return method
}

// New creates and registers collectors; a nil registerer uses prometheus.DefaultRegisterer
func New(registerer prometheus.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	ret := &Metrics{
		Calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Dispatched JSON-RPC calls by method and response code.",
		}, []string{"method", "code"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Time from dispatch until the backend settled the call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of requests per batch payload.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "calls_in_flight",
			Help:      "Calls dispatched to the backend and not yet settled.",
		}),
	}
	for _, collector := range []prometheus.Collector{ret.Calls, ret.Latency, ret.BatchSize, ret.InFlight} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
