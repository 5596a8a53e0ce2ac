// Package metrics exposes Prometheus collectors for the authentication
// engine and the reconciliation loop.
//
// All methods are safe to call on a nil *Metrics, so callers that run
// without a registry do not need to guard every call site.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wac"

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the collectors for one process.
type Metrics struct {
	records    *prometheus.CounterVec
	pairs      *prometheus.CounterVec
	connects   *prometheus.CounterVec
	state      prometheus.Gauge
	iterations prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_total",
				Help:      "Service records offered to the engine, by stream.",
			},
			[]string{"stream"},
		),
		pairs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pair_attempts_total",
				Help:      "Pair attempts made against devices, by result.",
			},
			[]string{"result"},
		),
		connects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "connect_attempts_total",
				Help:      "Connect attempts made against devices, by result.",
			},
			[]string{"result"},
		),
		state: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "auth_state",
			Help:      "Current authentication state (0 unpaired, 1 paired, 2 connected).",
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_iterations_total",
			Help:      "Iterations of the reconciliation loop.",
		}),
	}

	for _, c := range []prometheus.Collector{m.records, m.pairs, m.connects, m.state, m.iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRecord counts a record offered on the given stream.
func (m *Metrics) ObserveRecord(stream string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(stream).Inc()
}

// ObservePair counts a pair attempt.
func (m *Metrics) ObservePair(success bool) {
	if m == nil {
		return
	}
	m.pairs.WithLabelValues(result(success)).Inc()
}

// ObserveConnect counts a connect attempt.
func (m *Metrics) ObserveConnect(success bool) {
	if m == nil {
		return
	}
	m.connects.WithLabelValues(result(success)).Inc()
}

// SetState records the numeric authentication state.
func (m *Metrics) SetState(state uint8) {
	if m == nil {
		return
	}
	m.state.Set(float64(state))
}

// ObserveIteration counts one reconciliation loop iteration.
func (m *Metrics) ObserveIteration() {
	if m == nil {
		return
	}
	m.iterations.Inc()
}

func result(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}
