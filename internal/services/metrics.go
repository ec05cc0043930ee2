package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the assistant core
type Metrics struct {
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	dispatchInFlight prometheus.Gauge
	documentsReady   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_dispatch_total",
			Help: "Dispatched assistant responses by kind and outcome.",
		}, []string{"kind", "outcome"}),
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "claims_dispatch_duration_seconds",
			Help:    "Time from send to assistant reply.",
			Buckets: []float64{0.1, 0.25, 0.5, 0.8, 1, 1.2, 1.5, 2, 5},
		}, []string{"kind"}),
		dispatchInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "claims_dispatch_in_flight",
			Help: "Dispatches waiting for an assistant reply.",
		}),
		documentsReady: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "claims_documents_ready_total",
			Help: "Uploaded documents that finished processing.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.dispatchTotal, m.dispatchDuration, m.dispatchInFlight, m.documentsReady)
	}
	return m
}

func (m *Metrics) dispatchStarted() {
	if m == nil {
		return
	}
	m.dispatchInFlight.Inc()
}

func (m *Metrics) dispatchFinished(kind RequestKind, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.dispatchInFlight.Dec()
	m.dispatchTotal.WithLabelValues(string(kind), outcome).Inc()
	if outcome == outcomeOK {
		m.dispatchDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	}
}

// DocumentReady counts a document transition to Ready
func (m *Metrics) DocumentReady() {
	if m == nil {
		return
	}
	m.documentsReady.Inc()
}
