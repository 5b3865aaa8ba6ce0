// Package metrics exposes container verb outcomes as Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/state"
)

const (
	outcomeResolved = "resolved"
	outcomeRejected = "rejected"
)

// PrometheusObserver implements container.Observer on top of Prometheus
// collectors: verbs in flight, settled verb outcomes, and settlement latency.
type PrometheusObserver struct {
	inFlight *prometheus.GaugeVec
	outcomes *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var _ container.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver builds the collectors and registers them with
// registerer. Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewPrometheusObserver(registerer prometheus.Registerer) (*PrometheusObserver, error) {
	observer := &PrometheusObserver{
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "viewstore",
			Name:      "verbs_in_flight",
			Help:      "Asynchronous verbs currently awaiting settlement.",
		}, []string{"verb"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "viewstore",
			Name:      "verb_outcomes_total",
			Help:      "Settled verb invocations by outcome.",
		}, []string{"verb", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "viewstore",
			Name:      "verb_duration_seconds",
			Help:      "Time from verb invocation to settlement.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"verb"}),
	}

	for _, collector := range []prometheus.Collector{observer.inFlight, observer.outcomes, observer.latency} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return observer, nil
}

func (p *PrometheusObserver) VerbStarted(verb state.Action, _ string) {
	p.inFlight.WithLabelValues(string(verb)).Inc()
}

func (p *PrometheusObserver) VerbResolved(verb state.Action, _ string, elapsed time.Duration) {
	p.settled(verb, outcomeResolved, elapsed)
}

func (p *PrometheusObserver) VerbRejected(verb state.Action, _ string, _ string, elapsed time.Duration) {
	p.settled(verb, outcomeRejected, elapsed)
}

func (p *PrometheusObserver) settled(verb state.Action, outcome string, elapsed time.Duration) {
	p.inFlight.WithLabelValues(string(verb)).Dec()
	p.outcomes.WithLabelValues(string(verb), outcome).Inc()
	p.latency.WithLabelValues(string(verb)).Observe(elapsed.Seconds())
}
