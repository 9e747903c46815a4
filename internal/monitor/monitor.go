package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes the match lifecycle counters served on /metrics.
type Metrics struct {
	MatchesCreated prometheus.Counter
	TurnsPlayed    prometheus.Counter
	TurnsRejected  *prometheus.CounterVec
	ActiveMatches  prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		MatchesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_created_total",
			Help:      "Total number of matches created",
		}),
		TurnsPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_played_total",
			Help:      "Total number of valid turns played",
		}),
		TurnsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_rejected_total",
			Help:      "Total number of rejected placements, by feedback",
		}, []string{"feedback"}),
		ActiveMatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_matches",
			Help:      "Number of matches currently in progress",
		}),
	}

	prometheus.MustRegister(
		m.MatchesCreated,
		m.TurnsPlayed,
		m.TurnsRejected,
		m.ActiveMatches,
	)

	return m
}

func (that *Metrics) MatchCreated() {
	that.MatchesCreated.Inc()
	that.ActiveMatches.Inc()
}

func (that *Metrics) MatchFinished() {
	that.ActiveMatches.Dec()
}

func (that *Metrics) TurnPlayed() {
	that.TurnsPlayed.Inc()
}

func (that *Metrics) TurnRejected(feedback string) {
	that.TurnsRejected.WithLabelValues(feedback).Inc()
}
