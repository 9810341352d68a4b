package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "positivizer"

// Metrics holds every collector the service exports. Create one per
// registry; tests use a fresh prometheus.NewRegistry().
type Metrics struct {
	AnalysesTotal       *prometheus.CounterVec
	RewritesTotal       prometheus.Counter
	ReplacedTokensTotal prometheus.Counter
	AntonymCacheTotal   *prometheus.CounterVec
	SpeechTotal         *prometheus.CounterVec
	EventsTotal         *prometheus.CounterVec
	ComponentHealthy    *prometheus.GaugeVec

	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	InFlightGauge   prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by sentiment label.",
		}, []string{"label"}),
		RewritesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewrites_total",
			Help:      "Sentences rewritten with antonyms.",
		}),
		ReplacedTokensTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replaced_tokens_total",
			Help:      "Tokens replaced by an antonym.",
		}),
		AntonymCacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "antonym_cache",
			Name:      "lookups_total",
			Help:      "Antonym cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		SpeechTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "speech",
			Name:      "narrations_total",
			Help:      "Narrations by outcome (ok, failed, skipped).",
		}, []string{"outcome"}),
		EventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Analysis events handed to the sink by status.",
		}, []string{"status"}),
		ComponentHealthy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_healthy",
			Help:      "1 when the last health probe for the component succeeded.",
		}, []string{"component"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		InFlightGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being processed.",
		}),
	}

	reg.MustRegister(
		m.AnalysesTotal,
		m.RewritesTotal,
		m.ReplacedTokensTotal,
		m.AntonymCacheTotal,
		m.SpeechTotal,
		m.EventsTotal,
		m.ComponentHealthy,
		m.RequestDuration,
		m.RequestsTotal,
		m.InFlightGauge,
	)
	return m
}

// NewRegistry returns a registry with the Go runtime and process collectors
// already registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (m *Metrics) SetHealthy(component string, healthy bool) {
	v := 0.0
	if healthy {
		v = 1
	}
	m.ComponentHealthy.WithLabelValues(component).Set(v)
}
