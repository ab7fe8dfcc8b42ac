package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	Turns               *prometheus.CounterVec
	Emergencies         *prometheus.CounterVec
	InteractionWarnings prometheus.Counter
	TokensUsed          *prometheus.CounterVec
	StorageFallbacks    prometheus.Counter
	StageLatency        *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Turns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Processed turns by resulting intent.",
		}, []string{"intent"}),
		Emergencies: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergencies_total",
			Help:      "Emergency short-circuits by category.",
		}, []string{"category"}),
		InteractionWarnings: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interaction_warnings_total",
			Help:      "Herb-medication warnings surfaced to users.",
		}),
		TokensUsed: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_tokens_total",
			Help:      "LLM tokens consumed by kind (prompt, completion).",
		}, []string{"kind"}),
		StorageFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_fallbacks_total",
			Help:      "Turns served from the in-memory store after a backend error.",
		}),
		StageLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_latency_ms",
			Help:      "Pipeline stage latency in milliseconds.",
			Buckets:   []float64{5, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"stage"}),
	}
}

func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.StageLatency.WithLabelValues(stage).Observe(float64(d.Milliseconds()))
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
