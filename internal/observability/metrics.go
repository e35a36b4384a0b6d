package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счётчики Prometheus движка безопасности
type Metrics struct {
	AnalysesTotal     prometheus.Counter
	IncidentsReported prometheus.Counter
	WeatherFallbacks  prometheus.Counter
	VisionFailures    prometheus.Counter

	// labels: result={hit,miss,error}
	CrimeCache *prometheus.CounterVec
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	return newMetrics(true)
}

// NewMetricsForTesting создает метрики без регистрации - для параллельных тестов
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

func newMetrics(register bool) *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travel_safety",
			Name:      "analyses_total",
			Help:      "Total safety analysis requests completed.",
		}),
		IncidentsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travel_safety",
			Name:      "incidents_reported_total",
			Help:      "Total incident reports appended to the ledger.",
		}),
		WeatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travel_safety",
			Name:      "weather_fallbacks_total",
			Help:      "Analyses that used the fallback weather score.",
		}),
		VisionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "travel_safety",
			Name:      "vision_failures_total",
			Help:      "Image analyses skipped because the vision provider failed.",
		}),
		CrimeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travel_safety",
			Name:      "crime_cache_requests_total",
			Help:      "Crime signal cache lookups by result.",
		}, []string{"result"}),
	}

	if register {
		prometheus.MustRegister(
			m.AnalysesTotal,
			m.IncidentsReported,
			m.WeatherFallbacks,
			m.VisionFailures,
			m.CrimeCache,
		)
	}
	return m
}
