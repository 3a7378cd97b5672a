package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ValidationsTotal *prometheus.CounterVec
	IssuersTotal     *prometheus.CounterVec
	CacheHits        prometheus.Counter
	CacheMisses      prometheus.Counter
	Duration         prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_validations_total",
			Help: "Total number of card validations by outcome",
		}, []string{"outcome"}),
		IssuersTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cardcheck_issuers_classified_total",
			Help: "Total number of successful classifications by network",
		}, []string{"issuer"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cardcheck_result_cache_hits_total",
			Help: "Total number of validations served from the result cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cardcheck_result_cache_misses_total",
			Help: "Total number of validations that missed the result cache",
		}),
		Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardcheck_validation_duration_seconds",
			Help:    "Latency of single card validations",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
}

func (m *Metrics) ObserveValidation(outcome string, d time.Duration) {
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
	m.Duration.Observe(d.Seconds())
}

func (m *Metrics) IncrementIssuer(issuer string) {
	m.IssuersTotal.WithLabelValues(issuer).Inc()
}

func (m *Metrics) IncrementCacheHit()  { m.CacheHits.Inc() }
func (m *Metrics) IncrementCacheMiss() { m.CacheMisses.Inc() }
