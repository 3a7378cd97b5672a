package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsAllowed   prometheus.Counter
	RequestsThrottled prometheus.Counter
	CheckFailures     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		RequestsAllowed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cardcheck_ratelimit_requests_allowed_total",
			Help: "Total number of requests admitted by the rate limiter",
		}),
		RequestsThrottled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cardcheck_ratelimit_requests_throttled_total",
			Help: "Total number of requests rejected with 429",
		}),
		CheckFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cardcheck_ratelimit_check_failures_total",
			Help: "Total number of rate limit checks that failed open",
		}),
	}
}

func (m *Metrics) IncrementAllowed() {
	m.RequestsAllowed.Inc()
}

func (m *Metrics) IncrementThrottled() {
	m.RequestsThrottled.Inc()
}

func (m *Metrics) IncrementCheckFailures() {
	m.CheckFailures.Inc()
}
