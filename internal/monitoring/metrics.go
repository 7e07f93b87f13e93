package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Validation metrics
	validationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_validations_total",
			Help: "Total number of signal validations by outcome",
		},
		[]string{"outcome"},
	)

	violationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_violations_total",
			Help: "Total number of rule violations by rule",
		},
		[]string{"rule"},
	)

	// Circuit breaker state: 1 halted, 0 active
	breakerHalted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_circuit_breaker_halted",
			Help: "Whether the trading circuit breaker is currently halted",
		},
	)

	breakerTripsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_circuit_breaker_trips_total",
			Help: "Total number of circuit breaker trips",
		},
	)

	// Scoring metrics
	scoreDistribution = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_composite_score",
			Help:    "Distribution of composite instrument scores",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
		[]string{"exchange"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(validationsTotal)
	prometheus.MustRegister(violationsTotal)
	prometheus.MustRegister(breakerHalted)
	prometheus.MustRegister(breakerTripsTotal)
	prometheus.MustRegister(scoreDistribution)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordValidation records a verdict and its violations
func RecordValidation(approved bool, rules []string) {
	outcome := "approved"
	if !approved {
		outcome = "blocked"
	}
	validationsTotal.WithLabelValues(outcome).Inc()
	for _, rule := range rules {
		violationsTotal.WithLabelValues(rule).Inc()
	}
}

// RecordBreakerTrip counts a circuit breaker trip and marks it halted
func RecordBreakerTrip() {
	breakerTripsTotal.Inc()
	breakerHalted.Set(1)
}

// UpdateBreakerState updates the halted gauge from the current status
func UpdateBreakerState(halted bool) {
	if halted {
		breakerHalted.Set(1)
	} else {
		breakerHalted.Set(0)
	}
}

// RecordScore observes a composite score for the given exchange
func RecordScore(exchange string, score float64) {
	scoreDistribution.WithLabelValues(exchange).Observe(score)
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
