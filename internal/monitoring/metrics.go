package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Evolution metrics
	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "genepool_generations_total",
			Help: "Total number of generations advanced",
		},
	)

	evaluationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "genepool_evaluations_total",
			Help: "Total number of individual fitness evaluations",
		},
	)

	// Population metrics
	bestFitness = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "genepool_best_fitness",
			Help: "Best fitness in the current generation",
		},
		[]string{"fitness_fn"},
	)

	avgFitness = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "genepool_avg_fitness",
			Help: "Average fitness of the current generation",
		},
		[]string{"fitness_fn"},
	)

	populationSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "genepool_population_size",
			Help: "Number of individuals in the population",
		},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(generationsTotal)
	prometheus.MustRegister(evaluationsTotal)
	prometheus.MustRegister(bestFitness)
	prometheus.MustRegister(avgFitness)
	prometheus.MustRegister(populationSize)
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

// RecordEvaluation records one evaluation pass over a population
func RecordEvaluation(fitnessFn string, size int, best, avg float64) {
	evaluationsTotal.Add(float64(size))
	populationSize.Set(float64(size))
	bestFitness.WithLabelValues(fitnessFn).Set(best)
	avgFitness.WithLabelValues(fitnessFn).Set(avg)
}

// RecordGeneration records one generational replacement
func RecordGeneration() {
	generationsTotal.Inc()
}

// StartMetricsServer serves /metrics and /healthz on the given address in
// the background. Errors are reported on the returned channel.
func StartMetricsServer(addr string, health *HealthChecker) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", NewMetricsHandler())
		if health != nil {
			mux.Handle("/healthz", health)
		}
		errCh <- http.ListenAndServe(addr, mux)
	}()
	return errCh
}
