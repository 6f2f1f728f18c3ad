package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

var startTime = time.Now()

// HealthChecker tracks evolution run progress for the health endpoint
type HealthChecker struct {
	mu          sync.RWMutex
	generation  int
	bestFitness float64
	errors      []string
}

// HealthStatus is the JSON payload served on /healthz
type HealthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Generation  int       `json:"generation"`
	BestFitness float64   `json:"best_fitness"`
	Uptime      string    `json:"uptime"`
	Errors      []string  `json:"errors,omitempty"`
}

// NewHealthChecker creates a health checker with no recorded progress
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		errors: make([]string, 0),
	}
}

// RecordProgress records the latest evaluated generation
func (h *HealthChecker) RecordProgress(generation int, bestFitness float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.generation = generation
	h.bestFitness = bestFitness
}

// RecordError records a run error for the health payload
func (h *HealthChecker) RecordError(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, msg)
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "healthy"
	if len(h.errors) > 0 {
		status = "unhealthy"
		w.WriteHeader(http.StatusInternalServerError)
	}

	health := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		Generation:  h.generation,
		BestFitness: h.bestFitness,
		Uptime:      time.Since(startTime).String(),
		Errors:      h.errors,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
