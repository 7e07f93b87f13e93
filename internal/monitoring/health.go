package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/quantdesk/trading-advisor/internal/risk"
)

var startTime = time.Now()

// StatusProvider supplies the current risk summary for the health endpoint.
type StatusProvider func() (*risk.Status, error)

// HealthChecker serves the engine's risk status as JSON. Degraded when
// the daily loss or trade count nears its limit, unhealthy while the
// circuit breaker is halted.
type HealthChecker struct {
	mu       sync.RWMutex
	provider StatusProvider
}

// HealthStatus is the JSON payload rendered on /health
type HealthStatus struct {
	Status    string       `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Uptime    string       `json:"uptime"`
	Risk      *risk.Status `json:"risk,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// NewHealthChecker creates a checker over the given status provider.
func NewHealthChecker(provider StatusProvider) *HealthChecker {
	return &HealthChecker{provider: provider}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	provider := h.provider
	h.mu.RUnlock()

	health := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    time.Since(startTime).String(),
	}

	w.Header().Set("Content-Type", "application/json")

	status, err := provider()
	switch {
	case err != nil:
		health.Status = "unhealthy"
		health.Error = err.Error()
		w.WriteHeader(http.StatusInternalServerError)
	case status.CircuitBreaker.IsHalted:
		health.Status = "unhealthy"
		health.Risk = status
		w.WriteHeader(http.StatusServiceUnavailable)
	case !status.IsHealthy:
		health.Status = "degraded"
		health.Risk = status
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		health.Risk = status
	}

	UpdateBreakerState(status != nil && status.CircuitBreaker.IsHalted)

	json.NewEncoder(w).Encode(health)
}
