// Package health provides health checks and Kubernetes-style probes for the
// planforge HTTP server.
package health

import (
	"context"
	"sync"
	"time"
)

// Checker defines the interface for health checks.
type Checker interface {
	// Name returns the unique name of this health check.
	Name() string

	// Check performs the health check and returns the result.
	// It should respect the context deadline and return quickly.
	Check(ctx context.Context) *Result
}

// Status represents the health check status.
type Status string

const (
	// StatusHealthy indicates the checked component is fully operational.
	StatusHealthy Status = "healthy"

	// StatusDegraded indicates the component is partially working.
	StatusDegraded Status = "degraded"

	// StatusUnhealthy indicates the component is not working.
	StatusUnhealthy Status = "unhealthy"
)

// Result represents the result of a health check.
type Result struct {
	Status  Status         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Latency time.Duration  `json:"latency,omitempty"`
}

// Healthy creates a healthy result with the given message.
func Healthy(message string) *Result {
	return &Result{Status: StatusHealthy, Message: message}
}

// Unhealthy creates an unhealthy result with the given message.
func Unhealthy(message string) *Result {
	return &Result{Status: StatusUnhealthy, Message: message}
}

// Manager coordinates health checks and aggregates results.
// Checks run in parallel, each bounded by the configured timeout.
type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

// NewManager creates a manager with a default 5-second per-check timeout.
func NewManager() *Manager {
	return &Manager{
		timeout: 5 * time.Second,
	}
}

// AddChecker registers a new health checker.
func (m *Manager) AddChecker(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers = append(m.checkers, checker)
}

// Check runs all registered health checks in parallel and returns a map of
// checker name to result.
func (m *Manager) Check(ctx context.Context) map[string]*Result {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	timeout := m.timeout
	m.mu.RUnlock()

	results := make(map[string]*Result)
	var resultsMu sync.Mutex
	var wg sync.WaitGroup

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			result := c.Check(checkCtx)
			result.Latency = time.Since(start)

			resultsMu.Lock()
			results[c.Name()] = result
			resultsMu.Unlock()
		}(checker)
	}

	wg.Wait()
	return results
}

// OverallStatus determines the overall system health from all check results:
// unhealthy dominates, then degraded, then healthy.
func (m *Manager) OverallStatus(results map[string]*Result) Status {
	if len(results) == 0 {
		return StatusHealthy
	}

	hasDegraded := false
	for _, result := range results {
		if result.Status == StatusUnhealthy {
			return StatusUnhealthy
		}
		if result.Status == StatusDegraded {
			hasDegraded = true
		}
	}

	if hasDegraded {
		return StatusDegraded
	}
	return StatusHealthy
}
