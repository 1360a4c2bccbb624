package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when two checkers register under the
// same name.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by adapters that can probe their own
// dependency: the gorm store pings the database, the AI client hits the
// model API's models endpoint. Adapters register at startup.
type HealthChecker interface {
	// Name identifies the component in readiness responses.
	Name() string

	// Check probes the dependency. Nil means healthy. Implementations
	// must respect ctx cancellation.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates checks across adapters and runs them all
// for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker. Fails on a duplicate name.
	Register(checker HealthChecker) error

	// CheckAll runs every registered check concurrently and aggregates
	// the results.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the coarse health state.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult aggregates a CheckAll run. Status is unhealthy if any
// single check failed.
type HealthResult struct {
	Status HealthStatus `json:"status"`

	// Checks holds per-component results keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	Timestamp time.Time `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status HealthStatus `json:"status"`

	// Message carries the error text on failure.
	Message string `json:"message,omitempty"`

	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry is the concurrent-safe HealthRegistry used by
// the service.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	order    []string
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{
		checkers: make(map[string]HealthChecker),
	}
}

// Register adds a checker, rejecting duplicate names.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, exists := r.checkers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checkers[name] = checker
	r.order = append(r.order, name)

	return nil
}

// CheckAll runs every registered check concurrently and collects the
// results under a single aggregate status.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	checkers := make([]HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	// Each goroutine writes its own slot, so no lock is needed until
	// the aggregation below.
	outcomes := make([]*CheckResult, len(checkers))

	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			outcomes[i] = runCheck(ctx, checker)
		}()
	}
	wg.Wait()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(names)),
		Timestamp: time.Now(),
	}

	for i, name := range names {
		result.Checks[name] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func runCheck(ctx context.Context, checker HealthChecker) *CheckResult {
	start := time.Now()
	err := checker.Check(ctx)

	outcome := &CheckResult{
		Status:   HealthStatusHealthy,
		Duration: time.Since(start),
	}
	if err != nil {
		outcome.Status = HealthStatusUnhealthy
		outcome.Message = err.Error()
	}

	return outcome
}
