package clients

import (
	"sync"
	"time"
)

// State is the circuit breaker state.
type State int

const (
	// StateClosed lets all requests through.
	StateClosed State = iota

	// StateOpen rejects requests until the open timeout elapses.
	StateOpen

	// StateHalfOpen lets a bounded number of probe requests through.
	StateHalfOpen
)

var stateNames = map[State]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "unknown"
}

// CircuitBreakerConfig tunes the breaker thresholds.
type CircuitBreakerConfig struct {
	// MaxFailures is the consecutive-failure count that opens the circuit.
	MaxFailures int

	// Timeout is the open-state cooldown before probing resumes.
	Timeout time.Duration

	// HalfOpenLimit bounds concurrent probes, and is also the number of
	// consecutive probe successes needed to close the circuit again.
	HalfOpenLimit int
}

// CircuitBreaker gates outbound calls to one downstream service.
//
// Transitions: closed opens after MaxFailures consecutive failures;
// open moves to half-open once Timeout has elapsed since the last
// failure; half-open closes after HalfOpenLimit consecutive successes
// and reopens on any failure.
type CircuitBreaker struct {
	mu          sync.RWMutex
	state       State
	failures    int
	successes   int
	probes      int
	lastFailure time.Time
	cfg         CircuitBreakerConfig

	onStateChange func(from, to State)

	// now is swapped out in tests to drive the open-state cooldown.
	now func() time.Time
}

// NewCircuitBreaker returns a closed breaker with the given thresholds.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		state: StateClosed,
		cfg:   cfg,
		now:   time.Now,
	}
}

// OnStateChange registers a callback invoked on every transition.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Allow reports whether a request may proceed. Calling it while open
// may flip the breaker to half-open if the cooldown has elapsed, in
// which case the caller becomes the first probe.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if cb.now().Sub(cb.lastFailure) >= cb.cfg.Timeout {
			cb.transitionTo(StateHalfOpen)
			cb.probes = 1
			return true
		}
		return false

	case StateHalfOpen:
		if cb.probes >= cb.cfg.HalfOpenLimit {
			return false
		}
		cb.probes++
		return true

	default:
		return false
	}
}

// RecordSuccess notes a successful call. Enough successes while
// half-open close the circuit.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0

	case StateHalfOpen:
		cb.probes--
		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			cb.transitionTo(StateClosed)
		}
	}
}

// RecordFailure notes a failed call. While half-open a single failure
// reopens the circuit.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailure = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			cb.transitionTo(StateOpen)
		}

	case StateHalfOpen:
		cb.probes--
		cb.transitionTo(StateOpen)
	}
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// transitionTo switches state and resets counters. Caller holds the lock,
// so the callback runs on its own goroutine.
func (cb *CircuitBreaker) transitionTo(next State) {
	if cb.state == next {
		return
	}

	prev := cb.state
	cb.state = next
	cb.failures = 0
	cb.successes = 0

	if cb.onStateChange != nil {
		go cb.onStateChange(prev, next)
	}
}
