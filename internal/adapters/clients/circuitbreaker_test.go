package clients

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(maxFailures, halfOpenLimit int) (*CircuitBreaker, *time.Time) {
	clock := time.Now()
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   maxFailures,
		Timeout:       100 * time.Millisecond,
		HalfOpenLimit: halfOpenLimit,
	})
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

// tripAndCooldown opens the breaker and advances the clock so the next
// Allow moves it to half-open.
func tripAndCooldown(t *testing.T, cb *CircuitBreaker, clock *time.Time) {
	t.Helper()
	for cb.State() != StateOpen {
		cb.RecordFailure()
	}
	*clock = clock.Add(150 * time.Millisecond)
	require.True(t, cb.Allow())
	require.Equal(t, StateHalfOpen, cb.State())
}

func TestCircuitBreaker_StartsClosed(t *testing.T) {
	cb, _ := newTestBreaker(5, 3)

	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.Allow())
}

func TestCircuitBreaker_OpensAtFailureThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3, 2)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State(), "below threshold stays closed")

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow(), "open circuit rejects calls")
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(3, 2)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()

	// The streak restarted, so two more failures are not enough.
	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CooldownEnablesProbing(t *testing.T) {
	cb, clock := newTestBreaker(1, 2)

	cb.RecordFailure()
	assert.False(t, cb.Allow(), "cooldown not elapsed yet")

	*clock = clock.Add(150 * time.Millisecond)
	assert.True(t, cb.Allow())
	assert.Equal(t, StateHalfOpen, cb.State())
}

func TestCircuitBreaker_HalfOpenBoundsProbes(t *testing.T) {
	cb, clock := newTestBreaker(1, 2)
	tripAndCooldown(t, cb, clock)

	// tripAndCooldown consumed one probe slot of two.
	assert.True(t, cb.Allow())
	assert.False(t, cb.Allow(), "probe limit reached")
}

func TestCircuitBreaker_ProbeSuccessesClose(t *testing.T) {
	cb, clock := newTestBreaker(1, 2)
	tripAndCooldown(t, cb, clock)

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.State(), "one success of two")

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_ProbeFailureReopens(t *testing.T) {
	cb, clock := newTestBreaker(1, 2)
	tripAndCooldown(t, cb, clock)

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)

	var mu sync.Mutex
	var transitions [][2]State
	cb.OnStateChange(func(from, to State) {
		mu.Lock()
		transitions = append(transitions, [2]State{from, to})
		mu.Unlock()
	})

	cb.RecordFailure()

	// The callback runs on its own goroutine.
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(transitions) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, [2]State{StateClosed, StateOpen}, transitions[0])
}

func TestCircuitBreaker_ConcurrentUse(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   100,
		Timeout:       time.Second,
		HalfOpenLimit: 10,
	})

	var wg sync.WaitGroup
	var allowed int64
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !cb.Allow() {
				return
			}
			if atomic.AddInt64(&allowed, 1)%2 == 0 {
				cb.RecordSuccess()
			} else {
				cb.RecordFailure()
			}
		}()
	}
	wg.Wait()

	assert.Contains(t, []State{StateClosed, StateOpen, StateHalfOpen}, cb.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
