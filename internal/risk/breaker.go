package risk

import (
	"sync"
	"time"
)

// CircuitBreaker is the process-wide trading halt switch. It starts in
// the active state and is tripped by the validator when the daily loss
// limit is breached, or manually via Trigger.
//
// There is no background timer: a halt expires lazily, on the next
// Status call at or after the resume time. All methods are safe for
// concurrent use; the implicit auto-resume inside Status runs under the
// same lock as Trigger and Reset so racing callers cannot observe a
// half-cleared halt.
type CircuitBreaker struct {
	mu        sync.Mutex
	halted    bool
	reason    string
	haltedAt  time.Time
	resumesAt time.Time

	// now is swapped out in tests
	now func() time.Time
}

// NewCircuitBreaker creates a breaker in the active (not halted) state.
func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{now: time.Now}
}

// Trigger halts all trading for the given duration. Re-triggering while
// already halted overwrites the previous halt record (last write wins,
// halts do not stack).
func (cb *CircuitBreaker) Trigger(reason string, d time.Duration) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	started := cb.now()
	cb.halted = true
	cb.reason = reason
	cb.haltedAt = started
	cb.resumesAt = started.Add(d)
}

// Reset clears any halt and returns the breaker to the active state.
// Resetting an active breaker is a no-op.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.clearLocked()
}

func (cb *CircuitBreaker) clearLocked() {
	cb.halted = false
	cb.reason = ""
	cb.haltedAt = time.Time{}
	cb.resumesAt = time.Time{}
}

// Status reports the current breaker state. If the halt window has
// elapsed it resets the breaker before reporting, so an expired halt is
// never observable.
func (cb *CircuitBreaker) Status() BreakerStatus {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.halted && !cb.now().Before(cb.resumesAt) {
		cb.clearLocked()
	}
	if !cb.halted {
		return BreakerStatus{}
	}

	haltedAt := cb.haltedAt
	resumesAt := cb.resumesAt
	return BreakerStatus{
		IsHalted:  true,
		Reason:    cb.reason,
		HaltedAt:  &haltedAt,
		ResumesAt: &resumesAt,
	}
}
