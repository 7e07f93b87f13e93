package risk

import (
	"sync"
	"testing"
	"time"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestBreakerStartsActive(t *testing.T) {
	cb := NewCircuitBreaker()

	status := cb.Status()
	if status.IsHalted {
		t.Fatal("new breaker should not be halted")
	}
	if status.Reason != "" || status.HaltedAt != nil || status.ResumesAt != nil {
		t.Fatalf("active breaker should carry no halt record: %+v", status)
	}
}

func TestTriggerHaltsUntilResumeTime(t *testing.T) {
	cb := NewCircuitBreaker()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cb.now = fixedClock(start)

	cb.Trigger("daily loss", 24*time.Hour)

	status := cb.Status()
	if !status.IsHalted {
		t.Fatal("expected halted breaker")
	}
	if status.Reason != "daily loss" {
		t.Fatalf("unexpected reason %q", status.Reason)
	}
	if !status.ResumesAt.After(*status.HaltedAt) {
		t.Fatalf("resumesAt %v not after haltedAt %v", status.ResumesAt, status.HaltedAt)
	}

	// Still halted one second before the resume time.
	cb.now = fixedClock(start.Add(24*time.Hour - time.Second))
	if !cb.Status().IsHalted {
		t.Fatal("breaker resumed early")
	}

	// Auto-resumes lazily once the window has elapsed.
	cb.now = fixedClock(start.Add(24 * time.Hour))
	if cb.Status().IsHalted {
		t.Fatal("breaker should auto-resume at resumesAt")
	}
	// Idempotent afterwards.
	if cb.Status().IsHalted {
		t.Fatal("breaker should stay resumed")
	}
}

func TestRetriggerOverwritesHalt(t *testing.T) {
	cb := NewCircuitBreaker()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cb.now = fixedClock(start)

	cb.Trigger("first", time.Hour)
	cb.now = fixedClock(start.Add(30 * time.Minute))
	cb.Trigger("second", 2*time.Hour)

	status := cb.Status()
	if status.Reason != "second" {
		t.Fatalf("expected last halt to win, got %q", status.Reason)
	}
	want := start.Add(30*time.Minute + 2*time.Hour)
	if !status.ResumesAt.Equal(want) {
		t.Fatalf("resumesAt = %v, want %v", status.ResumesAt, want)
	}
}

func TestResetClearsHalt(t *testing.T) {
	cb := NewCircuitBreaker()
	cb.Trigger("manual", time.Hour)
	cb.Reset()

	if cb.Status().IsHalted {
		t.Fatal("reset should clear the halt")
	}
	// Resetting an active breaker is a no-op.
	cb.Reset()
	if cb.Status().IsHalted {
		t.Fatal("double reset should leave breaker active")
	}
}

func TestBreakerConcurrentAccess(t *testing.T) {
	cb := NewCircuitBreaker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			cb.Trigger("race", time.Millisecond)
		}()
		go func() {
			defer wg.Done()
			cb.Status()
		}()
		go func() {
			defer wg.Done()
			cb.Reset()
		}()
	}
	wg.Wait()
}
