package errors

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned when the circuit breaker is open. The core
// never retries or circuit-breaks on its own — this is an opt-in helper a
// caller wraps around a Backend (see backend.Resilient).
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitState is the breaker's current state.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker fails fast against a named backend once consecutive
// failures reach maxFailures. Once resetTimeout has elapsed it admits
// exactly one probe call at a time — unlike a breaker that reopens its gate
// to every caller during the half-open window, this one tracks whether a
// probe is already in flight so concurrent callers don't all hit the
// recovering backend at once.
type CircuitBreaker struct {
	name         string
	maxFailures  int
	resetTimeout time.Duration

	mu       sync.Mutex
	failures int
	openedAt time.Time
	tripped  bool
	probing  bool
}

// CircuitOption configures a CircuitBreaker.
type CircuitOption func(*CircuitBreaker)

// WithMaxFailures sets the number of consecutive failures before the
// circuit opens.
func WithMaxFailures(n int) CircuitOption {
	return func(cb *CircuitBreaker) { cb.maxFailures = n }
}

// WithResetTimeout sets how long the circuit stays open before admitting a
// half-open probe call.
func WithResetTimeout(d time.Duration) CircuitOption {
	return func(cb *CircuitBreaker) { cb.resetTimeout = d }
}

// NewCircuitBreaker creates a breaker for a named backend. Default: 5
// failures, 30 second reset timeout.
func NewCircuitBreaker(name string, opts ...CircuitOption) *CircuitBreaker {
	cb := &CircuitBreaker{
		name:         name,
		maxFailures:  5,
		resetTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

// Name returns the breaker's backend name.
func (cb *CircuitBreaker) Name() string { return cb.name }

// State reports closed/open/half-open without claiming a probe slot.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.stateLocked()
}

func (cb *CircuitBreaker) stateLocked() CircuitState {
	if !cb.tripped {
		return CircuitClosed
	}
	if time.Since(cb.openedAt) > cb.resetTimeout {
		return CircuitHalfOpen
	}
	return CircuitOpen
}

// acquire reports whether the caller may run its call now, and whether that
// call is the single half-open probe.
func (cb *CircuitBreaker) acquire() (allowed, isProbe bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.stateLocked() {
	case CircuitClosed:
		return true, false
	case CircuitHalfOpen:
		if cb.probing {
			return false, false
		}
		cb.probing = true
		return true, true
	default: // CircuitOpen
		return false, false
	}
}

// release records the outcome of a call previously admitted by acquire.
func (cb *CircuitBreaker) release(isProbe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if isProbe {
		cb.probing = false
	}
	if err != nil {
		cb.failures++
		cb.openedAt = time.Now()
		if isProbe || cb.failures >= cb.maxFailures {
			cb.tripped = true
		}
		return
	}
	cb.failures = 0
	cb.tripped = false
}

// Execute runs fn through the breaker, returning ErrCircuitOpen without
// calling fn if the circuit is open or a probe is already in flight.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	allowed, isProbe := cb.acquire()
	if !allowed {
		return ErrCircuitOpen
	}
	err := fn()
	cb.release(isProbe, err)
	return err
}

// CircuitExecuteWithResult runs fn through cb, calling fallback instead
// when the circuit is open or a probe is already in flight.
func CircuitExecuteWithResult[T any](cb *CircuitBreaker, fn func() (T, error), fallback func() (T, error)) (T, error) {
	allowed, isProbe := cb.acquire()
	if !allowed {
		return fallback()
	}
	result, err := fn()
	cb.release(isProbe, err)
	if err != nil {
		return fallback()
	}
	return result, nil
}
