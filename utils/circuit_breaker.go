// ABOUTME: This file implements a circuit breaker for outbound gateway calls
// ABOUTME: Consecutive failures open the circuit until a cooldown has passed
package utils

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned when calls are rejected without being attempted.
var ErrCircuitOpen = errors.New("circuit breaker open")

// CircuitBreakerState represents the current state of the circuit breaker.
type CircuitBreakerState int

const (
	// StateClosed means calls flow through normally.
	StateClosed CircuitBreakerState = iota
	// StateOpen means calls are rejected until the cooldown elapses.
	StateOpen
	// StateHalfOpen means one probe call decides whether to close again.
	StateHalfOpen
)

// CircuitBreaker rejects calls after a run of consecutive failures and
// lets a probe through once the cooldown has passed.
type CircuitBreaker struct {
	threshold   int
	cooldown    time.Duration
	state       CircuitBreakerState
	failures    int
	lastFailure time.Time
	mu          sync.Mutex
}

// NewCircuitBreaker creates a breaker that opens after threshold
// consecutive failures and stays open for the cooldown.
func NewCircuitBreaker(threshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		state:     StateClosed,
	}
}

// Call runs fn unless the circuit is open. The half-open probe closes the
// circuit on success and reopens it on failure.
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()

	if cb.state == StateOpen {
		if time.Since(cb.lastFailure) < cb.cooldown {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
	}

	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		cb.lastFailure = time.Now()

		if cb.state == StateHalfOpen || cb.failures >= cb.threshold {
			cb.state = StateOpen
		}

		return err
	}

	cb.failures = 0
	cb.state = StateClosed
	return nil
}

// State returns the current state of the circuit breaker.
func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Failures returns the current consecutive failure count.
func (cb *CircuitBreaker) Failures() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}

// Reset closes the circuit and clears the failure count.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.state = StateClosed
	cb.lastFailure = time.Time{}
}
