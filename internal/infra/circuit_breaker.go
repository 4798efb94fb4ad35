package infra

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned when the breaker rejects a call without
// attempting it.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// CircuitBreaker protects the SMTP relay from cascading failures.
// After maxFailures consecutive errors the circuit opens and calls
// fail fast until resetTimeout elapses; the first call after that
// probes the relay in half-open state.
type CircuitBreaker struct {
	mu           sync.Mutex
	state        breakerState
	failures     int
	maxFailures  int
	resetTimeout time.Duration
	openedAt     time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:        stateClosed,
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
	}
}

func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	if cb.state == stateOpen {
		if time.Since(cb.openedAt) < cb.resetTimeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = stateHalfOpen
		log.Info().Msg("circuit breaker half-open, probing")
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.failures++
		if cb.state == stateHalfOpen || cb.failures >= cb.maxFailures {
			cb.state = stateOpen
			cb.openedAt = time.Now()
			log.Warn().Int("failures", cb.failures).Msg("circuit breaker opened")
		}
		return err
	}
	if cb.state != stateClosed {
		log.Info().Msg("circuit breaker closed")
	}
	cb.state = stateClosed
	cb.failures = 0
	return nil
}

// State reports the current state, for health checks.
func (cb *CircuitBreaker) State() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case stateOpen:
		return "open"
	case stateHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}
