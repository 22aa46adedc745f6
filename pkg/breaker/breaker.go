/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package breaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
)

var logger = log.New("circuit-breaker")

// ErrOpen is returned without calling downstream while the breaker is open,
// or while the single half-open trial call is in flight.
var ErrOpen = errors.New("circuit breaker is open")

// ErrNotCalled marks a call that fn gave up on before reaching downstream. Its outcome is not
// recorded, and a half-open breaker lets the next call through as the trial.
var ErrNotCalled = errors.New("downstream not called")

// State of a breaker.
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half-open"
)

const (
	defaultFailureThreshold = 5
	defaultResetTimeout     = 30 * time.Second
)

// Config holds breaker settings shared by all breakers of a Registry.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold int
	// ResetTimeout is the cooldown after which one trial call is let through.
	ResetTimeout time.Duration
	// IsFailure decides which errors count against the endpoint. Defaults to every non-nil error.
	IsFailure func(err error) bool
	// OnStateChange is called after every transition, outside the breaker lock.
	OnStateChange func(name string, from, to State)
	// Now is the time source.
	Now func() time.Time
}

func (c *Config) withDefaults() Config {
	cfg := *c

	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}

	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = defaultResetTimeout
	}

	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return cfg
}

// Breaker guards calls to one downstream endpoint.
type Breaker struct {
	name string
	cfg  Config

	mu         sync.Mutex
	state      State
	failures   int
	openedAt   time.Time
	generation uint64
	trial      bool
}

// New returns a closed breaker.
func New(name string, cfg *Config) *Breaker {
	return &Breaker{
		name:  name,
		cfg:   cfg.withDefaults(),
		state: StateClosed,
	}
}

// Name returns the endpoint the breaker guards.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state. An open breaker whose cooldown elapsed reports half-open.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && !b.cfg.Now().Before(b.openedAt.Add(b.cfg.ResetTimeout)) {
		return StateHalfOpen
	}

	return b.state
}

// Execute calls fn unless the breaker rejects the call, and records its outcome.
func (b *Breaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	generation, err := b.admit()
	if err != nil {
		return err
	}

	callErr := fn(ctx)

	b.record(generation, callErr)

	return callErr
}

func (b *Breaker) admit() (uint64, error) {
	b.mu.Lock()

	switch b.state {
	case StateClosed:
		g := b.generation
		b.mu.Unlock()

		return g, nil
	case StateOpen:
		if b.cfg.Now().Before(b.openedAt.Add(b.cfg.ResetTimeout)) {
			b.mu.Unlock()

			return 0, ErrOpen
		}

		from := b.transition(StateHalfOpen)
		b.trial = true
		g := b.generation
		b.mu.Unlock()

		b.notify(from, StateHalfOpen)

		return g, nil
	default: // half-open: the single trial call is already in flight
		b.mu.Unlock()

		return 0, ErrOpen
	}
}

func (b *Breaker) record(generation uint64, err error) {
	b.mu.Lock()

	// outcome of a call admitted before the last transition
	if generation != b.generation {
		b.mu.Unlock()

		return
	}

	var from, to State

	switch {
	case errors.Is(err, ErrNotCalled):
		if b.state == StateHalfOpen {
			openedAt := b.openedAt
			from, to = b.transition(StateOpen), StateOpen
			b.trial = false
			b.openedAt = openedAt
		}
	default:
		from, to = b.recordOutcome(b.cfg.IsFailure(err))
	}

	b.mu.Unlock()

	if to != "" {
		b.notify(from, to)
	}
}

// recordOutcome must be called with the lock held.
func (b *Breaker) recordOutcome(failed bool) (from, to State) {
	switch b.state {
	case StateClosed:
		if !failed {
			b.failures = 0

			break
		}

		b.failures++

		if b.failures >= b.cfg.FailureThreshold {
			from, to = b.transition(StateOpen), StateOpen
		}
	case StateHalfOpen:
		b.trial = false

		if failed {
			from, to = b.transition(StateOpen), StateOpen
		} else {
			from, to = b.transition(StateClosed), StateClosed
		}
	case StateOpen:
	}

	return from, to
}

// transition must be called with the lock held.
func (b *Breaker) transition(to State) State {
	from := b.state

	b.state = to
	b.generation++
	b.failures = 0

	if to == StateOpen {
		b.openedAt = b.cfg.Now()
	}

	return from
}

func (b *Breaker) notify(from, to State) {
	logger.Info("Circuit breaker state changed", logfields.WithEndpoint(b.name),
		logfields.WithBreakerState(string(to)), logfields.WithAdditionalMessage("from "+string(from)))

	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(b.name, from, to)
	}
}

// Registry hands out one shared breaker per endpoint.
type Registry struct {
	cfg Config

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewRegistry returns a registry whose breakers use cfg.
func NewRegistry(cfg *Config) *Registry {
	return &Registry{
		cfg:      cfg.withDefaults(),
		breakers: map[string]*Breaker{},
	}
}

// Get returns the breaker for endpoint, creating it on first use.
func (r *Registry) Get(endpoint string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.breakers[endpoint]
	if !ok {
		b = New(endpoint, &r.cfg)
		r.breakers[endpoint] = b
	}

	return b
}

// States returns the state of every breaker keyed by endpoint.
func (r *Registry) States() map[string]State {
	r.mu.Lock()
	defer r.mu.Unlock()

	states := make(map[string]State, len(r.breakers))
	for name, b := range r.breakers {
		states[name] = b.State()
	}

	return states
}
