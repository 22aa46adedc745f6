/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package lifecycle

import (
	"errors"
	"sync/atomic"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
)

var logger = log.New("lifecycle")

// ErrNotStarted is returned by services invoked before Start completed or after Stop.
var ErrNotStarted = errors.New("service has not started")

// State is the state of the service.
type State uint32

const (
	StateNotStarted State = iota
	StateStarting
	StateStarted
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Lifecycle guards a service's Start and Stop hooks so that each runs at most once.
type Lifecycle struct {
	name    string
	start   func()
	stop    func()
	state   atomic.Uint32
	stopped chan struct{}
}

// Opt sets a Lifecycle option.
type Opt func(lc *Lifecycle)

// WithStart sets the hook invoked by the first call to Start.
func WithStart(start func()) Opt {
	return func(lc *Lifecycle) {
		lc.start = start
	}
}

// WithStop sets the hook invoked by the first call to Stop on a started service.
func WithStop(stop func()) Opt {
	return func(lc *Lifecycle) {
		lc.stop = stop
	}
}

// New returns a new Lifecycle.
func New(name string, opts ...Opt) *Lifecycle {
	lc := &Lifecycle{
		name:    name,
		start:   func() {},
		stop:    func() {},
		stopped: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(lc)
	}

	return lc
}

// Start starts the service. Only the first call has an effect.
func (lc *Lifecycle) Start() {
	if !lc.state.CompareAndSwap(uint32(StateNotStarted), uint32(StateStarting)) {
		logger.Debug("Service already started", logfields.WithService(lc.name))

		return
	}

	lc.start()

	lc.state.Store(uint32(StateStarted))

	logger.Debug("Service started", logfields.WithService(lc.name))
}

// Stop stops a started service. A stopped service cannot be restarted.
func (lc *Lifecycle) Stop() {
	if !lc.state.CompareAndSwap(uint32(StateStarted), uint32(StateStopped)) {
		logger.Debug("Service not running", logfields.WithService(lc.name))

		return
	}

	lc.stop()

	close(lc.stopped)

	logger.Debug("Service stopped", logfields.WithService(lc.name))
}

// State returns the state of the service.
func (lc *Lifecycle) State() State {
	return State(lc.state.Load())
}

// IsRunning reports whether the service was started and not yet stopped.
func (lc *Lifecycle) IsRunning() bool {
	return lc.State() == StateStarted
}

// Stopped is closed once the stop hook has returned.
func (lc *Lifecycle) Stopped() <-chan struct{} {
	return lc.stopped
}
