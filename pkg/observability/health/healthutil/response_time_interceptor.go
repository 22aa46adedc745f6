/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes records how long each readiness check took. It is safe for concurrent use.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
	now    func() time.Time
}

func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{
		states: map[string]ResponseTimeState{},
		now:    time.Now,
	}
}

// Get returns the timings of the named check.
func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.states[name]

	return s, ok
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.states[name]
	if !ok {
		r.states[name] = ResponseTimeState{LastResponseTime: elapsed, AverageResponseTime: elapsed}

		return
	}

	r.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (prev.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}

// Interceptor times every check run by the checker it is installed on.
func (r *ResponseTimes) Interceptor() health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := r.now()
			result := next(ctx, name, state)

			r.record(name, r.now().Sub(start))

			return result
		}
	}
}
