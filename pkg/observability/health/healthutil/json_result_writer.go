/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]checkResult    `json:"components,omitempty"`
	Breakers   map[string]string         `json:"circuitBreakers,omitempty"`
}

type checkResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter renders readiness results together with check timings and, optionally,
// the state of the circuit breakers guarding downstream endpoints.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
	breakers      func() map[string]string
}

type WriterOpt func(w *JSONResultWriter)

// WithBreakerStates adds the circuit breaker states returned by fn to every response.
// Breaker state is informational; an open breaker does not make the service unready.
func WithBreakerStates(fn func() map[string]string) WriterOpt {
	return func(w *JSONResultWriter) {
		w.breakers = fn
	}
}

func NewJSONResultWriter(responseTimes *ResponseTimes, opts ...WriterOpt) *JSONResultWriter {
	w := &JSONResultWriter{responseTimes: responseTimes}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthStatus{Status: result.Status}

	if len(result.Details) > 0 {
		r.Components = make(map[string]checkResult, len(result.Details))

		for name, cr := range result.Details {
			res := checkResult{CheckResult: cr}

			if t, ok := rw.responseTimes.Get(name); ok {
				res.LastResponseTime = t.LastResponseTime.String()
				res.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = res
		}
	}

	if rw.breakers != nil {
		r.Breakers = rw.breakers()
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
