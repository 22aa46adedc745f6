/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the collected metrics in the Prometheus exposition format.
type Handler struct {
	gatherer prometheus.Gatherer
}

// HandlerOpt configures the metrics handler.
type HandlerOpt func(h *Handler)

// WithGatherer replaces the default registry as the source of metrics.
func WithGatherer(g prometheus.Gatherer) HandlerOpt {
	return func(h *Handler) {
		h.gatherer = g
	}
}

// NewHandler returns the /metrics endpoint.
func NewHandler(opts ...HandlerOpt) *Handler {
	h := &Handler{gatherer: prometheus.DefaultGatherer}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Path returns the route of the endpoint.
func (h *Handler) Path() string {
	return "/metrics"
}

// Method returns http.MethodGet.
func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the http.Handler for the endpoint. Metrics that fail to gather are skipped
// and logged rather than failing the scrape.
func (h *Handler) Handler() http.Handler {
	return promhttp.HandlerFor(h.gatherer,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
			ErrorLog:          scrapeErrorLog{},
		},
	)
}

type scrapeErrorLog struct{}

func (scrapeErrorLog) Println(v ...interface{}) {
	logger.Warn("Failed to gather metrics: " + fmt.Sprint(v...))
}
