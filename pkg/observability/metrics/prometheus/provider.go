/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

// breaker states as gauge values
var breakerStateValues = map[string]float64{ //nolint:gochecknoglobals
	"closed":    0,
	"half-open": 1,
	"open":      2,
}

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When httpServer
// is nil the metrics are only exposed through the Handler registered on the REST server.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Prometheus metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation registered with the default registerer.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics(prometheus.DefaultRegisterer)
	})

	return instance
}

// PromMetrics manages the metrics for vctrust.
type PromMetrics struct {
	verificationTime prometheus.Histogram
	decisions        *prometheus.CounterVec
	reasonCodes      *prometheus.CounterVec
	anchorTransition *prometheus.CounterVec
	anchorSubmitTime prometheus.Histogram
	deadLettered     prometheus.Counter
	breakerState     *prometheus.GaugeVec
	logAppended      *prometheus.CounterVec
	logSize          prometheus.Gauge
}

// NewMetrics creates instance of prometheus metrics and registers it with reg.
func NewMetrics(reg prometheus.Registerer) *PromMetrics {
	pm := &PromMetrics{
		verificationTime: newHistogram(metrics.Verification, metrics.VerificationTimeMetric,
			"The time (in seconds) it takes to produce a verification decision.", nil),
		decisions: newCounterVec(metrics.Verification, metrics.VerificationDecisionsMetric,
			"The number of verification decisions by outcome.", []string{"decision"}),
		reasonCodes: newCounterVec(metrics.Verification, metrics.VerificationReasonCodeMetric,
			"The number of reason codes emitted by verification decisions.", []string{"code"}),
		anchorTransition: newCounterVec(metrics.Anchor, metrics.AnchorTransitionsMetric,
			"The number of anchor job state transitions by target state.", []string{"state"}),
		anchorSubmitTime: newHistogram(metrics.Anchor, metrics.AnchorSubmitTimeMetric,
			"The time (in seconds) it takes to submit a hash to the anchoring registry.", nil),
		deadLettered: newCounter(metrics.Anchor, metrics.AnchorDeadLetterTotalMetric,
			"The number of anchor jobs moved to the dead-letter set.", nil),
		breakerState: newGaugeVec(metrics.Anchor, metrics.AnchorBreakerStateMetric,
			"Circuit breaker state per endpoint (0 closed, 1 half-open, 2 open).", []string{"endpoint"}),
		logAppended: newCounterVec(metrics.TransLog, metrics.TransLogAppended,
			"The number of transparency log entries appended by entry type.", []string{"entry_type"}),
		logSize: newGauge(metrics.TransLog, metrics.TransLogSize,
			"The number of entries in the transparency log.", nil),
	}

	reg.MustRegister(
		pm.verificationTime, pm.decisions, pm.reasonCodes, pm.anchorTransition, pm.anchorSubmitTime,
		pm.deadLettered, pm.breakerState, pm.logAppended, pm.logSize,
	)

	return pm
}

// VerificationTime records the time it took to produce a decision.
func (pm *PromMetrics) VerificationTime(value time.Duration) {
	pm.verificationTime.Observe(value.Seconds())

	logger.Debug("verification time", log.WithDuration(value))
}

// DecisionRecorded counts a decision and its reason codes.
func (pm *PromMetrics) DecisionRecorded(decision string, reasonCodes []string) {
	pm.decisions.WithLabelValues(decision).Inc()

	for _, code := range reasonCodes {
		pm.reasonCodes.WithLabelValues(code).Inc()
	}
}

// AnchorTransition counts an anchor job transition into state.
func (pm *PromMetrics) AnchorTransition(state string) {
	pm.anchorTransition.WithLabelValues(state).Inc()
}

// AnchorSubmitTime records the duration of one registry submission.
func (pm *PromMetrics) AnchorSubmitTime(value time.Duration) {
	pm.anchorSubmitTime.Observe(value.Seconds())

	logger.Debug("anchor submit time", log.WithDuration(value))
}

// AnchorDeadLettered counts a dead-lettered job.
func (pm *PromMetrics) AnchorDeadLettered() {
	pm.deadLettered.Inc()
}

// BreakerStateChanged sets the breaker gauge of endpoint.
func (pm *PromMetrics) BreakerStateChanged(endpoint, state string) {
	pm.breakerState.WithLabelValues(endpoint).Set(breakerStateValues[state])

	logger.Debug("breaker state", logfields.WithEndpoint(endpoint), logfields.WithBreakerState(state))
}

// LogAppended counts an appended entry and records the tree size.
func (pm *PromMetrics) LogAppended(entryType string, treeSize uint64) {
	pm.logAppended.WithLabelValues(entryType).Inc()
	pm.logSize.Set(float64(treeSize))
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newGauge(subsystem, name, help string, labels prometheus.Labels) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newGaugeVec(subsystem, name, help string, labelNames []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
