/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "vctrust"

	// Verification decision engine.
	Verification                 = "verification"
	VerificationTimeMetric       = "verification_seconds"
	VerificationDecisionsMetric  = "decisions_total"
	VerificationReasonCodeMetric = "reason_codes_total"

	// Anchor queue.
	Anchor                      = "anchor"
	AnchorTransitionsMetric     = "transitions_total"
	AnchorSubmitTimeMetric      = "submit_seconds"
	AnchorBreakerStateMetric    = "breaker_state"
	AnchorDeadLetterTotalMetric = "dead_lettered_total"

	// Transparency log.
	TransLog         = "translog"
	TransLogSize     = "tree_size"
	TransLogAppended = "appended_total"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	VerificationTime(value time.Duration)
	DecisionRecorded(decision string, reasonCodes []string)
	AnchorTransition(state string)
	AnchorSubmitTime(value time.Duration)
	AnchorDeadLettered()
	BreakerStateChanged(endpoint, state string)
	LogAppended(entryType string, treeSize uint64)
}
