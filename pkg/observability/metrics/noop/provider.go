/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/vctrust/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) VerificationTime(_ time.Duration)      {}
func (n *NoMetrics) DecisionRecorded(_ string, _ []string) {}
func (n *NoMetrics) AnchorTransition(_ string)             {}
func (n *NoMetrics) AnchorSubmitTime(_ time.Duration)      {}
func (n *NoMetrics) AnchorDeadLettered()                   {}
func (n *NoMetrics) BreakerStateChanged(_, _ string)       {}
func (n *NoMetrics) LogAppended(_ string, _ uint64)        {}
