/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anchor

//go:generate mockgen -destination interfaces_mocks_test.go -package anchor_test -source=interfaces.go

import (
	"context"
	"time"

	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/event/spi"
	"github.com/trustbloc/vctrust/pkg/translog"
)

type store interface {
	// Create fails with ErrAlreadyExists when a job for the hash exists.
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, hash string) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	ListDeadLettered(ctx context.Context) ([]*Record, error)
	// ListPending returns jobs that are neither confirmed nor dead-lettered.
	ListPending(ctx context.Context) ([]*Record, error)
}

type transparencyLog interface {
	Append(ctx context.Context, entryType translog.EntryType, payload interface{}) (*translog.Entry, error)
}

type circuitBreaker interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
	State() breaker.State
}

type eventPublisher interface {
	PublishPayload(ctx context.Context, topic string, eventType spi.EventType, subject string, payload interface{}) error
}

type metricsRecorder interface {
	AnchorTransition(state string)
	AnchorSubmitTime(value time.Duration)
	AnchorDeadLettered()
}
