/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"context"
	"encoding/json"
	"fmt"

	guuid "github.com/google/uuid"

	"github.com/trustbloc/vctrust/pkg/event/spi"
)

const source = "vctrust"

type eventPublisher interface {
	Publish(ctx context.Context, topic string, events ...*spi.Event) error
}

// Publisher builds events from domain payloads and publishes them.
type Publisher struct {
	publisher eventPublisher
}

// NewEventPublisher creates event publisher.
func NewEventPublisher(pub eventPublisher) *Publisher {
	return &Publisher{
		publisher: pub,
	}
}

// Publish publishes prepared events.
func (p *Publisher) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	return p.publisher.Publish(ctx, topic, events...)
}

// PublishPayload marshals payload to JSON and publishes it as one event about subject.
func (p *Publisher) PublishPayload(ctx context.Context, topic string, eventType spi.EventType,
	subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	e := spi.NewEventWithPayload(guuid.NewString(), source, eventType, data)
	e.Subject = subject

	return p.publisher.Publish(ctx, topic, e)
}
