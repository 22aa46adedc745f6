/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package event

import (
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/event/spi"
)

// Topics lists every topic vctrust publishes on.
var Topics = []string{spi.VerifierEventTopic, spi.AnchorEventTopic, spi.StatusEventTopic} //nolint:gochecknoglobals

// Initialize creates the bus and attaches an audit subscriber that logs every event.
func Initialize(cfg Config) (*Bus, error) {
	eventBus := NewEventBus(cfg)

	for _, topic := range Topics {
		subscriber, err := NewEventSubscriber(eventBus, topic, auditHandler(topic))
		if err != nil {
			return nil, err
		}

		subscriber.Start()
	}

	return eventBus, nil
}

// auditHandler logs every event received on topic and flags events whose type belongs elsewhere.
func auditHandler(topic string) func(e *spi.Event) error {
	return func(e *spi.Event) error {
		if expected := e.Type.Topic(); expected != "" && expected != topic {
			logger.Warn("Event published on unexpected topic", log.WithTopic(topic),
				logfields.WithAdditionalMessage("expected "+expected), logfields.WithEvent(e))
		}

		logger.Info("handling event", logfields.WithEvent(e), logfields.WithCredentialHash(e.Subject))

		return nil
	}
}
