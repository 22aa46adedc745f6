/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"encoding/json"
	"errors"
	"time"
)

// Topics.
const (
	VerifierEventTopic = "vctrust-verifier"
	AnchorEventTopic   = "vctrust-anchor"
	StatusEventTopic   = "vctrust-status"
)

// EventType names what happened. Every type belongs to exactly one topic.
type EventType string

const (
	// VerificationDecided is published for every verification decision.
	VerificationDecided = EventType("verification_decided")

	AnchorQueued       = EventType("anchor_queued")
	AnchorSubmitted    = EventType("anchor_submitted")
	AnchorConfirmed    = EventType("anchor_confirmed")
	AnchorFailed       = EventType("anchor_failed")
	AnchorDeadLettered = EventType("anchor_dead_lettered")
	AnchorReplayed     = EventType("anchor_replayed")

	// CredentialStatusUpdated is published when a credential is revoked or reinstated.
	CredentialStatusUpdated = EventType("credential_status_updated")
)

// ErrNoData is returned when decoding an event that carries no payload.
var ErrNoData = errors.New("event has no data")

// Topic returns the topic events of this type are published on, or "" for an unknown type.
func (t EventType) Topic() string {
	switch t {
	case VerificationDecided:
		return VerifierEventTopic
	case AnchorQueued, AnchorSubmitted, AnchorConfirmed, AnchorFailed, AnchorDeadLettered, AnchorReplayed:
		return AnchorEventTopic
	case CredentialStatusUpdated:
		return StatusEventTopic
	default:
		return ""
	}
}

type Payload []byte

// Event follows the CloudEvents 1.0 attribute names.
type Event struct {
	SpecVersion     string    `json:"specVersion"`
	ID              string    `json:"id"`
	Source          string    `json:"source"`
	Type            EventType `json:"type"`
	Time            time.Time `json:"time"`
	DataContentType string    `json:"dataContentType,omitempty"`
	Data            []byte    `json:"data,omitempty"`

	// Subject is the credential or root hash the event is about.
	Subject string `json:"subject,omitempty"`

	Tracing string `json:"tracing,omitempty"`
}

// Copy returns a copy that shares no memory with m, so subscribers cannot alter each other's events.
func (m *Event) Copy() *Event {
	c := *m

	if m.Data != nil {
		c.Data = append([]byte(nil), m.Data...)
	}

	return &c
}

// Decode unmarshals the JSON payload into v.
func (m *Event) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return ErrNoData
	}

	return json.Unmarshal(m.Data, v)
}

// NewEventWithPayload creates a new Event with a JSON payload.
func NewEventWithPayload(id string, source string, eventType EventType, payload Payload) *Event {
	event := NewEvent(id, source, eventType)

	event.Data = payload
	event.DataContentType = "application/json"

	return event
}

// NewEvent creates a new Event and sets all required fields.
func NewEvent(id string, source string, eventType EventType) *Event {
	return &Event{
		SpecVersion: "1.0",
		ID:          id,
		Source:      source,
		Type:        eventType,
		Time:        time.Now().UTC(),
	}
}
