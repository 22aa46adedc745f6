/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package translog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trustbloc/vctrust/pkg/canonical"
)

// EntryType classifies a log entry.
type EntryType string

const (
	EntryAnchorQueued         EntryType = "anchor_queued"
	EntryAnchorSubmitted      EntryType = "anchor_submitted"
	EntryAnchorConfirmed      EntryType = "anchor_confirmed"
	EntryAnchorFailed         EntryType = "anchor_failed"
	EntryAnchorDeadLettered   EntryType = "anchor_dead_lettered"
	EntryAnchorReplayed       EntryType = "anchor_replayed"
	EntryStatusUpdated        EntryType = "status_updated"
	EntryVerificationDecision EntryType = "verification_decision"
)

// GenesisHash is the previousHash of the entry at index 0.
var GenesisHash = strings.Repeat("0", 64) //nolint:gochecknoglobals

var (
	// ErrDataNotFound is returned when an index is outside the log.
	ErrDataNotFound = errors.New("data not found")
	// ErrInvalidRange is returned for ranges whose start lies past their end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrIndexConflict is returned by a Store when an entry does not extend it by exactly one.
	ErrIndexConflict = errors.New("log index conflict")
	// ErrIntegrityViolation is returned when a persisted log does not verify.
	ErrIntegrityViolation = errors.New("log integrity violation")
)

// Entry is one immutable record of the log.
type Entry struct {
	Index        uint64          `json:"index"`
	EntryHash    string          `json:"entryHash"`
	PreviousHash string          `json:"previousHash"`
	Timestamp    time.Time       `json:"timestamp"`
	EntryType    EntryType       `json:"entryType"`
	Payload      json.RawMessage `json:"payload"`
}

// ComputeEntryHash returns the sha256 digest of the canonical form of the entry without its hash.
func ComputeEntryHash(e *Entry) (string, error) {
	payload, err := canonical.Parse(e.Payload)
	if err != nil {
		return "", fmt.Errorf("payload: %w", err)
	}

	v, err := canonical.FromGo(map[string]interface{}{
		"index":        e.Index,
		"timestamp":    formatTimestamp(e.Timestamp),
		"entryType":    string(e.EntryType),
		"payload":      payload,
		"previousHash": e.PreviousHash,
	})
	if err != nil {
		return "", err
	}

	return canonical.Hash(v, canonical.SHA256, canonical.VersionCurrent)
}

// DecodePayload unmarshals the entry payload into v.
func (e *Entry) DecodePayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

func (e *Entry) clone() *Entry {
	c := *e
	c.Payload = append(json.RawMessage(nil), e.Payload...)

	return &c
}

// Timestamps are kept at millisecond precision so that they survive document stores unchanged.
func normalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// toPayload renders any JSON-marshalable value to canonical payload bytes.
func toPayload(v interface{}) (json.RawMessage, error) {
	var (
		val canonical.Value
		err error
	)

	switch p := v.(type) {
	case canonical.Value:
		val = p
	case json.RawMessage:
		val, err = canonical.Parse(p)
	case []byte:
		val, err = canonical.Parse(p)
	default:
		b, mErr := json.Marshal(v)
		if mErr != nil {
			return nil, fmt.Errorf("marshal payload: %w", mErr)
		}

		val, err = canonical.Parse(b)
	}

	if err != nil {
		return nil, err
	}

	return canonical.Canonicalize(val, canonical.VersionCurrent)
}
