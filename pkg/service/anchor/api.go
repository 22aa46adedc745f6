/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anchor

import (
	"errors"
	"fmt"
	"time"
)

// State of an anchor job.
type State string

const (
	StateQueued    State = "queued"
	StateSubmitted State = "submitted"
	StateConfirmed State = "confirmed"
	StateFailed    State = "failed"
)

var (
	// ErrDataNotFound is returned by stores when no job exists for a hash.
	ErrDataNotFound = errors.New("data not found")
	// ErrAlreadyExists is returned by stores when a job for the hash was already created.
	ErrAlreadyExists = errors.New("anchor job already exists")
	// ErrInvalidHash is returned for anything other than a hex encoded sha256 digest.
	ErrInvalidHash = errors.New("invalid anchor hash")
	// ErrDuplicateAnchor is wrapped by DuplicateError.
	ErrDuplicateAnchor = errors.New("hash is already anchored")
	// ErrDeadLettered is returned when a dead-lettered hash is enqueued again. Use Replay instead.
	ErrDeadLettered = errors.New("anchor job is dead-lettered")
	// ErrNotDeadLettered is returned by Replay for jobs that are not in the dead-letter set.
	ErrNotDeadLettered = errors.New("anchor job is not dead-lettered")
	// ErrAttemptTimeout is returned when a submission exceeds the attempt timeout.
	ErrAttemptTimeout = errors.New("anchor submission timed out")
)

// Record is the persisted state of the anchor job for one hash.
type Record struct {
	JobID       string `json:"jobId"`
	Hash        string `json:"rootHash"`
	SubmitterID string `json:"submitterId,omitempty"`
	State       State  `json:"state"`

	Attempts      int       `json:"attempts"`
	LastError     string    `json:"lastError,omitempty"`
	NextAttemptAt time.Time `json:"nextAttemptAt"`
	DeadLettered  bool      `json:"deadLettered"`

	TxID        string     `json:"txId,omitempty"`
	BlockNumber uint64     `json:"blockNumber,omitempty"`
	AnchoredAt  *time.Time `json:"anchoredAt,omitempty"`
	// LogIndex is the index of the anchor_confirmed transparency log entry.
	LogIndex *uint64 `json:"logIndex,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"timestamp"`
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() *Record {
	c := *r

	if r.AnchoredAt != nil {
		t := *r.AnchoredAt
		c.AnchoredAt = &t
	}

	if r.LogIndex != nil {
		i := *r.LogIndex
		c.LogIndex = &i
	}

	return &c
}

// DuplicateError reports that a hash was already confirmed. Record is the existing confirmation.
type DuplicateError struct {
	Record *Record
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s (tx %s)", ErrDuplicateAnchor, e.Record.Hash, e.Record.TxID)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateAnchor
}
