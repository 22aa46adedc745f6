/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package witness

//go:generate mockgen -destination witness_service_mocks_test.go -self_package mocks -package witness_test -source=witness_service.go -mock_names statusReader=MockStatusReader,anchorReader=MockAnchorReader,proofProvider=MockProofProvider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	"github.com/trustbloc/vctrust/pkg/translog"
)

var logger = log.New("witness-composer")

// ErrInvalidHash is returned for anything other than a hex encoded sha256 digest.
var ErrInvalidHash = errors.New("invalid credential hash")

// StatusListEntry is the status list side of a witness.
type StatusListEntry struct {
	Revoked bool      `json:"revoked"`
	Reason  string    `json:"reason,omitempty"`
	AsOf    time.Time `json:"asOf"`
}

// AnchorInclusion is the anchoring side of a witness.
type AnchorInclusion struct {
	Present     bool                     `json:"present"`
	State       anchor.State             `json:"state,omitempty"`
	AnchoredAt  *time.Time               `json:"anchoredAt,omitempty"`
	TxID        string                   `json:"txId,omitempty"`
	BlockNumber uint64                   `json:"blockNumber,omitempty"`
	Proof       *translog.InclusionProof `json:"proof,omitempty"`
}

// RevocationWitness tells whether a credential is currently revoked and whether its hash is anchored.
type RevocationWitness struct {
	CredentialHash  string          `json:"credentialHash"`
	StatusListEntry StatusListEntry `json:"statusListEntry"`
	AnchorInclusion AnchorInclusion `json:"anchorInclusion"`
}

type statusReader interface {
	Get(ctx context.Context, credentialHash string) (*statuslist.Status, error)
}

type anchorReader interface {
	Get(ctx context.Context, hash string) (*anchor.Record, error)
}

type proofProvider interface {
	GetInclusionProof(ctx context.Context, index uint64) (*translog.InclusionProof, error)
}

// Config holds the sources a witness is composed from.
type Config struct {
	StatusStore statusReader
	AnchorStore anchorReader
	// TransparencyLog is optional. Without it witnesses carry no inclusion proof.
	TransparencyLog proofProvider
	Now             func() time.Time
}

// Service composes revocation witnesses. It only reads persisted state and never caches.
type Service struct {
	statuses statusReader
	anchors  anchorReader
	proofs   proofProvider
	now      func() time.Time
}

// New returns a witness composer.
func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		statuses: config.StatusStore,
		anchors:  config.AnchorStore,
		proofs:   config.TransparencyLog,
		now:      now,
	}
}

// Compose reads the status list and the anchor state of credentialHash. A credential with no
// status list entry is not revoked as of now; a hash without a confirmed anchor job is not included.
func (s *Service) Compose(ctx context.Context, credentialHash string) (*RevocationWitness, error) {
	if !canonical.IsHexDigest(credentialHash) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, credentialHash)
	}

	hash := strings.ToLower(credentialHash)

	w := &RevocationWitness{CredentialHash: hash}

	status, err := s.statuses.Get(ctx, hash)

	switch {
	case errors.Is(err, statuslist.ErrDataNotFound):
		w.StatusListEntry.AsOf = s.now().UTC()
	case err != nil:
		return nil, fmt.Errorf("read status list: %w", err)
	default:
		w.StatusListEntry = StatusListEntry{
			Revoked: status.Revoked,
			Reason:  status.Reason,
			AsOf:    status.AsOf,
		}
	}

	rec, err := s.anchors.Get(ctx, hash)

	switch {
	case errors.Is(err, anchor.ErrDataNotFound):
		return w, nil
	case err != nil:
		return nil, fmt.Errorf("read anchor state: %w", err)
	}

	w.AnchorInclusion.State = rec.State

	if rec.State != anchor.StateConfirmed {
		return w, nil
	}

	w.AnchorInclusion.Present = true
	w.AnchorInclusion.AnchoredAt = rec.AnchoredAt
	w.AnchorInclusion.TxID = rec.TxID
	w.AnchorInclusion.BlockNumber = rec.BlockNumber

	if rec.LogIndex != nil && s.proofs != nil {
		proof, err := s.proofs.GetInclusionProof(ctx, *rec.LogIndex)
		if err != nil {
			logger.Warnc(ctx, "Inclusion proof of anchor confirmation unavailable",
				logfields.WithCredentialHash(hash), logfields.WithLogIndex(*rec.LogIndex), log.WithError(err))
		} else {
			w.AnchorInclusion.Proof = proof
		}
	}

	return w, nil
}
