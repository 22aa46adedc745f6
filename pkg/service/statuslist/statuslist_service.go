/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

//go:generate mockgen -destination statuslist_service_mocks_test.go -self_package mocks -package statuslist_test -source=statuslist_service.go -mock_names store=MockStore,transparencyLog=MockTransparencyLog,eventPublisher=MockEventPublisher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/event/spi"
	"github.com/trustbloc/vctrust/pkg/translog"
)

var logger = log.New("status-list")

var (
	// ErrDataNotFound is returned when no status was ever written for a credential.
	ErrDataNotFound = errors.New("data not found")
	// ErrInvalidHash is returned for anything other than a hex encoded sha256 digest.
	ErrInvalidHash = errors.New("invalid credential hash")
)

// Status is the status list entry of one credential.
type Status struct {
	CredentialHash string    `json:"credentialHash"`
	Revoked        bool      `json:"revoked"`
	Reason         string    `json:"reason,omitempty"`
	AsOf           time.Time `json:"asOf"`
}

type store interface {
	// Put overwrites the entry of the credential. The last write wins.
	Put(ctx context.Context, status *Status) error
	Get(ctx context.Context, credentialHash string) (*Status, error)
}

type transparencyLog interface {
	Append(ctx context.Context, entryType translog.EntryType, payload interface{}) (*translog.Entry, error)
}

type eventPublisher interface {
	PublishPayload(ctx context.Context, topic string, eventType spi.EventType, subject string, payload interface{}) error
}

// Config holds the dependencies of the status list service.
type Config struct {
	Store           store
	TransparencyLog transparencyLog
	// EventPublisher is optional.
	EventPublisher eventPublisher
	Now            func() time.Time
}

// Service is the writer side of the status list. Every write is recorded in the transparency log.
type Service struct {
	store     store
	tlog      transparencyLog
	publisher eventPublisher
	now       func() time.Time
}

// New returns a status list service.
func New(config *Config) *Service {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		store:     config.Store,
		tlog:      config.TransparencyLog,
		publisher: config.EventPublisher,
		now:       now,
	}
}

// Revoke marks the credential revoked.
func (s *Service) Revoke(ctx context.Context, credentialHash, reason string) (*Status, error) {
	return s.write(ctx, credentialHash, true, reason)
}

// Reinstate clears a revocation.
func (s *Service) Reinstate(ctx context.Context, credentialHash string) (*Status, error) {
	return s.write(ctx, credentialHash, false, "")
}

// Get returns the status of the credential, or ErrDataNotFound when none was written.
func (s *Service) Get(ctx context.Context, credentialHash string) (*Status, error) {
	if !canonical.IsHexDigest(credentialHash) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, credentialHash)
	}

	st, err := s.store.Get(ctx, strings.ToLower(credentialHash))
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return st, nil
}

func (s *Service) write(ctx context.Context, credentialHash string, revoked bool, reason string) (*Status, error) {
	if !canonical.IsHexDigest(credentialHash) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, credentialHash)
	}

	st := &Status{
		CredentialHash: strings.ToLower(credentialHash),
		Revoked:        revoked,
		Reason:         reason,
		AsOf:           s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.store.Put(ctx, st); err != nil {
		return nil, fmt.Errorf("put status: %w", err)
	}

	if _, err := s.tlog.Append(ctx, translog.EntryStatusUpdated, st); err != nil {
		return nil, fmt.Errorf("append status update to transparency log: %w", err)
	}

	logger.Infoc(ctx, "Credential status updated", logfields.WithCredentialHash(st.CredentialHash),
		logfields.WithAdditionalMessage(fmt.Sprintf("revoked=%t", revoked)))

	if s.publisher != nil {
		err := s.publisher.PublishPayload(ctx, spi.StatusEventTopic, spi.CredentialStatusUpdated, st.CredentialHash, st)
		if err != nil {
			logger.Warnc(ctx, "Failed to publish status event", log.WithTopic(spi.StatusEventTopic), log.WithError(err))
		}
	}

	return st, nil
}
