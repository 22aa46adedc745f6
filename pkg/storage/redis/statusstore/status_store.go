/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statusstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	redisapi "github.com/trustbloc/vctrust/pkg/storage/redis"
)

// KeyPrefix namespaces the status list entries.
const KeyPrefix = "status"

// Store keeps status list entries in Redis, one JSON value per credential hash.
type Store struct {
	redisClient *redisapi.Client
}

// New creates Store.
func New(redisClient *redisapi.Client) *Store {
	return &Store{redisClient: redisClient}
}

// Put overwrites the entry of the credential.
func (s *Store) Put(ctx context.Context, status *statuslist.Status) error {
	b, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}

	ctx, cancel := s.redisClient.Context(ctx)
	defer cancel()

	if err = s.redisClient.API().Set(ctx, s.key(status.CredentialHash), b, 0).Err(); err != nil {
		return fmt.Errorf("redis set status: %w", err)
	}

	return nil
}

// Get returns the entry of the credential or statuslist.ErrDataNotFound.
func (s *Store) Get(ctx context.Context, credentialHash string) (*statuslist.Status, error) {
	ctx, cancel := s.redisClient.Context(ctx)
	defer cancel()

	b, err := s.redisClient.API().Get(ctx, s.key(credentialHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, statuslist.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("redis get status: %w", err)
	}

	status := &statuslist.Status{}

	if err = json.Unmarshal(b, status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}

	return status, nil
}

func (s *Store) key(credentialHash string) string {
	return s.redisClient.Key(KeyPrefix, credentialHash)
}
