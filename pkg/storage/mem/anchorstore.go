/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mem provides process-local stores for a single instance deployment and tests.
package mem

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/trustbloc/vctrust/pkg/service/anchor"
)

// AnchorStore keeps anchor jobs keyed by hash.
type AnchorStore struct {
	mu      sync.RWMutex
	records map[string]*anchor.Record
}

// NewAnchorStore returns an empty store.
func NewAnchorStore() *AnchorStore {
	return &AnchorStore{records: make(map[string]*anchor.Record)}
}

// Create stores a new job. It fails with anchor.ErrAlreadyExists when the hash has a job.
func (s *AnchorStore) Create(_ context.Context, rec *anchor.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Hash]; ok {
		return fmt.Errorf("%w: %s", anchor.ErrAlreadyExists, rec.Hash)
	}

	s.records[rec.Hash] = rec.Copy()

	return nil
}

// Get returns a copy of the job of hash.
func (s *AnchorStore) Get(_ context.Context, hash string) (*anchor.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[hash]
	if !ok {
		return nil, anchor.ErrDataNotFound
	}

	return rec.Copy(), nil
}

// Update replaces an existing job.
func (s *AnchorStore) Update(_ context.Context, rec *anchor.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Hash]; !ok {
		return anchor.ErrDataNotFound
	}

	s.records[rec.Hash] = rec.Copy()

	return nil
}

// ListDeadLettered returns dead-lettered jobs, oldest first.
func (s *AnchorStore) ListDeadLettered(_ context.Context) ([]*anchor.Record, error) {
	return s.list(func(r *anchor.Record) bool { return r.DeadLettered }), nil
}

// ListPending returns jobs that are neither confirmed nor dead-lettered, oldest first.
func (s *AnchorStore) ListPending(_ context.Context) ([]*anchor.Record, error) {
	return s.list(func(r *anchor.Record) bool {
		return !r.DeadLettered && r.State != anchor.StateConfirmed
	}), nil
}

func (s *AnchorStore) list(match func(r *anchor.Record) bool) []*anchor.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*anchor.Record

	for _, rec := range s.records {
		if match(rec) {
			out = append(out, rec.Copy())
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}
