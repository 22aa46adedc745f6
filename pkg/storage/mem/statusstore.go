/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"

	"github.com/trustbloc/vctrust/pkg/service/statuslist"
)

// StatusStore keeps status list entries keyed by credential hash. The last write wins.
type StatusStore struct {
	mu       sync.RWMutex
	statuses map[string]statuslist.Status
}

// NewStatusStore returns an empty store.
func NewStatusStore() *StatusStore {
	return &StatusStore{statuses: make(map[string]statuslist.Status)}
}

// Put overwrites the status of the credential.
func (s *StatusStore) Put(_ context.Context, status *statuslist.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[status.CredentialHash] = *status

	return nil
}

// Get returns the status of the credential.
func (s *StatusStore) Get(_ context.Context, credentialHash string) (*statuslist.Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.statuses[credentialHash]
	if !ok {
		return nil, statuslist.ErrDataNotFound
	}

	return &st, nil
}
