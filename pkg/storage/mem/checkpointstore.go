/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"sync"

	"github.com/trustbloc/vctrust/pkg/translog"
)

// CheckpointStore keeps published checkpoints.
type CheckpointStore struct {
	mu          sync.RWMutex
	checkpoints []translog.Checkpoint
}

// NewCheckpointStore returns an empty store.
func NewCheckpointStore() *CheckpointStore {
	return &CheckpointStore{}
}

// Put archives cp. A checkpoint no larger than the latest one is ignored.
func (s *CheckpointStore) Put(_ context.Context, cp *translog.Checkpoint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.checkpoints); n > 0 && cp.TreeSize <= s.checkpoints[n-1].TreeSize {
		return nil
	}

	s.checkpoints = append(s.checkpoints, *cp)

	return nil
}

// Latest returns the last archived checkpoint.
func (s *CheckpointStore) Latest(_ context.Context) (*translog.Checkpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.checkpoints) == 0 {
		return nil, translog.ErrDataNotFound
	}

	cp := s.checkpoints[len(s.checkpoints)-1]

	return &cp, nil
}
