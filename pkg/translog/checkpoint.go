/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package translog

import (
	"context"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
)

// CheckpointStore archives checkpoints for external auditors.
type CheckpointStore interface {
	Put(ctx context.Context, cp *Checkpoint) error
	Latest(ctx context.Context) (*Checkpoint, error)
}

// CheckpointPublisher writes a checkpoint to a CheckpointStore every N appends. Checkpoints
// reach the store in tree size order; one overtaken by a larger checkpoint is not written.
type CheckpointPublisher struct {
	store CheckpointStore
	every uint64

	mu        sync.Mutex
	published uint64
}

// NewCheckpointPublisher returns a publisher. every values below 1 publish on each append.
func NewCheckpointPublisher(store CheckpointStore, every uint64) *CheckpointPublisher {
	if every == 0 {
		every = 1
	}

	return &CheckpointPublisher{store: store, every: every}
}

// OnAppend implements AppendListener. Archive failures are logged; the log itself is not affected.
func (p *CheckpointPublisher) OnAppend(ctx context.Context, _ *Entry, cp *Checkpoint) {
	if cp.TreeSize%p.every != 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cp.TreeSize <= p.published {
		logger.Debugc(ctx, "Checkpoint superseded before archiving", logfields.WithTreeSize(cp.TreeSize))

		return
	}

	if err := p.store.Put(ctx, cp); err != nil {
		logger.Warnc(ctx, "Failed to archive checkpoint", log.WithError(err),
			logfields.WithTreeSize(cp.TreeSize))

		return
	}

	p.published = cp.TreeSize

	logger.Debugc(ctx, "Checkpoint archived", logfields.WithTreeSize(cp.TreeSize),
		logfields.WithRootHash(cp.RootHash))
}
