/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package translog

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
)

var logger = log.New("translog")

// Store persists log entries. Append must fail with ErrIndexConflict unless the
// entry index equals the number of stored entries.
type Store interface {
	Append(ctx context.Context, entry *Entry) error
	Get(ctx context.Context, index uint64) (*Entry, error)
	Range(ctx context.Context, from, to uint64) ([]*Entry, error)
	Count(ctx context.Context) (uint64, error)
}

// AppendListener is notified after an entry was persisted.
type AppendListener interface {
	OnAppend(ctx context.Context, entry *Entry, cp *Checkpoint)
}

// Checkpoint is the signed-off state of the tree at a given size.
type Checkpoint struct {
	TreeSize  uint64    `json:"treeSize"`
	RootHash  string    `json:"rootHash"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is an append-only, hash-chained log with Merkle inclusion proofs.
// Appends are serialized; reads operate on a snapshot of the tree size taken once.
type Log struct {
	store     Store
	listeners []AppendListener
	now       func() time.Time

	mu       sync.RWMutex
	leaves   [][]byte
	lastHash string
	lastTime time.Time
	root     []byte
}

// Opt configures a Log.
type Opt func(l *Log)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Opt {
	return func(l *Log) {
		l.now = now
	}
}

// WithListener registers an append listener.
func WithListener(listener AppendListener) Opt {
	return func(l *Log) {
		l.listeners = append(l.listeners, listener)
	}
}

// New loads the persisted entries from store and rebuilds the tree. A persisted log
// that does not verify is not loaded.
func New(ctx context.Context, store Store, opts ...Opt) (*Log, error) {
	l := &Log{
		store:    store,
		now:      time.Now,
		lastHash: GenesisHash,
	}

	for _, opt := range opts {
		opt(l)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	if count > 0 {
		report, err := verifyRange(ctx, store, nil, 0, count)
		if err != nil {
			return nil, err
		}

		if !report.Valid {
			for _, e := range report.Errors {
				logger.Errorc(ctx, "Persisted log entry does not verify",
					logfields.WithLogIndex(e.Index), logfields.WithAdditionalMessage(e.Error()))
			}

			return nil, fmt.Errorf("%w: %d violation(s) in persisted entries", ErrIntegrityViolation,
				len(report.Errors))
		}

		entries, err := store.Range(ctx, 0, count)
		if err != nil {
			return nil, fmt.Errorf("load entries: %w", err)
		}

		for _, e := range entries {
			leaf, err := LeafHash(e.EntryHash)
			if err != nil {
				return nil, err
			}

			l.leaves = append(l.leaves, leaf)
			l.lastHash = e.EntryHash
			l.lastTime = e.Timestamp
		}
	}

	l.root = merkleRoot(l.leaves)

	logger.Infoc(ctx, "Transparency log loaded", logfields.WithTreeSize(count),
		logfields.WithRootHash(hex.EncodeToString(l.root)))

	return l, nil
}

// Append assigns the next index to a new entry of the given type, links it to the
// previous entry and persists it. payload may be a canonical.Value, raw JSON, or any
// value encoding/json can marshal.
func (l *Log) Append(ctx context.Context, entryType EntryType, payload interface{}) (*Entry, error) {
	if entryType == "" {
		return nil, fmt.Errorf("entry type is required")
	}

	body, err := toPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("log payload: %w", err)
	}

	l.mu.Lock()

	ts := normalizeTimestamp(l.now())
	if ts.Before(l.lastTime) {
		ts = l.lastTime
	}

	e := &Entry{
		Index:        uint64(len(l.leaves)),
		PreviousHash: l.lastHash,
		Timestamp:    ts,
		EntryType:    entryType,
		Payload:      body,
	}

	e.EntryHash, err = ComputeEntryHash(e)
	if err != nil {
		l.mu.Unlock()

		return nil, err
	}

	leaf, err := LeafHash(e.EntryHash)
	if err != nil {
		l.mu.Unlock()

		return nil, err
	}

	if err = l.store.Append(ctx, e.clone()); err != nil {
		l.mu.Unlock()

		return nil, fmt.Errorf("persist log entry %d: %w", e.Index, err)
	}

	l.leaves = append(l.leaves, leaf)
	l.lastHash = e.EntryHash
	l.lastTime = ts
	l.root = merkleRoot(l.leaves)

	cp := &Checkpoint{
		TreeSize:  uint64(len(l.leaves)),
		RootHash:  hex.EncodeToString(l.root),
		Timestamp: ts,
	}

	l.mu.Unlock()

	logger.Debugc(ctx, "Log entry appended", logfields.WithLogIndex(e.Index),
		logfields.WithEntryType(string(entryType)))

	for _, listener := range l.listeners {
		listener.OnAppend(ctx, e, cp)
	}

	return e, nil
}

// Size returns the number of entries.
func (l *Log) Size() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return uint64(len(l.leaves))
}

// Checkpoint returns the current tree size and root.
func (l *Log) Checkpoint() *Checkpoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Checkpoint{
		TreeSize:  uint64(len(l.leaves)),
		RootHash:  hex.EncodeToString(l.root),
		Timestamp: normalizeTimestamp(l.now()),
	}
}

// Get returns the persisted entry at index.
func (l *Log) Get(ctx context.Context, index uint64) (*Entry, error) {
	if index >= l.Size() {
		return nil, fmt.Errorf("entry %d: %w", index, ErrDataNotFound)
	}

	return l.store.Get(ctx, index)
}

// List returns persisted entries in [from, to). A zero to selects the current size.
func (l *Log) List(ctx context.Context, from, to uint64) ([]*Entry, error) {
	size := l.Size()
	if to == 0 || to > size {
		to = size
	}

	if from >= to {
		return []*Entry{}, nil
	}

	return l.store.Range(ctx, from, to)
}

// GetInclusionProof returns the sibling path of the entry at index against the root at the current size.
func (l *Log) GetInclusionProof(ctx context.Context, index uint64) (*InclusionProof, error) {
	l.mu.RLock()
	leaves := l.leaves[:len(l.leaves):len(l.leaves)]
	l.mu.RUnlock()

	size := uint64(len(leaves))
	if index >= size {
		return nil, fmt.Errorf("entry %d: %w", index, ErrDataNotFound)
	}

	e, err := l.store.Get(ctx, index)
	if err != nil {
		return nil, err
	}

	path, root := merklePath(leaves, index)

	return &InclusionProof{
		LeafIndex:     index,
		TreeSize:      size,
		EntryHash:     e.EntryHash,
		SiblingHashes: encodeAll(path),
		RootHash:      hex.EncodeToString(root),
	}, nil
}

// VerifyIntegrity walks the persisted entries in [from, to) and reports every break.
// A zero to selects the current size.
func (l *Log) VerifyIntegrity(ctx context.Context, from, to uint64) (*IntegrityReport, error) {
	l.mu.RLock()
	leaves := l.leaves[:len(l.leaves):len(l.leaves)]
	l.mu.RUnlock()

	size := uint64(len(leaves))
	if to == 0 || to > size {
		to = size
	}

	if from > to {
		return nil, fmt.Errorf("%w [%d, %d)", ErrInvalidRange, from, to)
	}

	report, err := verifyRange(ctx, l.store, leaves, from, to)
	if err != nil {
		return nil, err
	}

	if !report.Valid {
		for _, e := range report.Errors {
			logger.Errorc(ctx, "Log integrity violation", logfields.WithLogIndex(e.Index),
				logfields.WithAdditionalMessage(e.Error()))
		}
	}

	return report, nil
}
