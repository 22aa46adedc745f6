/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/trustbloc/vctrust/pkg/translog"
)

// LogEntryStore keeps transparency log entries in index order.
type LogEntryStore struct {
	mu      sync.RWMutex
	entries []*translog.Entry
}

// NewLogEntryStore returns an empty store.
func NewLogEntryStore() *LogEntryStore {
	return &LogEntryStore{}
}

// Append stores entry. Its index must equal the number of stored entries.
func (s *LogEntryStore) Append(_ context.Context, entry *translog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Index != uint64(len(s.entries)) {
		return fmt.Errorf("%w: got index %d, next is %d", translog.ErrIndexConflict, entry.Index, len(s.entries))
	}

	s.entries = append(s.entries, copyEntry(entry))

	return nil
}

// Get returns the entry at index.
func (s *LogEntryStore) Get(_ context.Context, index uint64) (*translog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index >= uint64(len(s.entries)) {
		return nil, fmt.Errorf("entry %d: %w", index, translog.ErrDataNotFound)
	}

	return copyEntry(s.entries[index]), nil
}

// Range returns the entries with from <= index < to.
func (s *LogEntryStore) Range(_ context.Context, from, to uint64) ([]*translog.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if to > uint64(len(s.entries)) {
		to = uint64(len(s.entries))
	}

	if from >= to {
		return nil, nil
	}

	out := make([]*translog.Entry, 0, to-from)

	for _, e := range s.entries[from:to] {
		out = append(out, copyEntry(e))
	}

	return out, nil
}

// Count returns the number of stored entries.
func (s *LogEntryStore) Count(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.entries)), nil
}

// Tamper replaces the stored payload at index. It exists to exercise integrity checks.
func (s *LogEntryStore) Tamper(index uint64, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[index].Payload = append([]byte{}, payload...)
}

func copyEntry(e *translog.Entry) *translog.Entry {
	c := *e
	c.Payload = append([]byte{}, e.Payload...)

	return &c
}
