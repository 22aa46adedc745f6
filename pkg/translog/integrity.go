/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package translog

import (
	"bytes"
	"context"
	"fmt"
)

// ViolationKind classifies an integrity break.
type ViolationKind string

const (
	// ViolationHashMismatch means the stored entryHash does not match the entry content.
	ViolationHashMismatch ViolationKind = "hash_mismatch"
	// ViolationBrokenLink means previousHash does not equal the entryHash of the prior entry.
	ViolationBrokenLink ViolationKind = "broken_link"
	// ViolationTimestampRegression means the timestamp is earlier than the prior entry's.
	ViolationTimestampRegression ViolationKind = "timestamp_regression"
	// ViolationIndexMismatch means the stored index differs from the entry position.
	ViolationIndexMismatch ViolationKind = "index_mismatch"
	// ViolationLeafMismatch means the stored entryHash differs from the leaf committed to the tree.
	ViolationLeafMismatch ViolationKind = "leaf_mismatch"
)

// Violation is one integrity break.
type Violation struct {
	Index  uint64        `json:"index"`
	Kind   ViolationKind `json:"kind"`
	Detail string        `json:"detail"`
}

func (v *Violation) Error() string {
	return fmt.Sprintf("entry %d: %s: %s", v.Index, v.Kind, v.Detail)
}

// IntegrityReport is the outcome of an integrity scan over [From, To).
type IntegrityReport struct {
	Valid  bool         `json:"valid"`
	From   uint64       `json:"from"`
	To     uint64       `json:"to"`
	Errors []*Violation `json:"errors"`
}

// verifyRange checks entries in [from, to). When leaves is non-nil, stored hashes are
// also compared with the leaves committed to the tree.
func verifyRange(ctx context.Context, store Store, leaves [][]byte, from, to uint64) (*IntegrityReport, error) {
	report := &IntegrityReport{From: from, To: to, Errors: []*Violation{}}

	if from == to {
		report.Valid = true

		return report, nil
	}

	var prev *Entry

	if from > 0 {
		p, err := store.Get(ctx, from-1)
		if err != nil {
			return nil, fmt.Errorf("load entry %d: %w", from-1, err)
		}

		prev = p
	}

	entries, err := store.Range(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	if uint64(len(entries)) != to-from {
		return nil, fmt.Errorf("%w: expected %d entries, store returned %d", ErrIntegrityViolation,
			to-from, len(entries))
	}

	for i, e := range entries {
		report.Errors = append(report.Errors, checkEntry(e, prev, from+uint64(i), leaves)...)
		prev = e
	}

	report.Valid = len(report.Errors) == 0

	return report, nil
}

func checkEntry(e, prev *Entry, position uint64, leaves [][]byte) []*Violation {
	var found []*Violation

	if e.Index != position {
		found = append(found, &Violation{
			Index:  position,
			Kind:   ViolationIndexMismatch,
			Detail: fmt.Sprintf("stored index %d", e.Index),
		})
	}

	computed, err := ComputeEntryHash(e)

	switch {
	case err != nil:
		found = append(found, &Violation{Index: position, Kind: ViolationHashMismatch, Detail: err.Error()})
	case computed != e.EntryHash:
		found = append(found, &Violation{
			Index:  position,
			Kind:   ViolationHashMismatch,
			Detail: fmt.Sprintf("stored %s, computed %s", e.EntryHash, computed),
		})
	}

	expectedPrev := GenesisHash
	if prev != nil {
		expectedPrev = prev.EntryHash
	}

	if e.PreviousHash != expectedPrev {
		found = append(found, &Violation{
			Index:  position,
			Kind:   ViolationBrokenLink,
			Detail: fmt.Sprintf("previousHash %s, expected %s", e.PreviousHash, expectedPrev),
		})
	}

	if prev != nil && e.Timestamp.Before(prev.Timestamp) {
		found = append(found, &Violation{
			Index: position,
			Kind:  ViolationTimestampRegression,
			Detail: fmt.Sprintf("%s is before %s", formatTimestamp(e.Timestamp),
				formatTimestamp(prev.Timestamp)),
		})
	}

	if position < uint64(len(leaves)) {
		leaf, err := LeafHash(e.EntryHash)
		if err != nil || !bytes.Equal(leaf, leaves[position]) {
			found = append(found, &Violation{
				Index:  position,
				Kind:   ViolationLeafMismatch,
				Detail: "stored entry hash is not the committed leaf",
			})
		}
	}

	return found
}
