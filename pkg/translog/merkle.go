/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package translog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// InclusionProof proves that the entry at LeafIndex is part of the tree of TreeSize leaves with RootHash.
type InclusionProof struct {
	LeafIndex     uint64   `json:"leafIndex"`
	TreeSize      uint64   `json:"treeSize"`
	EntryHash     string   `json:"entryHash"`
	SiblingHashes []string `json:"siblingHashes"`
	RootHash      string   `json:"rootHash"`
}

// LeafHash returns the domain-separated leaf hash of an entry hash.
func LeafHash(entryHash string) ([]byte, error) {
	b, err := hex.DecodeString(entryHash)
	if err != nil {
		return nil, fmt.Errorf("decode entry hash: %w", err)
	}

	h := sha256.New()
	h.Write([]byte{leafPrefix})
	h.Write(b)

	return h.Sum(nil), nil
}

func nodeHash(left, right []byte) []byte {
	h := sha256.New()
	h.Write([]byte{nodePrefix})
	h.Write(left)
	h.Write(right)

	return h.Sum(nil)
}

func emptyRoot() []byte {
	h := sha256.Sum256(nil)

	return h[:]
}

// padded extends leaves to the next power of two by repeating the final leaf.
func padded(leaves [][]byte) [][]byte {
	width := 1
	for width < len(leaves) {
		width <<= 1
	}

	level := make([][]byte, width)
	copy(level, leaves)

	for i := len(leaves); i < width; i++ {
		level[i] = leaves[len(leaves)-1]
	}

	return level
}

func parents(level [][]byte) [][]byte {
	next := make([][]byte, len(level)/2)
	for i := range next {
		next[i] = nodeHash(level[2*i], level[2*i+1])
	}

	return next
}

func merkleRoot(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		return emptyRoot()
	}

	level := padded(leaves)
	for len(level) > 1 {
		level = parents(level)
	}

	return level[0]
}

func merklePath(leaves [][]byte, index uint64) (path [][]byte, root []byte) {
	level := padded(leaves)
	i := index

	for len(level) > 1 {
		path = append(path, level[i^1])
		level = parents(level)
		i >>= 1
	}

	return path, level[0]
}

func depth(treeSize uint64) int {
	d := 0
	for w := uint64(1); w < treeSize; w <<= 1 {
		d++
	}

	return d
}

// VerifyInclusionProof recomputes the root from the entry hash and sibling path and compares it
// with the root stored in the proof. The log's current root is not consulted.
func VerifyInclusionProof(p *InclusionProof) bool {
	if p == nil || p.TreeSize == 0 || p.LeafIndex >= p.TreeSize || len(p.SiblingHashes) != depth(p.TreeSize) {
		return false
	}

	root, err := hex.DecodeString(p.RootHash)
	if err != nil {
		return false
	}

	node, err := LeafHash(p.EntryHash)
	if err != nil {
		return false
	}

	i := p.LeafIndex

	for _, s := range p.SiblingHashes {
		sibling, err := hex.DecodeString(s)
		if err != nil || len(sibling) != sha256.Size {
			return false
		}

		if i&1 == 0 {
			node = nodeHash(node, sibling)
		} else {
			node = nodeHash(sibling, node)
		}

		i >>= 1
	}

	return hex.EncodeToString(node) == hex.EncodeToString(root)
}

// VerifyEntryInclusion checks that the proof covers e and that e's stored hash matches its content.
func VerifyEntryInclusion(e *Entry, p *InclusionProof) (bool, error) {
	if e == nil || p == nil {
		return false, nil
	}

	computed, err := ComputeEntryHash(e)
	if err != nil {
		return false, err
	}

	if computed != e.EntryHash || e.EntryHash != p.EntryHash || e.Index != p.LeafIndex {
		return false, nil
	}

	return VerifyInclusionProof(p), nil
}

func encodeAll(hashes [][]byte) []string {
	out := make([]string, len(hashes))
	for i, h := range hashes {
		out[i] = hex.EncodeToString(h)
	}

	return out
}
