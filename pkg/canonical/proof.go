/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canonical

import (
	"errors"
	"time"
)

// ProofMetadata binds a payload to its content hash.
type ProofMetadata struct {
	Algorithm        Algorithm `json:"algorithm"`
	Hash             string    `json:"hash"`
	Canonicalization Version   `json:"canonicalization"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// GenerateProofMetadata hashes the payload with sha256 under the current canonicalization.
// New proofs are never produced under a legacy version.
func GenerateProofMetadata(payload Value) (*ProofMetadata, error) {
	h, err := Hash(payload, SHA256, VersionCurrent)
	if err != nil {
		return nil, err
	}

	return &ProofMetadata{
		Algorithm:        SHA256,
		Hash:             h,
		Canonicalization: VersionCurrent,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// VerifyProof checks payload against declared proof metadata. Missing algorithm or
// canonicalization fields default to sha256 and the current version, so a hash that
// was produced under the legacy version still verifies through the fallback.
func VerifyProof(payload Value, declared *ProofMetadata) (*VerifyResult, error) {
	if declared == nil {
		return nil, errors.New("proof metadata is required")
	}

	alg, err := ParseAlgorithm(string(declared.Algorithm))
	if err != nil {
		return nil, err
	}

	version, err := ParseVersion(string(declared.Canonicalization))
	if err != nil {
		return nil, err
	}

	return VerifyHash(payload, declared.Hash, alg, version)
}
