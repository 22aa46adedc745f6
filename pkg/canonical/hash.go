/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canonical

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// Algorithm names a digest function.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// ParseAlgorithm validates an algorithm name. An empty string selects SHA256.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(s)) {
	case "", SHA256:
		return SHA256, nil
	case SHA384:
		return SHA384, nil
	case SHA512:
		return SHA512, nil
	default:
		return "", fmt.Errorf("%w hash algorithm %q", ErrUnsupported, s)
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w hash algorithm %q", ErrUnsupported, a)
	}
}

// Digest returns the lowercase hex digest of data.
func Digest(data []byte, alg Algorithm) (string, error) {
	h, err := alg.newHash()
	if err != nil {
		return "", err
	}

	h.Write(data)

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Hash canonicalizes v under version and returns its hex digest.
func Hash(v Value, alg Algorithm, version Version) (string, error) {
	b, err := Canonicalize(v, version)
	if err != nil {
		return "", err
	}

	return Digest(b, alg)
}

// VerifyResult is the outcome of a hash-binding check.
type VerifyResult struct {
	Valid bool `json:"valid"`
	// ComputedHash is the digest under the declared version.
	ComputedHash string `json:"computedHash"`
	// Version is the canonicalization the declared hash matched under. Empty when not valid.
	Version Version `json:"version,omitempty"`
	// LegacyFallback is set when the hash only matched under the version before the declared one.
	LegacyFallback bool `json:"legacyFallback"`
}

// VerifyHash recomputes the digest of v under declaredVersion and compares it with
// declaredHash. On mismatch it retries once under the immediately prior version.
// Malformed declared hashes yield an invalid result, not an error.
func VerifyHash(v Value, declaredHash string, alg Algorithm, declaredVersion Version) (*VerifyResult, error) {
	computed, err := Hash(v, alg, declaredVersion)
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{ComputedHash: computed}

	if equalHex(computed, declaredHash) {
		result.Valid = true
		result.Version = declaredVersion

		return result, nil
	}

	prev, ok := declaredVersion.Previous()
	if !ok {
		return result, nil
	}

	legacy, err := Hash(v, alg, prev)
	if err != nil {
		return result, nil //nolint:nilerr // not representable under the prior rules: no match
	}

	if equalHex(legacy, declaredHash) {
		result.Valid = true
		result.Version = prev
		result.LegacyFallback = true
	}

	return result, nil
}

func equalHex(computed, declared string) bool {
	want, err := hex.DecodeString(computed)
	if err != nil {
		return false
	}

	got, err := hex.DecodeString(declared)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(want, got) == 1
}

// IsHexDigest reports whether s is a 64 character hex string (a sha256 digest).
func IsHexDigest(s string) bool {
	if len(s) != 2*sha256.Size {
		return false
	}

	_, err := hex.DecodeString(s)

	return err == nil
}
