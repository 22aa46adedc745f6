/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package chain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDuplicateHash is returned when the registry already holds the hash. It is permanent.
	ErrDuplicateHash = errors.New("hash already anchored")
	// ErrMalformedHash is returned when the registry rejects the payload. It is permanent.
	ErrMalformedHash = errors.New("malformed hash")
)

// Receipt identifies the registry transaction that anchored a hash.
type Receipt struct {
	TxID        string    `json:"txId"`
	BlockNumber uint64    `json:"blockNumber"`
	AnchoredAt  time.Time `json:"anchoredAt"`
}

// Submitter writes content hashes to an anchoring registry. Submit blocks until the
// registry has confirmed the hash or ctx is done.
type Submitter interface {
	Submit(ctx context.Context, hash string) (*Receipt, error)
	// Endpoint names the downstream registry; breakers are shared per endpoint.
	Endpoint() string
}

// IsPermanent reports whether err will not go away on retry.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrDuplicateHash) || errors.Is(err, ErrMalformedHash)
}
