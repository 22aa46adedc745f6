/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/chain"
)

const endpoint = "memledger://local"

// Ledger is an in-process anchoring registry. It is used when no registry RPC
// endpoint is configured, and in tests.
type Ledger struct {
	mu      sync.Mutex
	anchors map[string]*chain.Receipt
	height  uint64
	delay   time.Duration
	faults  []error
	now     func() time.Time
}

// Opt configures the Ledger.
type Opt func(l *Ledger)

// WithConfirmationDelay makes every submission take d before it is confirmed.
func WithConfirmationDelay(d time.Duration) Opt {
	return func(l *Ledger) {
		l.delay = d
	}
}

// WithClock overrides the time source used for anchor timestamps.
func WithClock(now func() time.Time) Opt {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns an empty ledger.
func New(opts ...Opt) *Ledger {
	l := &Ledger{
		anchors: map[string]*chain.Receipt{},
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Endpoint identifies the ledger.
func (l *Ledger) Endpoint() string {
	return endpoint
}

// FailNext makes the next len(errs) submissions fail with the given errors, in order.
func (l *Ledger) FailNext(errs ...error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.faults = append(l.faults, errs...)
}

// Submit records hash in a new block.
func (l *Ledger) Submit(ctx context.Context, hash string) (*chain.Receipt, error) {
	if l.delay > 0 {
		select {
		case <-time.After(l.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !canonical.IsHexDigest(hash) {
		return nil, fmt.Errorf("%w: %q", chain.ErrMalformedHash, hash)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.faults) > 0 {
		err := l.faults[0]
		l.faults = l.faults[1:]

		return nil, err
	}

	if _, ok := l.anchors[hash]; ok {
		return nil, fmt.Errorf("%w: %s", chain.ErrDuplicateHash, hash)
	}

	l.height++

	receipt := &chain.Receipt{
		TxID:        "0x" + uuid.NewString(),
		BlockNumber: l.height,
		AnchoredAt:  l.now().UTC(),
	}

	l.anchors[hash] = receipt

	return receipt, nil
}

// Lookup returns the receipt for hash, if it was anchored.
func (l *Ledger) Lookup(hash string) (*chain.Receipt, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok := l.anchors[hash]

	return r, ok
}
