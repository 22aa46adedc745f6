/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anchor

import (
	"errors"
	"math/rand"
	"time"

	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/chain"
)

const (
	defaultMaxRetries     = 5
	defaultBaseDelay      = time.Second
	defaultMaxDelay       = time.Minute
	defaultAttemptTimeout = 30 * time.Second
)

// ErrorKind classifies a failed submission.
type ErrorKind string

const (
	// KindTransient failures (network, RPC, timeouts) are retried.
	KindTransient ErrorKind = "transient"
	// KindPermanent failures (duplicate or malformed hash) go to the dead-letter set.
	KindPermanent ErrorKind = "permanent"
	// KindRejected means the breaker refused the call. No attempt was made.
	KindRejected ErrorKind = "rejected"
)

// Classify returns the kind of a submission error.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, breaker.ErrOpen):
		return KindRejected
	case chain.IsPermanent(err):
		return KindPermanent
	default:
		return KindTransient
	}
}

// IsEndpointFailure reports whether err says something about the health of the registry
// endpoint. Permanent rejections come from a healthy endpoint and do not trip the breaker.
func IsEndpointFailure(err error) bool {
	return err != nil && !chain.IsPermanent(err)
}

// Policy controls retries of failed submissions.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int `yaml:"maxRetries"`
	// BaseDelay is the backoff before the first retry. It doubles for every further retry.
	BaseDelay time.Duration `yaml:"baseDelay"`
	// MaxDelay caps the backoff.
	MaxDelay time.Duration `yaml:"maxDelay"`
	// Jitter randomizes each delay within [delay/2, delay].
	Jitter bool `yaml:"jitter"`
	// AttemptTimeout bounds one submission.
	AttemptTimeout time.Duration `yaml:"attemptTimeout"`
}

// WithDefaults fills unset fields.
func (p Policy) WithDefaults() Policy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	} else if p.MaxRetries == 0 {
		p.MaxRetries = defaultMaxRetries
	}

	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}

	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultMaxDelay
	}

	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}

	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = defaultAttemptTimeout
	}

	return p
}

// Action is what happens to a job after a failed attempt.
type Action struct {
	DeadLetter bool
	RetryAfter time.Duration
}

// NextAction decides the fate of a job whose attempt-th attempt failed with an error of the given kind.
// It is pure: jitter is applied by the caller.
func NextAction(p Policy, attempt int, kind ErrorKind) Action {
	switch kind {
	case KindPermanent:
		return Action{DeadLetter: true}
	case KindRejected:
		return Action{RetryAfter: p.BaseDelay}
	case KindTransient:
	}

	if attempt > p.MaxRetries {
		return Action{DeadLetter: true}
	}

	return Action{RetryAfter: backoff(p, attempt)}
}

func backoff(p Policy, attempt int) time.Duration {
	d := p.BaseDelay

	for i := 1; i < attempt; i++ {
		if d >= p.MaxDelay/2 {
			return p.MaxDelay
		}

		d *= 2
	}

	if d > p.MaxDelay {
		return p.MaxDelay
	}

	return d
}

func applyJitter(d time.Duration) time.Duration {
	half := d / 2
	if half <= 0 {
		return d
	}

	return half + time.Duration(rand.Int63n(int64(half)+1)) //nolint:gosec
}
