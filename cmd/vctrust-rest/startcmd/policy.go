/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
)

// EnginePolicy holds the tunables of the anchor queue and its circuit breakers.
type EnginePolicy struct {
	Anchor  AnchorPolicy  `yaml:"anchor"`
	Breaker BreakerPolicy `yaml:"breaker"`
}

type AnchorPolicy struct {
	anchor.Policy `yaml:",inline"`

	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queueSize"`
}

type BreakerPolicy struct {
	FailureThreshold int           `yaml:"failureThreshold"`
	ResetTimeout     time.Duration `yaml:"resetTimeout"`
}

func DefaultEnginePolicy() *EnginePolicy {
	return &EnginePolicy{
		Anchor: AnchorPolicy{
			Policy: anchor.Policy{
				MaxRetries:     5,
				BaseDelay:      time.Second,
				MaxDelay:       time.Minute,
				Jitter:         true,
				AttemptTimeout: 30 * time.Second,
			},
			Workers:   4,
			QueueSize: 1024,
		},
		Breaker: BreakerPolicy{
			FailureThreshold: 5,
			ResetTimeout:     30 * time.Second,
		},
	}
}

// LoadEnginePolicy reads a YAML policy file over the defaults. An empty path yields the defaults.
func LoadEnginePolicy(path string) (*EnginePolicy, error) {
	policy := DefaultEnginePolicy()

	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	if err = yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	return policy, nil
}

// Validate rejects settings the queue cannot run with.
func (p *EnginePolicy) Validate() error {
	var errs []error

	if p.Anchor.Workers <= 0 {
		errs = append(errs, fmt.Errorf("anchor workers must be positive: %d", p.Anchor.Workers))
	}

	if p.Anchor.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("anchor max retries must not be negative: %d", p.Anchor.MaxRetries))
	}

	if p.Anchor.BaseDelay <= 0 || p.Anchor.MaxDelay <= 0 || p.Anchor.AttemptTimeout <= 0 {
		errs = append(errs, errors.New("anchor delays and attempt timeout must be positive"))
	} else if p.Anchor.MaxDelay < p.Anchor.BaseDelay {
		errs = append(errs, fmt.Errorf("anchor backoff cap %s is below the base delay %s",
			p.Anchor.MaxDelay, p.Anchor.BaseDelay))
	}

	if p.Breaker.FailureThreshold <= 0 {
		errs = append(errs, fmt.Errorf("breaker failure threshold must be positive: %d", p.Breaker.FailureThreshold))
	}

	if p.Breaker.ResetTimeout <= 0 {
		errs = append(errs, fmt.Errorf("breaker reset timeout must be positive: %s", p.Breaker.ResetTimeout))
	}

	return errors.Join(errs...)
}

// AnchorRetryPolicy returns the retry settings in the form the anchor queue expects.
func (p *EnginePolicy) AnchorRetryPolicy() anchor.Policy {
	policy := p.Anchor.Policy

	// the queue treats zero as "use the default"; a negative value disables retries
	if policy.MaxRetries == 0 {
		policy.MaxRetries = -1
	}

	return policy
}

// BreakerConfig returns the breaker settings shared by every endpoint.
func (p *EnginePolicy) BreakerConfig() *breaker.Config {
	return &breaker.Config{
		FailureThreshold: p.Breaker.FailureThreshold,
		ResetTimeout:     p.Breaker.ResetTimeout,
		IsFailure:        anchor.IsEndpointFailure,
	}
}
