/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// New returns a redis readiness check. With WithProbeKey the check also reads that key, which
// fails when an ACL denies access to the status list namespace.
func New(addrs []string, opts ...ClientOpt) func(ctx context.Context) error {
	opt := &clientOpts{}

	for _, f := range opts {
		f(opt)
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:                 addrs,
		ContextTimeoutEnabled: true,
		MasterName:            opt.masterName,
		Password:              opt.password,
		TLSConfig:             opt.tlsConfig,
	})

	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		if opt.probeKey == "" {
			return nil
		}

		if err := client.Exists(ctx, opt.probeKey).Err(); err != nil {
			return fmt.Errorf("failed to read redis key %s: %w", opt.probeKey, err)
		}

		return nil
	}
}

type clientOpts struct {
	masterName string
	password   string
	tlsConfig  *tls.Config
	probeKey   string
}

type ClientOpt func(opts *clientOpts)

func WithMasterName(masterName string) ClientOpt {
	return func(opts *clientOpts) {
		opts.masterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *clientOpts) {
		opts.password = password
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *clientOpts) {
		opts.tlsConfig = tlsConfig
	}
}

// WithProbeKey sets a key the check reads after a successful ping. The key does not need to exist.
func WithProbeKey(key string) ClientOpt {
	return func(opts *clientOpts) {
		opts.probeKey = key
	}
}
