/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultKeyPrefix = "vctrust"
)

type clientOpts struct {
	masterName    string
	password      string
	tlsConfig     *tls.Config
	timeout       time.Duration
	keyPrefix     string
	traceProvider trace.TracerProvider
}

type ClientOpt func(opts *clientOpts)

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

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

func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithKeyPrefix sets the namespace of every key written through the client.
func WithKeyPrefix(prefix string) ClientOpt {
	return func(opts *clientOpts) {
		opts.keyPrefix = prefix
	}
}

// Client wraps a go-redis universal client with a key namespace and a per-call timeout.
type Client struct {
	client    redis.UniversalClient
	timeout   time.Duration
	keyPrefix string
}

// New connects to Redis and pings it within the configured timeout. A sentinel failover client
// is used when a master name is set, a cluster client when two or more addresses are given, and
// a single-node client otherwise.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	opt := &clientOpts{
		timeout:   defaultTimeout,
		keyPrefix: defaultKeyPrefix,
	}

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

	if opt.traceProvider != nil {
		if err := redisotel.InstrumentTracing(client, redisotel.WithTracerProvider(opt.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	c := &Client{
		client:    client,
		timeout:   opt.timeout,
		keyPrefix: opt.keyPrefix,
	}

	ctx, cancel := c.Context(context.Background())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return c, nil
}

// Context bounds parent by the client timeout.
func (c *Client) Context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.timeout)
}

// API exposes the underlying go-redis client.
func (c *Client) API() redis.UniversalClient {
	return c.client
}

// Key joins parts under the client key prefix.
func (c *Client) Key(parts ...string) string {
	return strings.Join(append([]string{c.keyPrefix}, parts...), ":")
}

func (c *Client) Close() error {
	return c.client.Close()
}
