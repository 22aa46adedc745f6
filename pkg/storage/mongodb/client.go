/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

var logger = log.New("mongodb-client")

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxPool    = 200
	defaultRetryDelay = time.Second
)

// Client is a MongoDB connection bound to one database.
type Client struct {
	client       *mongo.Client
	databaseName string
	timeout      time.Duration
}

// New connects to MongoDB. The initial ping is retried connectRetries times before giving up.
func New(connString string, databaseName string, opts ...ClientOpt) (*Client, error) {
	op := &clientOpts{
		timeout:  defaultTimeout,
		readPref: readpref.SecondaryPreferred(),
	}

	for _, fn := range opts {
		fn(op)
	}

	mongoOpts := mongooptions.Client()
	mongoOpts.ApplyURI(connString)
	mongoOpts.ReadPreference = op.readPref
	mongoOpts.MaxPoolSize = lo.ToPtr(uint64(defaultMaxPool))

	if op.traceProvider != nil {
		mongoOpts.Monitor = otelmongo.NewMonitor(otelmongo.WithTracerProvider(op.traceProvider))
	}

	client, err := mongo.NewClient(mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new MongoDB client: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), op.timeout)
	defer cancel()

	err = client.Connect(ctxWithTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	c := &Client{
		client:       client,
		databaseName: databaseName,
		timeout:      op.timeout,
	}

	if op.connectRetries > 0 {
		err = backoff.RetryNotify(
			func() error {
				ctx, cancelPing := c.Context(context.Background())
				defer cancelPing()

				return c.Ping(ctx)
			},
			backoff.WithMaxRetries(backoff.NewConstantBackOff(op.retryDelay()), op.connectRetries),
			func(err error, delay time.Duration) {
				logger.Warn("MongoDB is not reachable yet, retrying", log.WithError(err),
					log.WithDuration(delay))
			},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to reach MongoDB: %w", err)
		}
	}

	return c, nil
}

func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}

// Context bounds parent by the client timeout.
func (c *Client) Context(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.timeout)
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return nil
}

func (c *Client) Close() error {
	ctx, cancel := c.Context(context.Background())
	defer cancel()

	err := c.client.Disconnect(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrClientDisconnected) {
			return nil
		}

		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}

type clientOpts struct {
	timeout        time.Duration
	readPref       *readpref.ReadPref
	traceProvider  trace.TracerProvider
	connectRetries uint64
	delay          time.Duration
}

func (o *clientOpts) retryDelay() time.Duration {
	if o.delay <= 0 {
		return defaultRetryDelay
	}

	return o.delay
}

type ClientOpt func(opts *clientOpts)

func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

func WithReadPref(readPref *readpref.ReadPref) ClientOpt {
	return func(opts *clientOpts) {
		opts.readPref = readPref
	}
}

func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}

// WithConnectRetries pings the server up to retries times, delay apart, before New returns.
func WithConnectRetries(retries uint64, delay time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.connectRetries = retries
		opts.delay = delay
	}
}
