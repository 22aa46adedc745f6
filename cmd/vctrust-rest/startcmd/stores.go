/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/trustbloc/vctrust/cmd/common"
	"github.com/trustbloc/vctrust/pkg/chain"
	"github.com/trustbloc/vctrust/pkg/chain/memledger"
	"github.com/trustbloc/vctrust/pkg/chain/rpc"
	"github.com/trustbloc/vctrust/pkg/observability/health/healthchecks"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	"github.com/trustbloc/vctrust/pkg/storage/mem"
	"github.com/trustbloc/vctrust/pkg/storage/mongodb"
	"github.com/trustbloc/vctrust/pkg/storage/mongodb/anchorstore"
	"github.com/trustbloc/vctrust/pkg/storage/mongodb/logentrystore"
	"github.com/trustbloc/vctrust/pkg/storage/redis"
	"github.com/trustbloc/vctrust/pkg/storage/redis/statusstore"
	"github.com/trustbloc/vctrust/pkg/storage/s3/checkpointstore"
	"github.com/trustbloc/vctrust/pkg/translog"
)

const (
	redisConnectRetries = 10
	mongoRetryDelay     = time.Second
)

type anchorStore interface {
	Create(ctx context.Context, rec *anchor.Record) error
	Get(ctx context.Context, hash string) (*anchor.Record, error)
	Update(ctx context.Context, rec *anchor.Record) error
	ListDeadLettered(ctx context.Context) ([]*anchor.Record, error)
	ListPending(ctx context.Context) ([]*anchor.Record, error)
}

type statusStore interface {
	Put(ctx context.Context, status *statuslist.Status) error
	Get(ctx context.Context, credentialHash string) (*statuslist.Status, error)
}

type stores struct {
	anchors      anchorStore
	logEntries   translog.Store
	statuses     statusStore
	healthConfig healthchecks.Config
}

// createStores opens the anchor queue and transparency log on the database selected by the
// database URL and the credential status list on memory or Redis.
func createStores(
	ctx context.Context,
	params *startupParameters,
	tlsConfig *tls.Config,
	app *application,
) (*stores, error) {
	s := &stores{}

	switch params.dbParameters.Driver {
	case common.DriverMongoDB:
		client, err := mongodb.New(params.dbParameters.URL, params.dbParameters.Prefix,
			mongodb.WithTimeout(time.Duration(params.dbParameters.Timeout)*time.Second),
			mongodb.WithConnectRetries(params.dbParameters.Timeout, mongoRetryDelay),
			mongodb.WithTraceProvider(otel.GetTracerProvider()),
		)
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		app.closers = append(app.closers, func() {
			if e := client.Close(); e != nil {
				logger.Warn("Failed to close mongodb client", log.WithError(e))
			}
		})

		s.anchors, err = anchorstore.NewStore(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("create anchor store: %w", err)
		}

		s.logEntries = logentrystore.NewStore(client)
		s.healthConfig.MongoDBURL = params.dbParameters.URL
		s.healthConfig.MongoDBName = params.dbParameters.Prefix
		s.healthConfig.MongoDBCollections = []string{anchorstore.Collection, logentrystore.Collection}
	default:
		s.anchors = mem.NewAnchorStore()
		s.logEntries = mem.NewLogEntryStore()
	}

	if params.redisParameters == nil {
		s.statuses = mem.NewStatusStore()

		return s, nil
	}

	var redisTLS *tls.Config

	if params.redisParameters.useTLS {
		redisTLS = tlsConfig
	}

	opts := []redis.ClientOpt{
		redis.WithMasterName(params.redisParameters.masterName),
		redis.WithPassword(params.redisParameters.password),
		redis.WithTraceProvider(otel.GetTracerProvider()),
	}

	if redisTLS != nil {
		opts = append(opts, redis.WithTLSConfig(redisTLS))
	}

	var client *redis.Client

	err := common.Retry(func() error {
		var e error

		client, e = redis.New(params.redisParameters.addrs, opts...)

		return e
	}, redisConnectRetries, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	app.closers = append(app.closers, func() {
		if e := client.Close(); e != nil {
			logger.Warn("Failed to close redis client", log.WithError(e))
		}
	})

	s.statuses = statusstore.New(client)
	s.healthConfig.RedisParameters = &healthchecks.RedisParameters{
		Addrs:      params.redisParameters.addrs,
		MasterName: params.redisParameters.masterName,
		Password:   params.redisParameters.password,
		ProbeKey:   client.Key(statusstore.KeyPrefix, "probe"),
		TLSConfig:  redisTLS,
	}

	return s, nil
}

// createCheckpointStore archives checkpoints to S3 when a bucket is configured.
func createCheckpointStore(ctx context.Context, params *startupParameters) (translog.CheckpointStore, error) {
	cp := params.checkpointParams
	if cp.bucket == "" {
		return mem.NewCheckpointStore(), nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cp.region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if cp.endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cp.endpoint)
			o.UsePathStyle = true
		}
	})

	return checkpointstore.NewStore(client, cp.bucket, cp.region, ""), nil
}

// createSubmitter returns the JSON-RPC registry client, or an in-process ledger when no
// endpoint is configured.
func createSubmitter(params *startupParameters, tlsConfig *tls.Config) chain.Submitter {
	if params.chainRPCURL == "" {
		logger.Warn("No chain RPC URL configured; anchoring to an in-memory ledger")

		return memledger.New()
	}

	return rpc.NewClient(params.chainRPCURL, rpc.WithHTTPClient(&http.Client{
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
	}))
}
