/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"crypto/tls"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/vctrust/pkg/observability/health/mongo"
	"github.com/trustbloc/vctrust/pkg/observability/health/redis"
)

type RedisParameters struct {
	Addrs      []string
	MasterName string
	Password   string
	// ProbeKey is read on every check to verify access to the status list namespace.
	ProbeKey string
	// TLSConfig is nil for plaintext connections.
	TLSConfig *tls.Config
}

type Config struct {
	// MongoDBURL is empty when the in-memory stores are used.
	MongoDBURL string
	// MongoDBName is the database holding MongoDBCollections.
	MongoDBName        string
	MongoDBCollections []string
	RedisParameters    *RedisParameters
}

// Get returns the readiness checks of the configured backends.
func Get(config *Config) []health.Check {
	var checks []health.Check

	if config.MongoDBURL != "" {
		checks = append(checks, health.Check{
			Name:               "mongodb",
			Check:              mongo.New(config.MongoDBURL, config.MongoDBName, config.MongoDBCollections...),
			MaxTimeInError:     time.Second,
			MaxContiguousFails: 1,
		})
	}

	if config.RedisParameters != nil && len(config.RedisParameters.Addrs) > 0 {
		var opts []redis.ClientOpt

		if config.RedisParameters.MasterName != "" {
			opts = append(opts, redis.WithMasterName(config.RedisParameters.MasterName))
		}

		if config.RedisParameters.Password != "" {
			opts = append(opts, redis.WithPassword(config.RedisParameters.Password))
		}

		if config.RedisParameters.ProbeKey != "" {
			opts = append(opts, redis.WithProbeKey(config.RedisParameters.ProbeKey))
		}

		if config.RedisParameters.TLSConfig != nil {
			opts = append(opts, redis.WithTLSConfig(config.RedisParameters.TLSConfig))
		}

		checks = append(checks, health.Check{
			Name:               "redis",
			Check:              redis.New(config.RedisParameters.Addrs, opts...),
			MaxTimeInError:     time.Second,
			MaxContiguousFails: 1,
		})
	}

	return checks
}
