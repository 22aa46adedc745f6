/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vctrust/pkg/observability/health/healthchecks"
)

func TestGet(t *testing.T) {
	t.Run("mongodb and redis", func(t *testing.T) {
		checks := healthchecks.Get(&healthchecks.Config{
			MongoDBURL:         "mongodb://mongodb.example.com:27017",
			MongoDBName:        "vctrust",
			MongoDBCollections: []string{"anchor_jobs", "transparency_log"},
			RedisParameters: &healthchecks.RedisParameters{
				Addrs:      []string{"redis.example.com"},
				MasterName: "master",
				Password:   "secret",
				ProbeKey:   "vctrust:status:probe",
			},
		})

		require.Len(t, checks, 2)
		require.Equal(t, "mongodb", checks[0].Name)
		require.Equal(t, "redis", checks[1].Name)
	})

	t.Run("in-memory stores", func(t *testing.T) {
		require.Empty(t, healthchecks.Get(&healthchecks.Config{}))
	})
}
