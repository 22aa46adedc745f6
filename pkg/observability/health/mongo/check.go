/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New returns a MongoDB readiness check. Besides pinging the primary it counts the documents of
// every given collection, which fails when the service user cannot read the anchor queue or the
// transparency log. Missing collections count as empty.
func New(connString, databaseName string, collections ...string) func(ctx context.Context) error {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connString))

	return func(ctx context.Context) error {
		if err != nil {
			return fmt.Errorf("failed to create mongodb client: %w", err)
		}

		if pingErr := client.Ping(ctx, readpref.Primary()); pingErr != nil {
			return fmt.Errorf("failed to ping mongodb: %w", pingErr)
		}

		db := client.Database(databaseName)

		for _, name := range collections {
			if _, countErr := db.Collection(name).EstimatedDocumentCount(ctx); countErr != nil {
				return fmt.Errorf("failed to read mongodb collection %s: %w", name, countErr)
			}
		}

		return nil
	}
}
