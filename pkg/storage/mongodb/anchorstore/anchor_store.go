/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anchorstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/storage/mongodb"
)

// Collection holds the anchor jobs.
const Collection = "anchor_jobs"

type anchorDocument struct {
	Hash          string     `bson:"_id"`
	JobID         string     `bson:"jobId"`
	SubmitterID   string     `bson:"submitterId,omitempty"`
	State         string     `bson:"state"`
	Attempts      int        `bson:"attempts"`
	LastError     string     `bson:"lastError,omitempty"`
	NextAttemptAt time.Time  `bson:"nextAttemptAt"`
	DeadLettered  bool       `bson:"deadLettered"`
	TxID          string     `bson:"txId,omitempty"`
	BlockNumber   int64      `bson:"blockNumber,omitempty"`
	AnchoredAt    *time.Time `bson:"anchoredAt,omitempty"`
	LogIndex      *int64     `bson:"logIndex,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt"`
}

// Store keeps anchor jobs in MongoDB, one document per hash.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store and its indexes.
func NewStore(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{mongoClient: mongoClient}

	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("anchor store migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "deadLettered", Value: 1}, {Key: "state", Value: 1}, {Key: "createdAt", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "jobId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return err
}

// Create stores a new job. It fails with anchor.ErrAlreadyExists when the hash has a job.
func (s *Store) Create(ctx context.Context, rec *anchor.Record) error {
	_, err := s.collection().InsertOne(ctx, toDocument(rec))
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", anchor.ErrAlreadyExists, rec.Hash)
	}

	if err != nil {
		return fmt.Errorf("insert anchor job: %w", err)
	}

	return nil
}

// Get returns the job of hash.
func (s *Store) Get(ctx context.Context, hash string) (*anchor.Record, error) {
	doc := &anchorDocument{}

	err := s.collection().FindOne(ctx, bson.M{"_id": hash}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, anchor.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("anchor job find failed: %w", err)
	}

	return fromDocument(doc), nil
}

// Update replaces an existing job.
func (s *Store) Update(ctx context.Context, rec *anchor.Record) error {
	result, err := s.collection().ReplaceOne(ctx, bson.M{"_id": rec.Hash}, toDocument(rec))
	if err != nil {
		return fmt.Errorf("update anchor job: %w", err)
	}

	if result.MatchedCount == 0 {
		return anchor.ErrDataNotFound
	}

	return nil
}

// ListDeadLettered returns dead-lettered jobs, oldest first.
func (s *Store) ListDeadLettered(ctx context.Context) ([]*anchor.Record, error) {
	return s.find(ctx, bson.M{"deadLettered": true})
}

// ListPending returns jobs that are neither confirmed nor dead-lettered, oldest first.
func (s *Store) ListPending(ctx context.Context) ([]*anchor.Record, error) {
	return s.find(ctx, bson.M{
		"deadLettered": false,
		"state":        bson.M{"$ne": string(anchor.StateConfirmed)},
	})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]*anchor.Record, error) {
	cursor, err := s.collection().Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("anchor job list failed: %w", err)
	}

	var docs []*anchorDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode anchor jobs: %w", err)
	}

	records := make([]*anchor.Record, 0, len(docs))

	for _, doc := range docs {
		records = append(records, fromDocument(doc))
	}

	return records, nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(Collection)
}

func toDocument(rec *anchor.Record) *anchorDocument {
	doc := &anchorDocument{
		Hash:          rec.Hash,
		JobID:         rec.JobID,
		SubmitterID:   rec.SubmitterID,
		State:         string(rec.State),
		Attempts:      rec.Attempts,
		LastError:     rec.LastError,
		NextAttemptAt: rec.NextAttemptAt.UTC(),
		DeadLettered:  rec.DeadLettered,
		TxID:          rec.TxID,
		BlockNumber:   int64(rec.BlockNumber),
		CreatedAt:     rec.CreatedAt.UTC(),
		UpdatedAt:     rec.UpdatedAt.UTC(),
	}

	if rec.AnchoredAt != nil {
		t := rec.AnchoredAt.UTC()
		doc.AnchoredAt = &t
	}

	if rec.LogIndex != nil {
		i := int64(*rec.LogIndex)
		doc.LogIndex = &i
	}

	return doc
}

func fromDocument(doc *anchorDocument) *anchor.Record {
	rec := &anchor.Record{
		JobID:         doc.JobID,
		Hash:          doc.Hash,
		SubmitterID:   doc.SubmitterID,
		State:         anchor.State(doc.State),
		Attempts:      doc.Attempts,
		LastError:     doc.LastError,
		NextAttemptAt: doc.NextAttemptAt,
		DeadLettered:  doc.DeadLettered,
		TxID:          doc.TxID,
		BlockNumber:   uint64(doc.BlockNumber),
		AnchoredAt:    doc.AnchoredAt,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}

	if doc.LogIndex != nil {
		i := uint64(*doc.LogIndex)
		rec.LogIndex = &i
	}

	return rec
}
