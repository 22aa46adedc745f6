/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logentrystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/vctrust/pkg/storage/mongodb"
	"github.com/trustbloc/vctrust/pkg/translog"
)

// Collection holds the log entries.
const Collection = "transparency_log"

// The payload is kept as the exact canonical text so the entry hash recomputes after a reload.
type entryDocument struct {
	Index        int64     `bson:"_id"`
	EntryHash    string    `bson:"entryHash"`
	PreviousHash string    `bson:"previousHash"`
	Timestamp    time.Time `bson:"timestamp"`
	EntryType    string    `bson:"entryType"`
	Payload      string    `bson:"payload"`
}

// Store persists transparency log entries keyed by index.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Append stores entry. Its index must equal the number of stored entries.
func (s *Store) Append(ctx context.Context, entry *translog.Entry) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}

	if entry.Index != count {
		return fmt.Errorf("%w: got index %d, next is %d", translog.ErrIndexConflict, entry.Index, count)
	}

	_, err = s.collection().InsertOne(ctx, &entryDocument{
		Index:        int64(entry.Index),
		EntryHash:    entry.EntryHash,
		PreviousHash: entry.PreviousHash,
		Timestamp:    entry.Timestamp.UTC(),
		EntryType:    string(entry.EntryType),
		Payload:      string(entry.Payload),
	})
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: index %d already stored", translog.ErrIndexConflict, entry.Index)
	}

	if err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}

	return nil
}

// Get returns the entry at index.
func (s *Store) Get(ctx context.Context, index uint64) (*translog.Entry, error) {
	doc := &entryDocument{}

	err := s.collection().FindOne(ctx, bson.M{"_id": int64(index)}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("entry %d: %w", index, translog.ErrDataNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("log entry find failed: %w", err)
	}

	return fromDocument(doc), nil
}

// Range returns the entries with from <= index < to in index order.
func (s *Store) Range(ctx context.Context, from, to uint64) ([]*translog.Entry, error) {
	if from >= to {
		return nil, nil
	}

	cursor, err := s.collection().Find(ctx,
		bson.M{"_id": bson.M{"$gte": int64(from), "$lt": int64(to)}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("log entry range failed: %w", err)
	}

	var docs []*entryDocument

	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode log entries: %w", err)
	}

	entries := make([]*translog.Entry, 0, len(docs))

	for _, doc := range docs {
		entries = append(entries, fromDocument(doc))
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (uint64, error) {
	n, err := s.collection().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count log entries: %w", err)
	}

	return uint64(n), nil
}

func (s *Store) collection() *mongo.Collection {
	return s.mongoClient.Database().Collection(Collection)
}

func fromDocument(doc *entryDocument) *translog.Entry {
	return &translog.Entry{
		Index:        uint64(doc.Index),
		EntryHash:    doc.EntryHash,
		PreviousHash: doc.PreviousHash,
		Timestamp:    doc.Timestamp,
		EntryType:    translog.EntryType(doc.EntryType),
		Payload:      json.RawMessage(doc.Payload),
	}
}
