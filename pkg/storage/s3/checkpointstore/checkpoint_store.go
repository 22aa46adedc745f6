/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination checkpoint_store_mocks_test.go -package checkpointstore_test -source=checkpoint_store.go -mock_names s3Uploader=MockS3Uploader

package checkpointstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/trustbloc/vctrust/pkg/translog"
)

const (
	contentType = "application/json"
	keyPrefix   = "checkpoints"
	latestKey   = keyPrefix + "/latest.json"
)

type s3Uploader interface {
	PutObject(
		ctx context.Context,
		input *s3.PutObjectInput,
		opts ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)

	GetObject(
		ctx context.Context,
		input *s3.GetObjectInput,
		opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
}

// Store archives transparency log checkpoints in an S3 bucket. Every checkpoint is kept under
// its tree size and the most recent one is mirrored to checkpoints/latest.json.
type Store struct {
	s3Client s3Uploader
	bucket   string
	region   string
	hostName string
}

// NewStore creates Store.
func NewStore(
	s3Uploader s3Uploader,
	bucket string,
	region string,
	hostName string,
) *Store {
	return &Store{
		s3Client: s3Uploader,
		bucket:   bucket,
		region:   region,
		hostName: hostName,
	}
}

// Put uploads cp.
func (p *Store) Put(ctx context.Context, cp *translog.Checkpoint) error {
	b, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	for _, key := range []string{checkpointKey(cp.TreeSize), latestKey} {
		_, err = p.s3Client.PutObject(ctx, &s3.PutObjectInput{
			Body:        bytes.NewReader(b),
			Key:         aws.String(key),
			Bucket:      aws.String(p.bucket),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return fmt.Errorf("failed to upload checkpoint %s: %w", key, err)
		}
	}

	return nil
}

// Latest returns the most recently archived checkpoint.
func (p *Store) Latest(ctx context.Context) (*translog.Checkpoint, error) {
	res, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(latestKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, translog.ErrDataNotFound
		}

		return nil, fmt.Errorf("failed to get checkpoint from S3: %w", err)
	}

	defer res.Body.Close() //nolint:errcheck

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read checkpoint body: %w", err)
	}

	cp := &translog.Checkpoint{}

	if err = json.Unmarshal(b, cp); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}

	return cp, nil
}

// ResourceURL returns the public URL of the checkpoint archived at treeSize.
func (p *Store) ResourceURL(treeSize uint64) string {
	hostName := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", p.bucket, p.region)

	if p.hostName != "" {
		hostName = fmt.Sprintf("https://%s", p.hostName)
	}

	return fmt.Sprintf("%s/%s", hostName, checkpointKey(treeSize))
}

func checkpointKey(treeSize uint64) string {
	return fmt.Sprintf("%s/%020d.json", keyPrefix, treeSize)
}
