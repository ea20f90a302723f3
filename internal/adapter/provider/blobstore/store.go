// Package blobstore stores synthesized audio and cover images in S3.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/bolchaal/bolchaal-backend/internal/config"
)

// Store wraps the S3 client for simple put/exists/url operations on public
// asset buckets.
type Store struct {
	client *s3.Client
	region string
	log    *slog.Logger
}

// New creates a Store using the default AWS credential chain.
func New(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("blobstore: load aws config: %w", err)
	}

	return &Store{
		client: s3.NewFromConfig(awsCfg),
		region: cfg.Region,
		log:    logger.With("adapter", "blobstore"),
	}, nil
}

// Exists reports whether an object is already stored, so callers can reuse
// previously synthesized assets instead of regenerating them.
func (s *Store) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("blobstore: head %s/%s: %w", bucket, key, err)
	}

	return true, nil
}

// Put uploads an object.
func (s *Store) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("blobstore: put %s/%s: %w", bucket, key, err)
	}

	s.log.DebugContext(ctx, "object stored",
		slog.String("bucket", bucket),
		slog.String("key", key),
		slog.Int("bytes", len(body)))

	return nil
}

// URL returns the public HTTPS URL of an object.
func (s *Store) URL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}
