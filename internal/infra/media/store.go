// Package media stores package images in S3 and hands back durable URLs.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Logger logging contract for the media store
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store S3-backed object store for package images
type Store struct {
	client    *s3.Client
	bucket    string
	region    string
	keyPrefix string
	log       Logger
}

// New creates a store using the default AWS credential chain.
func New(ctx context.Context, region, bucket, keyPrefix string, log Logger) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("media.store: load aws config: %w", err)
	}

	return &Store{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		keyPrefix: keyPrefix,
		log:       log,
	}, nil
}

// Upload stores the blob under a timestamped key and returns its public URL.
func (s *Store) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrUpload, err)
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	key := path.Join(s.keyPrefix,
		fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], path.Base(fileName)))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put object %s: %v", ErrUpload, key, err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	s.log.Info("Uploaded media object key=%s size=%d", key, len(data))

	return url, nil
}
