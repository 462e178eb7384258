package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"repair_hub/internal/config"
	"repair_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3PutObjectAPI is the subset of *s3.Client used for uploads.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStorage uploads device photos to an S3 bucket served publicly from
// publicBaseURL.
type S3PhotoStorage struct {
	client        S3PutObjectAPI
	bucket        string
	publicBaseURL string
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

func NewS3PhotoStorage(client S3PutObjectAPI, cfg config.PhotoStorageConfig) *S3PhotoStorage {
	return &S3PhotoStorage{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

// NewS3Client builds the S3 client; a custom endpoint (e.g. MinIO or
// LocalStack) switches to path-style addressing.
func NewS3Client(awsCfg aws.Config, endpoint string) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

func (s *S3PhotoStorage) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectPath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", objectPath, err)
	}
	return fmt.Sprintf("%s/%s", s.publicBaseURL, objectPath), nil
}
