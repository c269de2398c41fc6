package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	infraconfig "github.com/bridallink/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3Storage implements ObjectStorage
var _ ObjectStorage = (*S3Storage)(nil)

// S3Storage implements ObjectStorage using AWS S3 SDK v2. It works with
// any S3-compatible backend (AWS S3, MinIO, etc.)
type S3Storage struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// S3StorageOption is a functional option for configuring S3Storage
type S3StorageOption func(*S3Storage)

// WithLogger sets a custom logger for S3Storage
func WithLogger(logger *zap.Logger) S3StorageOption {
	return func(s *S3Storage) {
		s.logger = logger
	}
}

// NewS3Storage creates an S3Storage from configuration
func NewS3Storage(cfg *infraconfig.StorageConfig, opts ...S3StorageOption) (*S3Storage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKeyID == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretAccessKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid storage endpoint: %w", err)
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	st := &S3Storage{
		client: client,
		bucket: cfg.Bucket,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

// Upload stores raw file content under the storage key
func (s *S3Storage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(storageKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Download retrieves the file content and content type stored under the
// storage key
func (s *S3Storage) Download(ctx context.Context, storageKey string) ([]byte, string, error) {
	if storageKey == "" {
		return nil, "", errors.New("storage key is required")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to download object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read object body: %w", err)
	}

	contentType := ""
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return data, contentType, nil
}

// Delete removes the object stored under the storage key
func (s *S3Storage) Delete(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
