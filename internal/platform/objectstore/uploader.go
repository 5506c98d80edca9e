package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/isaqu3d/star-wars-wiki-api/internal/config"
	"github.com/isaqu3d/star-wars-wiki-api/internal/platform/logger"
)

// ErrNotConfigured is returned by NewUploader when storage settings are incomplete.
var ErrNotConfigured = errors.New("object storage is not configured")

// PutObjectAPI is the subset of the S3 client used for uploads.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes public objects to one bucket.
type Uploader struct {
	client    PutObjectAPI
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// NewUploader builds an S3 client for cfg. Path-style addressing is used so
// that R2 and MinIO endpoints work without bucket subdomains.
func NewUploader(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}
	return NewUploaderWithClient(client, cfg.Bucket, publicURL, logger), nil
}

// NewUploaderWithClient creates an Uploader around an existing client.
func NewUploaderWithClient(client PutObjectAPI, bucket, publicURL string, logger *slog.Logger) *Uploader {
	if client == nil {
		panic("client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger.With(slog.String("component", "object_uploader")),
	}
}

// Upload stores data under key with a public-read ACL and returns the
// object's public URL.
func (u *Uploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	log := logger.FromContextOrDefault(ctx, u.logger)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		ACL:           types.ObjectCannedACLPublicRead,
		Metadata: map[string]string{
			"uploadedAt": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		log.Error("failed to upload object",
			slog.String("error", err.Error()),
			slog.String("bucket", u.bucket),
			slog.String("key", key))
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Info("object uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
		slog.String("content_type", contentType))
	return u.publicURL + "/" + strings.TrimLeft(key, "/"), nil
}
