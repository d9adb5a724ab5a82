package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Archive implements ReportArchive on AWS S3
type S3Archive struct {
	client *s3.Client
	bucket string
}

// NewS3Archive creates an S3 report archive
func NewS3Archive(cfg ArchiveConfig) (*S3Archive, error) {
	ctx := context.Background()

	var awsCfg aws.Config
	var err error

	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		// Use explicit credentials
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKey,
				cfg.AWSSecretKey,
				"",
			)),
		)
	} else {
		// Use default credentials (from environment, IAM role, etc.)
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Archive{
		client: client,
		bucket: cfg.S3Bucket,
	}, nil
}

// Store uploads a report to S3
func (a *S3Archive) Store(ctx context.Context, jobID uuid.UUID, name string, data io.Reader) (string, error) {
	path := archivePath(jobID, name)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(path),
		Body:        data,
		ContentType: aws.String(reportContentType(name)),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload report to S3: %w", err)
	}

	return path, nil
}

// Open retrieves a report from S3
func (a *S3Archive) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	result, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(path),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to download report from S3: %w", err)
	}

	return result.Body, nil
}

// Remove deletes a report from S3
func (a *S3Archive) Remove(ctx context.Context, path string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(path),
	})

	if err != nil {
		return fmt.Errorf("failed to delete report from S3: %w", err)
	}

	return nil
}

// reportContentType determines the content type from the report name
func reportContentType(name string) string {
	switch filepath.Ext(name) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
