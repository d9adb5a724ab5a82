// Package storage archives finished analysis reports behind a backend
// interface with local-filesystem and S3 implementations.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ReportArchive stores serialized analysis reports for later review.
type ReportArchive interface {
	// Store archives a report and returns its archive path
	Store(ctx context.Context, jobID uuid.UUID, name string, data io.Reader) (string, error)

	// Open retrieves an archived report by path
	Open(ctx context.Context, archivePath string) (io.ReadCloser, error)

	// Remove deletes an archived report by path
	Remove(ctx context.Context, archivePath string) error
}

// ArchiveType represents the archive backend type
type ArchiveType string

const (
	ArchiveTypeLocal ArchiveType = "local"
	ArchiveTypeS3    ArchiveType = "s3"
)

// ArchiveConfig holds configuration for the report archive
type ArchiveConfig struct {
	Type         ArchiveType
	LocalPath    string // For local archive
	S3Bucket     string // For S3 archive
	S3Region     string // For S3 archive
	AWSAccessKey string
	AWSSecretKey string
}

// NewReportArchive creates an archive instance based on configuration
func NewReportArchive(cfg ArchiveConfig) (ReportArchive, error) {
	switch cfg.Type {
	case ArchiveTypeLocal:
		return NewLocalArchive(cfg.LocalPath)
	case ArchiveTypeS3:
		return NewS3Archive(cfg)
	default:
		return nil, fmt.Errorf("unknown archive type: %s", cfg.Type)
	}
}

// NewReportArchiveFromEnv creates an archive instance from environment variables
func NewReportArchiveFromEnv() (ReportArchive, error) {
	archiveType := os.Getenv("STORAGE_TYPE")
	if archiveType == "" {
		archiveType = "local" // Default to local for development
	}

	cfg := ArchiveConfig{
		Type: ArchiveType(archiveType),
	}

	switch ArchiveType(archiveType) {
	case ArchiveTypeLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/reports"
		}
		cfg.LocalPath = localPath
		return NewLocalArchive(cfg.LocalPath)

	case ArchiveTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "eu-central-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 archive")
		}

		return NewS3Archive(cfg)

	default:
		return nil, fmt.Errorf("unknown archive type: %s", archiveType)
	}
}

// archivePath generates a unique archive path for a report
func archivePath(jobID uuid.UUID, name string) string {
	ext := filepath.Ext(name)
	baseName := strings.TrimSuffix(name, ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	// Prefix with the job id for uniqueness, sharded by its first byte
	return fmt.Sprintf("%s/%s_%s%s", jobID.String()[:2], jobID.String(), baseName, ext)
}
