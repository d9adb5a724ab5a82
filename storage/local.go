package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalArchive implements ReportArchive on the local filesystem
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates a local report archive
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{
		basePath: basePath,
	}, nil
}

// Store writes a report to the local archive
func (a *LocalArchive) Store(ctx context.Context, jobID uuid.UUID, name string, data io.Reader) (string, error) {
	path := archivePath(jobID, name)
	fullPath := filepath.Join(a.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	if err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

// Open retrieves a report from the local archive
func (a *LocalArchive) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath := filepath.Join(a.basePath, path)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("report not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open report: %w", err)
	}

	return file, nil
}

// Remove deletes a report from the local archive
func (a *LocalArchive) Remove(ctx context.Context, path string) error {
	fullPath := filepath.Join(a.basePath, path)

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	return nil
}
