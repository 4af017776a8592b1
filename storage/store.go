package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BlobStore persists generated article images and returns the reference
// recorded on the post.
type BlobStore interface {
	Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// FileStore writes images to a local directory. The returned reference is
// the path relative to the configured base dir.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.baseDir, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create image subdir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return objectName, nil
}
