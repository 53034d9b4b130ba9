package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalBucket stores objects as files under a workspace directory. Public
// URLs are file:// paths, which terminals and browsers both resolve.
type LocalBucket struct {
	dir string
}

func NewLocalBucket(dir string) (*LocalBucket, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create bucket directory %s: %w", dir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket directory: %w", err)
	}
	return &LocalBucket{dir: abs}, nil
}

func (b *LocalBucket) Upload(_ context.Context, key string, data []byte) error {
	path := filepath.Join(b.dir, filepath.Base(key))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to store object %s: %w", key, err)
	}
	return nil
}

func (b *LocalBucket) PublicURL(key string) string {
	return "file://" + filepath.Join(b.dir, filepath.Base(key))
}
