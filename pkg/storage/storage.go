// Package storage provides the image bucket the product form uploads into.
// The local backend keeps the tool self-contained; the S3 backend is for
// deployments with a shared public bucket.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Bucket stores uploaded files and hands out stable public URLs.
type Bucket interface {
	Upload(ctx context.Context, key string, data []byte) error
	PublicURL(key string) string
}

// UploadKey builds the object key for a file, prefixed with a millisecond
// timestamp so repeated uploads of the same filename never collide.
func UploadKey(filename string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename))
}

// UploadFiles reads and uploads the given files one at a time and returns
// the public URL of each. Uploads are sequential and the whole operation
// aborts on the first failure; files already uploaded are NOT removed
// (known limitation, matching the record insert that follows).
func UploadFiles(ctx context.Context, bucket Bucket, paths []string) ([]string, error) {
	var urls []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		key := UploadKey(path)
		if err := bucket.Upload(ctx, key, data); err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", path, err)
		}
		urls = append(urls, bucket.PublicURL(key))
	}
	return urls, nil
}
