package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBucketUploadAndPublicURL(t *testing.T) {
	bucket, err := NewLocalBucket(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	err = bucket.Upload(context.Background(), "1700000000000_red.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	url := bucket.PublicURL("1700000000000_red.jpg")
	assert.True(t, strings.HasPrefix(url, "file://"), "got %q", url)

	content, err := os.ReadFile(strings.TrimPrefix(url, "file://"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestUploadKeyUsesBaseName(t *testing.T) {
	key := UploadKey("/some/dir/red shoes.jpg")
	assert.True(t, strings.HasSuffix(key, "_red shoes.jpg"), "got %q", key)
	assert.NotContains(t, key, "/")
}

func TestUploadFilesSequentialAbortsOnFailure(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.jpg")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0644))
	missing := filepath.Join(dir, "missing.jpg")

	bucket, err := NewLocalBucket(filepath.Join(dir, "bucket"))
	require.NoError(t, err)

	urls, err := UploadFiles(context.Background(), bucket, []string{first, missing})
	require.Error(t, err)
	assert.Nil(t, urls)

	// The first upload is not rolled back.
	entries, err := os.ReadDir(filepath.Join(dir, "bucket"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadFilesReturnsURLsInOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.jpg", "b.jpg"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		paths = append(paths, p)
	}

	bucket, err := NewLocalBucket(filepath.Join(dir, "bucket"))
	require.NoError(t, err)

	urls, err := UploadFiles(context.Background(), bucket, paths)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Contains(t, urls[0], "a.jpg")
	assert.Contains(t, urls[1], "b.jpg")
}
