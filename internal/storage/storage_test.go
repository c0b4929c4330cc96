package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "uploads")

	ls, err := storage.NewLocalStorage(basePath, "")
	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_UploadDownloadDelete(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	content := []byte("before and after")
	path, size, err := ls.Upload(ctx, "Kitchen.JPG", "image/jpeg", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	rc, err := ls.Download(ctx, path)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, ls.Delete(ctx, path))
	require.NoError(t, ls.Delete(ctx, path), "delete is idempotent")

	_, err = ls.Download(ctx, path)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestLocalStorage_UniqueKeys(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	p1, _, err := ls.Upload(ctx, "a.png", "image/png", strings.NewReader("1"))
	require.NoError(t, err)
	p2, _, err := ls.Upload(ctx, "a.png", "image/png", strings.NewReader("2"))
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	ls, err := storage.NewLocalStorage(filepath.Join(base, "media"), "")
	require.NoError(t, err)

	secret := filepath.Join(base, "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("x"), 0600))

	_, err = ls.Download(ctx, "../secret.txt")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrNotFound), "traversal is confined to the base directory")

	_, err = ls.Download(ctx, "")
	assert.Error(t, err)
}

func TestLocalStorage_URL(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "", ls.URL("ab/cd/file.jpg"))

	ls, err = storage.NewLocalStorage(t.TempDir(), "https://cdn.example.no/media/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.no/media/ab/cd/file.jpg", ls.URL("ab/cd/file.jpg"))
}

func TestLocalStorage_Ping(t *testing.T) {
	base := filepath.Join(t.TempDir(), "media")
	ls, err := storage.NewLocalStorage(base, "")
	require.NoError(t, err)
	require.NoError(t, ls.Ping(context.Background()))

	require.NoError(t, os.RemoveAll(base))
	assert.Error(t, ls.Ping(context.Background()))
}

func TestNewStorage_Modes(t *testing.T) {
	s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, zap.NewNop())
	assert.Error(t, err)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, zap.NewNop())
	assert.Error(t, err)
}
