package libs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoragePutAndDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	storage, err := NewDiskStorage(root, "http://localhost:8082/uploads/")
	require.NoError(t, err)

	url, err := storage.Put(ctx, "products/p1/a.png", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8082/uploads/products/p1/a.png", url)

	data, err := os.ReadFile(filepath.Join(root, "products", "p1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)

	objectPath, err := storage.PathFromURL(url)
	require.NoError(t, err)
	assert.Equal(t, "products/p1/a.png", objectPath)

	require.NoError(t, storage.Delete(ctx, objectPath))
	_, err = os.Stat(filepath.Join(root, "products", "p1", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, storage.Delete(ctx, objectPath), "deleting twice is not an error")
}

func TestDiskStorageRejectsBadPaths(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	for _, p := range []string{"", "../etc/passwd", "products/../../x", "a//b"} {
		_, err := storage.Put(context.Background(), p, []byte("x"), "")
		assert.ErrorIs(t, err, models.ErrInvalidStorageURL, p)
	}

	_, err = storage.PathFromURL("https://elsewhere.example/uploads/a.png")
	assert.ErrorIs(t, err, models.ErrInvalidStorageURL)
}
