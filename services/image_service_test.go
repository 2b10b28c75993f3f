package services

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadDefaultPath(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 5)

	url, err := svc.Upload(context.Background(), pngBytes(t, 8, 8), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, fakeStorageBase+"products/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	url, err = svc.Upload(context.Background(), pngBytes(t, 8, 8), "banners/wiosna.png")
	require.NoError(t, err)
	assert.Equal(t, fakeStorageBase+"banners/wiosna.png", url)
}

func TestUploadRejectsNonImages(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 5)

	_, err := svc.Upload(context.Background(), []byte("<html></html>"), "")
	assert.ErrorIs(t, err, models.ErrInvalidImage)
	assert.Zero(t, storage.count())
}

func TestUploadManyKeepsOrder(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 3)

	urls, err := svc.UploadMany(context.Background(), [][]byte{pngBytes(t, 2, 2), pngBytes(t, 3, 3), pngBytes(t, 4, 4)}, "p1")
	require.NoError(t, err)
	require.Len(t, urls, 3)
	for i, url := range urls {
		assert.True(t, strings.HasPrefix(url, fakeStorageBase+"products/p1/"), url)
		assert.True(t, strings.HasSuffix(url, "_"+string(rune('0'+i))+".png"), url)
	}
	assert.Equal(t, 3, storage.count())

	empty, err := svc.UploadMany(context.Background(), nil, "p1")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUploadManyLimit(t *testing.T) {
	svc := NewImageService(newFakeStorage(), 1)
	_, err := svc.UploadMany(context.Background(), [][]byte{pngBytes(t, 2, 2), pngBytes(t, 2, 2)}, "p1")
	assert.ErrorIs(t, err, models.ErrTooManyImages)
}

func TestUploadManyRollsBack(t *testing.T) {
	storage := newFakeStorage()
	storage.failOn = "_1.png"
	svc := NewImageService(storage, 5)

	_, err := svc.UploadMany(context.Background(), [][]byte{pngBytes(t, 2, 2), pngBytes(t, 2, 2)}, "p1")
	require.Error(t, err)
	assert.Zero(t, storage.count(), "uploads that made it are removed again")
	assert.Len(t, storage.deletes, 1)
}

func TestUploadManyRejectsBeforeUploading(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 5)

	_, err := svc.UploadMany(context.Background(), [][]byte{pngBytes(t, 2, 2), []byte("nope")}, "p1")
	assert.ErrorIs(t, err, models.ErrInvalidImage)
	assert.Zero(t, storage.count())
}

func TestThumbnail(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 5)

	url, err := svc.Thumbnail(context.Background(), pngBytes(t, 600, 400), "p1")
	require.NoError(t, err)
	objectPath, err := storage.PathFromURL(url)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(objectPath, "products/p1/thumb_"), objectPath)
	assert.True(t, strings.HasSuffix(objectPath, ".jpg"), objectPath)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(storage.objects[objectPath]))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, libs.ThumbnailWidth, cfg.Width)
}

func TestDeleteImage(t *testing.T) {
	storage := newFakeStorage()
	svc := NewImageService(storage, 5)
	ctx := context.Background()

	url, err := svc.Upload(ctx, pngBytes(t, 2, 2), "products/a.png")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, url))
	assert.Zero(t, storage.count())

	assert.ErrorIs(t, svc.Delete(ctx, "https://elsewhere.test/a.png"), models.ErrInvalidStorageURL)
}
