package services

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const productsPrefix = "products"

type ImageService struct {
	storage   libs.ObjectStorage
	maxImages int
	now       func() time.Time
}

func NewImageService(storage libs.ObjectStorage, maxImages int) *ImageService {
	if maxImages <= 0 {
		maxImages = 5
	}
	return &ImageService{storage: storage, maxImages: maxImages, now: time.Now}
}

func (s *ImageService) MaxImages() int {
	return s.maxImages
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Upload stores one image. Without objectPath the image goes to
// products/{unix_ms}_{random}{ext}.
func (s *ImageService) Upload(ctx context.Context, data []byte, objectPath string) (string, error) {
	contentType, ext, err := libs.DetectImage(data)
	if err != nil {
		return "", err
	}

	if objectPath == "" {
		objectPath = fmt.Sprintf("%s/%d_%s%s", productsPrefix, s.now().UnixMilli(), randomSuffix(), ext)
	}

	url, err := s.storage.Put(ctx, objectPath, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return url, nil
}

// UploadMany uploads every payload concurrently and returns the URLs in
// input order. If any upload fails the ones that made it are deleted again.
func (s *ImageService) UploadMany(ctx context.Context, payloads [][]byte, productID string) ([]string, error) {
	if len(payloads) == 0 {
		return []string{}, nil
	}
	if productID != "" && len(payloads) > s.maxImages {
		return nil, fmt.Errorf("%w: %d > %d", models.ErrTooManyImages, len(payloads), s.maxImages)
	}

	exts := make([]string, len(payloads))
	for i, data := range payloads {
		_, ext, err := libs.DetectImage(data)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		exts[i] = ext
	}

	stamp := s.now().UnixMilli()
	urls := make([]string, len(payloads))

	g, gctx := errgroup.WithContext(ctx)
	for i, data := range payloads {
		objectPath := ""
		if productID != "" {
			objectPath = fmt.Sprintf("%s/%s/%d_%d%s", productsPrefix, productID, stamp, i, exts[i])
		}
		g.Go(func() error {
			url, err := s.Upload(gctx, data, objectPath)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, url := range urls {
			if url == "" {
				continue
			}
			if delErr := s.Delete(context.Background(), url); delErr != nil {
				log.Printf("[Images] rollback of %s failed: %v", url, delErr)
			}
		}
		return nil, err
	}
	return urls, nil
}

// Thumbnail renders a square JPEG preview and stores it next to the
// product's images.
func (s *ImageService) Thumbnail(ctx context.Context, data []byte, productID string) (string, error) {
	thumb, err := libs.MakeThumbnail(data)
	if err != nil {
		return "", err
	}

	dir := productsPrefix
	if productID != "" {
		dir = path.Join(productsPrefix, productID)
	}
	objectPath := fmt.Sprintf("%s/thumb_%d_%s.jpg", dir, s.now().UnixMilli(), randomSuffix())
	return s.Upload(ctx, thumb, objectPath)
}

func (s *ImageService) Delete(ctx context.Context, url string) error {
	objectPath, err := s.storage.PathFromURL(url)
	if err != nil {
		return err
	}
	return s.storage.Delete(ctx, objectPath)
}
