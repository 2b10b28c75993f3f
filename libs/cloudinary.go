package libs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var versionSegment = regexp.MustCompile(`^v\d+$`)

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage prefers the separate credentials and falls back to
// CLOUDINARY_URL.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, cloudinaryURL string) (*CloudinaryStorage, error) {
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
		if err != nil {
			return nil, fmt.Errorf("cloudinary init from params: %w", err)
		}
		return &CloudinaryStorage{cld: cld}, nil
	}

	if cloudinaryURL == "" {
		return nil, errors.New("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Put(ctx context.Context, objectPath string, data []byte, _ string) (string, error) {
	publicID := publicIDFor(objectPath)

	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if res == nil {
		return "", errors.New("cloudinary response is nil")
	}

	if res.SecureURL != "" {
		return res.SecureURL, nil
	}
	if res.URL != "" {
		return res.URL, nil
	}
	return "", errors.New("cloudinary returned no url")
}

func (s *CloudinaryStorage) Delete(ctx context.Context, objectPath string) error {
	publicID := publicIDFor(objectPath)
	if publicID == "" {
		return nil
	}

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete from cloudinary: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary deletion failed: %s", res.Result)
	}

	log.Printf("[Cloudinary] deleted %s (%s)", publicID, res.Result)
	return nil
}

// PathFromURL recovers the public id from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/products/abc.jpg.
func (s *CloudinaryStorage) PathFromURL(rawURL string) (string, error) {
	return CloudinaryPathFromURL(rawURL)
}

func CloudinaryPathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, rawURL)
	}

	_, rest, found := strings.Cut(u.Path, "/upload/")
	if !found || rest == "" {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, rawURL)
	}

	segments := strings.Split(rest, "/")
	for i, seg := range segments {
		if versionSegment.MatchString(seg) {
			segments = segments[i+1:]
			break
		}
	}

	publicID := publicIDFor(strings.Join(segments, "/"))
	if publicID == "" {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, rawURL)
	}
	return publicID, nil
}

func publicIDFor(objectPath string) string {
	objectPath = strings.Trim(objectPath, "/")
	return strings.TrimSuffix(objectPath, path.Ext(objectPath))
}
