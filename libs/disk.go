package libs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Lutkowo/lutkowo/models"
)

// DiskStorage keeps objects under a local directory that the router serves
// at /uploads.
type DiskStorage struct {
	root    string
	baseURL string
}

func NewDiskStorage(root, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(root, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStorage) Put(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	clean, err := cleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}

	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), os.ModePerm); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}

	return s.baseURL + "/" + clean, nil
}

func (s *DiskStorage) Delete(_ context.Context, objectPath string) error {
	clean, err := cleanObjectPath(objectPath)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DiskStorage) PathFromURL(rawURL string) (string, error) {
	rest, ok := strings.CutPrefix(rawURL, s.baseURL+"/")
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, rawURL)
	}
	rest, _, _ = strings.Cut(rest, "?")

	decoded, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, rawURL)
	}
	return cleanObjectPath(decoded)
}

func cleanObjectPath(objectPath string) (string, error) {
	clean := path.Clean("/" + objectPath)[1:]
	if clean == "" || clean != strings.Trim(objectPath, "/") {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidStorageURL, objectPath)
	}
	return clean, nil
}
