package libs

import "context"

// ObjectStorage stores binary objects under slash separated paths and hands
// out public URLs for them.
type ObjectStorage interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	PathFromURL(rawURL string) (string, error)
}
