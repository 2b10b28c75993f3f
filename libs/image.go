package libs

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	ThumbnailWidth  = 300
	ThumbnailHeight = 300
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DetectImage sniffs the payload and returns its MIME type and the file
// extension to store it under.
func DetectImage(data []byte) (string, string, error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("%w: empty payload", models.ErrInvalidImage)
	}

	mt := mimetype.Detect(data)
	contentType := strings.ToLower(mt.String())
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if !allowedImageTypes[contentType] {
		return "", "", fmt.Errorf("%w: %s", models.ErrInvalidImage, contentType)
	}

	ext := mt.Extension()
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return contentType, ext, nil
}

func MakeThumbnail(data []byte) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidImage, err)
	}

	thumb := imaging.Fill(src, ThumbnailWidth, ThumbnailHeight, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
