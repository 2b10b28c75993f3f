package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/Lutkowo/lutkowo/models"
)

type pageToken struct {
	Filter models.ProductFilter  `json:"f"`
	After  *models.ProductCursor `json:"a"`
}

// EncodePageToken packs the listing filter and the last key of a page into
// an opaque token.
func EncodePageToken(filter models.ProductFilter, after *models.ProductCursor) string {
	if after == nil {
		return ""
	}
	raw, err := json.Marshal(pageToken{Filter: filter.Normalize(), After: after})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodePageToken(token string) (models.ProductFilter, *models.ProductCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return models.ProductFilter{}, nil, fmt.Errorf("%w: %v", models.ErrInvalidCursor, err)
	}

	var pt pageToken
	if err := json.Unmarshal(raw, &pt); err != nil {
		return models.ProductFilter{}, nil, fmt.Errorf("%w: %v", models.ErrInvalidCursor, err)
	}
	if pt.After == nil || pt.After.ID == "" {
		return models.ProductFilter{}, nil, models.ErrInvalidCursor
	}
	return pt.Filter.Normalize(), pt.After, nil
}
