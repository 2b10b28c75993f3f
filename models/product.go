package models

import "time"

type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

type ProductMetadata struct {
	Weight       *float64    `json:"weight,omitempty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
	Materials    []string    `json:"materials,omitempty"`
	Handmade     bool        `json:"handmade"`
	Customizable bool        `json:"customizable,omitempty"`
}

type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ShortDescription  string          `json:"short_description"`
	Price             float64         `json:"price"`
	Currency          string          `json:"currency"`
	CategoryID        string          `json:"category_id"`
	Images            []string        `json:"images"`
	ThumbnailURL      string          `json:"thumbnail_url"`
	AvailableQuantity int             `json:"available_quantity"`
	Metadata          ProductMetadata `json:"metadata"`
	Tags              []string        `json:"tags"`
	Featured          bool            `json:"featured"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// FirstImage is the image snapshotted into cart lines.
func (p *Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.ThumbnailURL
}

type ProductSort string

const (
	SortByCreated ProductSort = "created"
	SortByPrice   ProductSort = "price"
	SortByName    ProductSort = "name"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ProductFilter identifies a listing. Two queries with different filters
// never share a pagination cursor.
type ProductFilter struct {
	CategoryID string      `json:"category_id,omitempty"`
	MinPrice   *float64    `json:"min_price,omitempty"`
	MaxPrice   *float64    `json:"max_price,omitempty"`
	SortBy     ProductSort `json:"sort_by,omitempty"`
	SortDir    string      `json:"sort_dir,omitempty"`
	Featured   bool        `json:"featured,omitempty"`
}

// Normalize fills in the default ordering (newest first).
func (f ProductFilter) Normalize() ProductFilter {
	switch f.SortBy {
	case SortByPrice, SortByName, SortByCreated:
	default:
		f.SortBy = SortByCreated
	}
	if f.SortDir != SortAsc && f.SortDir != SortDesc {
		if f.SortBy == SortByCreated {
			f.SortDir = SortDesc
		} else {
			f.SortDir = SortAsc
		}
	}
	return f
}

func (f ProductFilter) Equal(o ProductFilter) bool {
	a, b := f.Normalize(), o.Normalize()
	return a.CategoryID == b.CategoryID &&
		a.SortBy == b.SortBy &&
		a.SortDir == b.SortDir &&
		a.Featured == b.Featured &&
		samePrice(a.MinPrice, b.MinPrice) &&
		samePrice(a.MaxPrice, b.MaxPrice)
}

func samePrice(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ProductCursor holds the sort keys of the last product of a page.
type ProductCursor struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
}

func CursorFor(p Product) *ProductCursor {
	return &ProductCursor{ID: p.ID, CreatedAt: p.CreatedAt, Price: p.Price, Name: p.Name}
}

type ProductQuery struct {
	ProductFilter
	Limit      int
	ActiveOnly bool
	ExcludeID  string
	After      *ProductCursor
}

// ProductPage is one page of a listing plus the token for the next one.
type ProductPage struct {
	Products   []Product `json:"products"`
	NextCursor string    `json:"next_cursor,omitempty"`
	HasMore    bool      `json:"has_more"`
}
