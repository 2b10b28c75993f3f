package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/utils"
)

// ProductBrowser walks the catalog page by page for one client. Reads never
// fail: a failed read yields an empty result and is kept in Err until the
// next read.
type ProductBrowser struct {
	mu       sync.Mutex
	catalog  *CatalogService
	filter   models.ProductFilter
	after    *models.ProductCursor
	products []models.Product
	hasMore  bool
	loading  bool
	err      error
}

func NewProductBrowser(catalog *CatalogService) *ProductBrowser {
	return &ProductBrowser{
		catalog:  catalog,
		filter:   models.ProductFilter{}.Normalize(),
		products: []models.Product{},
	}
}

// Resume restores the filter and cursor carried by a page token.
func (b *ProductBrowser) Resume(token string) error {
	filter, after, err := utils.DecodePageToken(token)
	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.err = err
		return err
	}
	b.filter = filter
	b.after = after
	b.hasMore = true
	return nil
}

func (b *ProductBrowser) begin() {
	b.mu.Lock()
	b.loading = true
	b.err = nil
	b.mu.Unlock()
}

func (b *ProductBrowser) end(err error) {
	b.mu.Lock()
	b.loading = false
	if err != nil {
		b.err = err
		log.Printf("[ProductBrowser] %v", err)
	}
	b.mu.Unlock()
}

// Fetch loads the next page for filter. reset, or a filter different from
// the one the cursor was taken under, starts again from the first page.
func (b *ProductBrowser) Fetch(ctx context.Context, filter models.ProductFilter, limit int, reset bool) []models.Product {
	b.begin()

	filter = filter.Normalize()
	b.mu.Lock()
	if reset || !filter.Equal(b.filter) {
		b.after = nil
		b.products = []models.Product{}
		b.hasMore = false
	}
	b.filter = filter
	after := b.after
	b.mu.Unlock()

	page, err := b.catalog.ListPage(ctx, filter, limit, after)
	if err != nil {
		b.end(err)
		return []models.Product{}
	}

	b.mu.Lock()
	b.products = append(b.products, page.Products...)
	b.hasMore = page.HasMore
	if n := len(page.Products); n > 0 {
		b.after = models.CursorFor(page.Products[n-1])
	}
	b.mu.Unlock()

	b.end(nil)
	return page.Products
}

// FetchMore continues the current listing.
func (b *ProductBrowser) FetchMore(ctx context.Context, limit int) []models.Product {
	b.mu.Lock()
	filter := b.filter
	b.mu.Unlock()
	return b.Fetch(ctx, filter, limit, false)
}

func (b *ProductBrowser) Search(ctx context.Context, term string, max int) []models.Product {
	b.begin()
	results, err := b.catalog.Search(ctx, term, max)
	if err != nil {
		b.end(err)
		return []models.Product{}
	}
	b.end(nil)
	return results
}

// Get returns nil when the product does not exist or cannot be read.
func (b *ProductBrowser) Get(ctx context.Context, id string) *models.Product {
	b.begin()
	p, err := b.catalog.Get(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		b.end(nil)
		return nil
	}
	if err != nil {
		b.end(err)
		return nil
	}
	b.end(nil)
	return p
}

func (b *ProductBrowser) Products() []models.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Product(nil), b.products...)
}

func (b *ProductBrowser) HasMore() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hasMore
}

func (b *ProductBrowser) NextCursor() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasMore {
		return ""
	}
	return utils.EncodePageToken(b.filter, b.after)
}

func (b *ProductBrowser) Filter() models.ProductFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

func (b *ProductBrowser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *ProductBrowser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
