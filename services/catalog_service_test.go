package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog creates n active products, p-01 being the oldest.
func seedCatalog(n int) *fakeProducts {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := "lalki"
		if i%2 == 0 {
			category = "misie"
		}
		products = append(products, models.Product{
			ID:         fmt.Sprintf("p-%02d", i),
			Name:       fmt.Sprintf("Zabawka %02d", i),
			Price:      float64(10 * i),
			CategoryID: category,
			Featured:   i%3 == 0,
			IsActive:   true,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}
	return newFakeProducts(products...)
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestListPageWalksCatalog(t *testing.T) {
	store := seedCatalog(5)
	svc := NewCatalogService(store, nil, CatalogConfig{PageSize: 2})
	ctx := context.Background()

	page, err := svc.ListPage(ctx, models.ProductFilter{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-05", "p-04"}, ids(page.Products))
	assert.True(t, page.HasMore)
	require.NotEmpty(t, page.NextCursor)

	page, err = svc.ListPage(ctx, models.ProductFilter{}, 2, models.CursorFor(page.Products[1]))
	require.NoError(t, err)
	assert.Equal(t, []string{"p-03", "p-02"}, ids(page.Products))
	assert.True(t, page.HasMore)

	page, err = svc.ListPage(ctx, models.ProductFilter{}, 2, models.CursorFor(page.Products[1]))
	require.NoError(t, err)
	assert.Equal(t, []string{"p-01"}, ids(page.Products))
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestListPageClampsLimit(t *testing.T) {
	store := seedCatalog(12)
	svc := NewCatalogService(store, nil, CatalogConfig{PageSize: 2})

	page, err := svc.ListPage(context.Background(), models.ProductFilter{}, math.MaxInt, nil)
	require.NoError(t, err)
	assert.Len(t, page.Products, 10, "limits stop at five pages")
	assert.True(t, page.HasMore)

	svc = NewCatalogService(store, nil, CatalogConfig{PageSize: 2, MaxPageSize: 3})
	results, err := svc.Search(context.Background(), "zabawka", math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	featured, err := svc.Featured(context.Background(), math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func TestListPageSkipsInactive(t *testing.T) {
	store := seedCatalog(3)
	require.NoError(t, store.Deactivate(context.Background(), "p-03"))
	svc := NewCatalogService(store, nil, CatalogConfig{})

	page, err := svc.ListPage(context.Background(), models.ProductFilter{}, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-02", "p-01"}, ids(page.Products))
}

func TestListPageCachesFirstPage(t *testing.T) {
	store := seedCatalog(3)
	cache := libs.NewMemoryStore()
	svc := NewCatalogService(store, cache, CatalogConfig{PageSize: 10, CacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.ListPage(ctx, models.ProductFilter{}, 0, nil)
	require.NoError(t, err)
	_, err = svc.ListPage(ctx, models.ProductFilter{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, store.lists, "second read served from cache")

	min := 15.0
	_, err = svc.ListPage(ctx, models.ProductFilter{MinPrice: &min}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, store.lists, "price filters bypass the cache")

	_, err = svc.Create(ctx, models.ProductRequest{Name: "Nowa lalka", Price: 30, CategoryID: "lalki"})
	require.NoError(t, err)

	page, err := svc.ListPage(ctx, models.ProductFilter{}, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, store.lists, "writes invalidate the cache")
	assert.Len(t, page.Products, 4)
}

func TestSearch(t *testing.T) {
	store := newFakeProducts(
		models.Product{ID: "a", Name: "Lalka Zosia", IsActive: true, CreatedAt: time.Unix(3, 0)},
		models.Product{ID: "b", Name: "Miś", Description: "Przytulanka dla lalki", IsActive: true, CreatedAt: time.Unix(2, 0)},
		models.Product{ID: "c", Name: "Klocki", ShortDescription: "LALKOWY domek", IsActive: true, CreatedAt: time.Unix(1, 0)},
		models.Product{ID: "d", Name: "Lalka wycofana", IsActive: false, CreatedAt: time.Unix(4, 0)},
	)
	svc := NewCatalogService(store, nil, CatalogConfig{})
	ctx := context.Background()

	results, err := svc.Search(ctx, "LALK", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(results))

	results, err = svc.Search(ctx, "lalk", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(results))

	results, err = svc.Search(ctx, "rower", 0)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestProductBrowserSearchNoMatch(t *testing.T) {
	browser := NewProductBrowser(NewCatalogService(seedCatalog(4), nil, CatalogConfig{}))
	ctx := context.Background()

	results := browser.Search(ctx, "rower", 0)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.False(t, browser.Loading())
	assert.NoError(t, browser.Err())

	results = browser.Search(ctx, "zabawka 02", 0)
	assert.Equal(t, []string{"p-02"}, ids(results))
	assert.False(t, browser.Loading())
}

func TestSearchWindowIsBounded(t *testing.T) {
	store := seedCatalog(10)
	svc := NewCatalogService(store, nil, CatalogConfig{SearchWindow: 3})

	results, err := svc.Search(context.Background(), "zabawka 01", 0)
	require.NoError(t, err)
	assert.Empty(t, results, "only the newest products are scanned")
}

func TestFeaturedAndSimilar(t *testing.T) {
	store := seedCatalog(6)
	svc := NewCatalogService(store, nil, CatalogConfig{})
	ctx := context.Background()

	featured, err := svc.Featured(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-06", "p-03"}, ids(featured))

	similar, err := svc.Similar(ctx, "p-02", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-06", "p-04"}, ids(similar))

	_, err = svc.Similar(ctx, "brak", 0)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewCatalogService(newFakeProducts(), nil, CatalogConfig{ImagesPerProduct: 2})
	ctx := context.Background()

	_, err := svc.Create(ctx, models.ProductRequest{Name: "X", Price: 10, CategoryID: "lalki"})
	assert.Error(t, err, "name too short")

	_, err = svc.Create(ctx, models.ProductRequest{Name: "Lalka", Price: 10, CategoryID: "lalki", Images: []string{"https://a.pl/1.jpg", "https://a.pl/2.jpg", "https://a.pl/3.jpg"}})
	assert.ErrorIs(t, err, models.ErrTooManyImages)

	product, err := svc.Create(ctx, models.ProductRequest{Name: "Lalka", Price: 10, CategoryID: "lalki"})
	require.NoError(t, err)
	assert.Equal(t, "PLN", product.Currency)
	assert.True(t, product.IsActive)
	assert.NotNil(t, product.Images)
}

func TestAttachImagesRespectsLimit(t *testing.T) {
	store := newFakeProducts(models.Product{ID: "p1", Name: "Lalka", Images: []string{"https://cdn.test/1.jpg"}, IsActive: true})
	svc := NewCatalogService(store, nil, CatalogConfig{ImagesPerProduct: 2})
	ctx := context.Background()

	product, err := svc.AttachImages(ctx, "p1", []string{"https://cdn.test/2.jpg"}, "https://cdn.test/thumb.jpg")
	require.NoError(t, err)
	assert.Len(t, product.Images, 2)
	assert.Equal(t, "https://cdn.test/thumb.jpg", product.ThumbnailURL)

	_, err = svc.AttachImages(ctx, "p1", []string{"https://cdn.test/3.jpg"}, "")
	assert.ErrorIs(t, err, models.ErrTooManyImages)
}

func TestDeleteHidesProduct(t *testing.T) {
	store := seedCatalog(2)
	svc := NewCatalogService(store, nil, CatalogConfig{})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "p-01"))
	p, err := svc.Get(ctx, "p-01")
	require.NoError(t, err)
	assert.False(t, p.IsActive)
}

func TestProductBrowserPaging(t *testing.T) {
	svc := NewCatalogService(seedCatalog(5), nil, CatalogConfig{PageSize: 2})
	browser := NewProductBrowser(svc)
	ctx := context.Background()

	first := browser.Fetch(ctx, models.ProductFilter{}, 0, false)
	assert.Equal(t, []string{"p-05", "p-04"}, ids(first))
	assert.True(t, browser.HasMore())

	second := browser.FetchMore(ctx, 0)
	assert.Equal(t, []string{"p-03", "p-02"}, ids(second))
	assert.Len(t, browser.Products(), 4)

	token := browser.NextCursor()
	require.NotEmpty(t, token)

	resumed := NewProductBrowser(svc)
	require.NoError(t, resumed.Resume(token))
	third := resumed.Fetch(ctx, models.ProductFilter{}, 0, false)
	assert.Equal(t, []string{"p-01"}, ids(third))
	assert.False(t, resumed.HasMore())
	assert.Empty(t, resumed.NextCursor())
}

func TestProductBrowserFilterChangeResets(t *testing.T) {
	svc := NewCatalogService(seedCatalog(6), nil, CatalogConfig{PageSize: 2})
	browser := NewProductBrowser(svc)
	ctx := context.Background()

	browser.Fetch(ctx, models.ProductFilter{}, 0, false)
	browser.FetchMore(ctx, 0)

	lalki := browser.Fetch(ctx, models.ProductFilter{CategoryID: "lalki"}, 0, false)
	assert.Equal(t, []string{"p-05", "p-03"}, ids(lalki))
	assert.Len(t, browser.Products(), 2, "a new filter starts a new listing")

	again := browser.Fetch(ctx, models.ProductFilter{CategoryID: "lalki"}, 0, true)
	assert.Equal(t, []string{"p-05", "p-03"}, ids(again), "reset starts from the first page")
}

func TestProductBrowserErrorSlot(t *testing.T) {
	store := seedCatalog(2)
	store.listErr = errors.New("database unavailable")
	browser := NewProductBrowser(NewCatalogService(store, nil, CatalogConfig{}))
	ctx := context.Background()

	products := browser.Fetch(ctx, models.ProductFilter{}, 0, false)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Error(t, browser.Err())
	assert.False(t, browser.Loading())

	store.mu.Lock()
	store.listErr = nil
	store.mu.Unlock()

	products = browser.Fetch(ctx, models.ProductFilter{}, 0, false)
	assert.Len(t, products, 2)
	assert.NoError(t, browser.Err(), "the next read clears the error")
}

func TestProductBrowserGetMissing(t *testing.T) {
	browser := NewProductBrowser(NewCatalogService(seedCatalog(1), nil, CatalogConfig{}))

	assert.Nil(t, browser.Get(context.Background(), "brak"))
	assert.NoError(t, browser.Err())

	p := browser.Get(context.Background(), "p-01")
	require.NotNil(t, p)
	assert.Equal(t, "Zabawka 01", p.Name)
}

func TestProductBrowserResumeInvalid(t *testing.T) {
	browser := NewProductBrowser(NewCatalogService(seedCatalog(1), nil, CatalogConfig{}))
	assert.ErrorIs(t, browser.Resume("garbage!"), models.ErrInvalidCursor)
	assert.ErrorIs(t, browser.Err(), models.ErrInvalidCursor)
}
