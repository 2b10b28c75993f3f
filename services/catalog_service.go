package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/utils"
	"github.com/go-playground/validator/v10"
)

const productCachePrefix = "products_list_"

type CatalogConfig struct {
	PageSize         int
	MaxPageSize      int
	SearchWindow     int
	SearchLimit      int
	ImagesPerProduct int
	CacheTTL         time.Duration
}

type CatalogService struct {
	products ProductStore
	cache    libs.KV
	validate *validator.Validate
	cfg      CatalogConfig
}

func NewCatalogService(products ProductStore, cache libs.KV, cfg CatalogConfig) *CatalogService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPageSize < cfg.PageSize {
		cfg.MaxPageSize = cfg.PageSize * 5
	}
	if cfg.SearchWindow <= 0 {
		cfg.SearchWindow = 50
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 10
	}
	if cfg.ImagesPerProduct <= 0 {
		cfg.ImagesPerProduct = 5
	}
	return &CatalogService{
		products: products,
		cache:    cache,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *CatalogService) PageSize() int {
	return s.cfg.PageSize
}

// clampLimit applies def to unset limits and caps everything else at the
// configured maximum.
func (s *CatalogService) clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}
	return limit
}

func productCacheKey(filter models.ProductFilter, limit int) string {
	f := filter.Normalize()
	return fmt.Sprintf("%sc%s_s%s_%s_l%d", productCachePrefix, f.CategoryID, f.SortBy, f.SortDir, limit)
}

func cacheable(filter models.ProductFilter, after *models.ProductCursor) bool {
	return after == nil && filter.MinPrice == nil && filter.MaxPrice == nil && !filter.Featured
}

// ListPage returns one page of active products after the cursor. First pages
// of plain listings are served from the cache when there is one.
func (s *CatalogService) ListPage(ctx context.Context, filter models.ProductFilter, limit int, after *models.ProductCursor) (*models.ProductPage, error) {
	filter = filter.Normalize()
	limit = s.clampLimit(limit, s.cfg.PageSize)

	useCache := s.cache != nil && cacheable(filter, after)
	cacheKey := productCacheKey(filter, limit)
	if useCache {
		var cached models.ProductPage
		ok, err := libs.GetJSON(ctx, s.cache, cacheKey, &cached)
		if err != nil {
			log.Printf("[Catalog] cache read failed: %v", err)
		}
		if ok {
			return &cached, nil
		}
	}

	// one extra row tells whether another page exists
	products, err := s.products.List(ctx, models.ProductQuery{
		ProductFilter: filter,
		Limit:         limit + 1,
		ActiveOnly:    true,
		After:         after,
	})
	if err != nil {
		return nil, err
	}

	page := &models.ProductPage{Products: products}
	if len(products) > limit {
		page.Products = products[:limit]
		page.HasMore = true
		page.NextCursor = utils.EncodePageToken(filter, models.CursorFor(page.Products[limit-1]))
	}

	if useCache {
		if err := libs.SetJSON(ctx, s.cache, cacheKey, page, s.cfg.CacheTTL); err != nil {
			log.Printf("[Catalog] cache write failed: %v", err)
		}
	}
	return page, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Search scans a bounded window of the newest active products and keeps the
// ones whose name or descriptions contain term.
func (s *CatalogService) Search(ctx context.Context, term string, max int) ([]models.Product, error) {
	max = s.clampLimit(max, s.cfg.SearchLimit)

	window, err := s.products.List(ctx, models.ProductQuery{
		ProductFilter: models.ProductFilter{}.Normalize(),
		Limit:         s.cfg.SearchWindow,
		ActiveOnly:    true,
	})
	if err != nil {
		return nil, err
	}

	return filterByTerm(window, term, max), nil
}

func filterByTerm(products []models.Product, term string, max int) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := []models.Product{}
	for _, p := range products {
		if len(out) >= max {
			break
		}
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.ShortDescription), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	limit = s.clampLimit(limit, 8)
	return s.products.List(ctx, models.ProductQuery{
		ProductFilter: models.ProductFilter{Featured: true}.Normalize(),
		Limit:         limit,
		ActiveOnly:    true,
	})
}

// Similar returns other active products from the same category.
func (s *CatalogService) Similar(ctx context.Context, id string, limit int) ([]models.Product, error) {
	limit = s.clampLimit(limit, 4)
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.CategoryID == "" {
		return []models.Product{}, nil
	}
	return s.products.List(ctx, models.ProductQuery{
		ProductFilter: models.ProductFilter{CategoryID: product.CategoryID}.Normalize(),
		Limit:         limit,
		ActiveOnly:    true,
		ExcludeID:     product.ID,
	})
}

func (s *CatalogService) validateRequest(req models.ProductRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if len(req.Images) > s.cfg.ImagesPerProduct {
		return fmt.Errorf("%w: %d > %d", models.ErrTooManyImages, len(req.Images), s.cfg.ImagesPerProduct)
	}
	return nil
}

func applyProductRequest(p *models.Product, req models.ProductRequest) {
	p.Name = req.Name
	p.Description = req.Description
	p.ShortDescription = req.ShortDescription
	p.Price = req.Price
	p.Currency = strings.ToUpper(req.Currency)
	if p.Currency == "" {
		p.Currency = "PLN"
	}
	p.CategoryID = req.CategoryID
	p.Images = req.Images
	if p.Images == nil {
		p.Images = []string{}
	}
	p.ThumbnailURL = req.ThumbnailURL
	p.AvailableQuantity = req.AvailableQuantity
	p.Metadata = req.Metadata
	p.Tags = req.Tags
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.Featured = req.Featured
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func (s *CatalogService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	product := &models.Product{IsActive: true}
	applyProductRequest(product, req)

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyProductRequest(product, req)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// AttachImages appends uploaded image URLs to the product.
func (s *CatalogService) AttachImages(ctx context.Context, id string, urls []string, thumbnail string) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(product.Images)+len(urls) > s.cfg.ImagesPerProduct {
		return nil, models.ErrTooManyImages
	}

	product.Images = append(product.Images, urls...)
	if thumbnail != "" {
		product.ThumbnailURL = thumbnail
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.products.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DelPrefix(ctx, productCachePrefix); err != nil {
		log.Printf("[Catalog] cache invalidation failed: %v", err)
	}
}
