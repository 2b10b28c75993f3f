package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/Lutkowo/lutkowo/utils"
	"github.com/go-playground/validator/v10"
)

const categoryNamesKey = "categories_names"

type CategoryService struct {
	categories CategoryStore
	cache      libs.KV
	cacheTTL   time.Duration
	validate   *validator.Validate
}

func NewCategoryService(categories CategoryStore, cache libs.KV, cacheTTL time.Duration) *CategoryService {
	return &CategoryService{
		categories: categories,
		cache:      cache,
		cacheTTL:   cacheTTL,
		validate:   validator.New(),
	}
}

func (s *CategoryService) All(ctx context.Context) ([]models.Category, error) {
	return s.categories.All(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categories.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

func (s *CategoryService) TopLevel(ctx context.Context) ([]models.Category, error) {
	return s.categories.TopLevel(ctx)
}

func (s *CategoryService) Children(ctx context.Context, parentID string) ([]models.Category, error) {
	return s.categories.Children(ctx, parentID)
}

// Names maps category id to display name, cached between admin writes.
func (s *CategoryService) Names(ctx context.Context) (map[string]string, error) {
	if s.cache != nil {
		names := map[string]string{}
		ok, err := libs.GetJSON(ctx, s.cache, categoryNamesKey, &names)
		if err != nil {
			log.Printf("[Category] cache read failed: %v", err)
		}
		if ok {
			return names, nil
		}
	}

	all, err := s.categories.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Name
	}

	if s.cache != nil {
		if err := libs.SetJSON(ctx, s.cache, categoryNamesKey, names, s.cacheTTL); err != nil {
			log.Printf("[Category] cache write failed: %v", err)
		}
	}
	return names, nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, categoryNamesKey); err != nil {
		log.Printf("[Category] cache invalidation failed: %v", err)
	}
}

// checkParent rejects unknown parents and any parent that sits below id in
// the tree.
func (s *CategoryService) checkParent(ctx context.Context, id string, parentID *string) error {
	parentID = normalizeParent(parentID)
	if parentID == nil {
		return nil
	}

	seen := map[string]bool{}
	next := *parentID
	for next != "" {
		if next == id {
			return models.ErrCategoryCycle
		}
		if seen[next] {
			return models.ErrCategoryCycle
		}
		seen[next] = true

		parent, err := s.categories.GetByID(ctx, next)
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("parent category %s: %w", next, models.ErrNotFound)
		}
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			break
		}
		next = *parent.ParentID
	}
	return nil
}

func (s *CategoryService) resolveSlug(ctx context.Context, id string, req models.CategoryRequest) (string, error) {
	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return "", errors.New("category slug cannot be empty")
	}

	existing, err := s.categories.GetBySlug(ctx, slug)
	if errors.Is(err, models.ErrNotFound) {
		return slug, nil
	}
	if err != nil {
		return "", err
	}
	if existing.ID != id {
		return "", models.ErrSlugTaken
	}
	return slug, nil
}

func (s *CategoryService) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, "", req.ParentID); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(ctx, "", req)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        slug,
		ImageURL:    req.ImageURL,
		ParentID:    normalizeParent(req.ParentID),
		Order:       req.Order,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req models.CategoryRequest) (*models.Category, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, id, req.ParentID); err != nil {
		return nil, err
	}
	slug, err := s.resolveSlug(ctx, id, req)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Slug = slug
	category.ImageURL = req.ImageURL
	category.ParentID = normalizeParent(req.ParentID)
	category.Order = req.Order
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func normalizeParent(parentID *string) *string {
	if parentID == nil || strings.TrimSpace(*parentID) == "" {
		return nil
	}
	p := strings.TrimSpace(*parentID)
	return &p
}

// CategoryBrowser is the read side used by the storefront: failures come
// back as empty results with the error kept in Err.
type CategoryBrowser struct {
	mu      sync.Mutex
	svc     *CategoryService
	loading bool
	err     error
}

func NewCategoryBrowser(svc *CategoryService) *CategoryBrowser {
	return &CategoryBrowser{svc: svc}
}

func (b *CategoryBrowser) begin() {
	b.mu.Lock()
	b.loading = true
	b.err = nil
	b.mu.Unlock()
}

func (b *CategoryBrowser) end(err error) {
	b.mu.Lock()
	b.loading = false
	if err != nil {
		b.err = err
		log.Printf("[CategoryBrowser] %v", err)
	}
	b.mu.Unlock()
}

func (b *CategoryBrowser) list(fn func() ([]models.Category, error)) []models.Category {
	b.begin()
	categories, err := fn()
	b.end(err)
	if err != nil || categories == nil {
		return []models.Category{}
	}
	return categories
}

func (b *CategoryBrowser) one(fn func() (*models.Category, error)) *models.Category {
	b.begin()
	category, err := fn()
	if errors.Is(err, models.ErrNotFound) {
		err = nil
	}
	b.end(err)
	if err != nil {
		return nil
	}
	return category
}

func (b *CategoryBrowser) All(ctx context.Context) []models.Category {
	return b.list(func() ([]models.Category, error) { return b.svc.All(ctx) })
}

func (b *CategoryBrowser) TopLevel(ctx context.Context) []models.Category {
	return b.list(func() ([]models.Category, error) { return b.svc.TopLevel(ctx) })
}

func (b *CategoryBrowser) Children(ctx context.Context, parentID string) []models.Category {
	return b.list(func() ([]models.Category, error) { return b.svc.Children(ctx, parentID) })
}

func (b *CategoryBrowser) GetByID(ctx context.Context, id string) *models.Category {
	return b.one(func() (*models.Category, error) { return b.svc.GetByID(ctx, id) })
}

// GetBySlug returns nil without an error when no category has the slug.
func (b *CategoryBrowser) GetBySlug(ctx context.Context, slug string) *models.Category {
	return b.one(func() (*models.Category, error) { return b.svc.GetBySlug(ctx, slug) })
}

func (b *CategoryBrowser) Names(ctx context.Context) map[string]string {
	b.begin()
	names, err := b.svc.Names(ctx)
	b.end(err)
	if err != nil {
		return map[string]string{}
	}
	return names
}

func (b *CategoryBrowser) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *CategoryBrowser) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}
