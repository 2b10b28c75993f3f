package controllers

import (
	"context"
	"sort"
	"sync"

	"github.com/Lutkowo/lutkowo/models"
)

type memProducts struct {
	mu    sync.Mutex
	items map[string]models.Product
}

func newMemProducts(products ...models.Product) *memProducts {
	m := &memProducts{items: map[string]models.Product{}}
	for _, p := range products {
		m.items[p.ID] = p
	}
	return m
}

func (m *memProducts) List(_ context.Context, q models.ProductQuery) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.items {
		if q.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) Update(ctx context.Context, p *models.Product) error {
	return m.Create(ctx, p)
}

func (m *memProducts) Deactivate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return models.ErrNotFound
	}
	p.IsActive = false
	m.items[id] = p
	return nil
}

type memCategories struct {
	items []models.Category
}

func (m *memCategories) All(context.Context) ([]models.Category, error) {
	return m.items, nil
}

func (m *memCategories) TopLevel(context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range m.items {
		if c.ParentID == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) Children(_ context.Context, parentID string) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range m.items {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*models.Category, error) {
	for _, c := range m.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memCategories) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range m.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memCategories) Create(_ context.Context, c *models.Category) error {
	c.ID = "c-new"
	m.items = append(m.items, *c)
	return nil
}

func (m *memCategories) Update(context.Context, *models.Category) error { return nil }

func (m *memCategories) Delete(context.Context, string) error { return nil }
