package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Lutkowo/lutkowo/models"
)

type fakeProducts struct {
	mu      sync.Mutex
	items   map[string]models.Product
	listErr error
	lists   int
}

func newFakeProducts(products ...models.Product) *fakeProducts {
	f := &fakeProducts{items: map[string]models.Product{}}
	for _, p := range products {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProducts) List(_ context.Context, q models.ProductQuery) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}

	out := []models.Product{}
	for _, p := range f.items {
		switch {
		case q.ActiveOnly && !p.IsActive:
		case q.CategoryID != "" && p.CategoryID != q.CategoryID:
		case q.Featured && !p.Featured:
		case q.ExcludeID != "" && p.ID == q.ExcludeID:
		case q.MinPrice != nil && p.Price < *q.MinPrice:
		case q.MaxPrice != nil && p.Price > *q.MaxPrice:
		default:
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		var less bool
		switch q.SortBy {
		case models.SortByPrice:
			if a.Price == b.Price {
				return a.ID < b.ID
			}
			less = a.Price < b.Price
		case models.SortByName:
			if a.Name == b.Name {
				return a.ID < b.ID
			}
			less = a.Name < b.Name
		default:
			if a.CreatedAt.Equal(b.CreatedAt) {
				return a.ID < b.ID
			}
			less = a.CreatedAt.Before(b.CreatedAt)
		}
		if q.SortDir == models.SortDesc {
			return !less
		}
		return less
	})

	if q.After != nil {
		for i, p := range out {
			if p.ID == q.After.ID {
				out = out[i+1:]
				break
			}
		}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = fmt.Sprintf("p-%d", len(f.items)+1)
	p.CreatedAt = time.Now()
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return models.ErrNotFound
	}
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProducts) Deactivate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return models.ErrNotFound
	}
	p.IsActive = false
	f.items[id] = p
	return nil
}

type fakeCoupons struct {
	mu       sync.Mutex
	coupons  map[string]*models.Coupon
	consumed map[string]bool

	redeemErr error
}

func newFakeCoupons(coupons ...models.Coupon) *fakeCoupons {
	f := &fakeCoupons{coupons: map[string]*models.Coupon{}, consumed: map[string]bool{}}
	for i := range coupons {
		c := coupons[i]
		f.coupons[c.Code] = &c
	}
	return f
}

func (f *fakeCoupons) GetByCode(_ context.Context, code string) (*models.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.coupons[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCoupons) List(_ context.Context) ([]models.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Coupon{}
	for _, c := range f.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCoupons) Create(_ context.Context, c *models.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.coupons[c.Code]; ok {
		return errors.New("duplicate coupon")
	}
	copied := *c
	f.coupons[c.Code] = &copied
	return nil
}

func (f *fakeCoupons) SetActive(_ context.Context, code string, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.coupons[code]
	if !ok {
		return models.ErrNotFound
	}
	c.IsActive = active
	return nil
}

func (f *fakeCoupons) HasConsumed(_ context.Context, userID, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.consumed[userID+"|"+code], nil
}

func (f *fakeCoupons) Redeem(_ context.Context, code, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.redeemErr != nil {
		return f.redeemErr
	}
	c, ok := f.coupons[code]
	if !ok {
		return models.ErrNotFound
	}
	if userID != "" && f.consumed[userID+"|"+code] {
		return models.ErrCouponAlreadyUsed
	}
	if c.Exhausted() {
		return models.ErrCouponExhausted
	}
	c.UsageCount++
	if userID != "" {
		f.consumed[userID+"|"+code] = true
	}
	return nil
}

func (f *fakeCoupons) usage(code string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.coupons[code].UsageCount
}

type fakeCarts struct {
	mu      sync.Mutex
	carts   map[string]models.CartSnapshot
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{carts: map[string]models.CartSnapshot{}}
}

func (f *fakeCarts) Load(_ context.Context, userID string) (*models.CartSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	snap, ok := f.carts[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	snap.Items = cloneItems(snap.Items)
	return &snap, nil
}

func (f *fakeCarts) Save(_ context.Context, userID string, snap models.CartSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	snap.Items = cloneItems(snap.Items)
	f.carts[userID] = snap
	return nil
}

func (f *fakeCarts) get(userID string) (models.CartSnapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.carts[userID]
	return snap, ok
}

type fakeCategories struct {
	mu     sync.Mutex
	items  map[string]models.Category
	allErr error
	alls   int
}

func newFakeCategories(categories ...models.Category) *fakeCategories {
	f := &fakeCategories{items: map[string]models.Category{}}
	for _, c := range categories {
		f.items[c.ID] = c
	}
	return f
}

func (f *fakeCategories) sorted(keep func(models.Category) bool) []models.Category {
	out := []models.Category{}
	for _, c := range f.items {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeCategories) All(_ context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alls++
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.sorted(func(models.Category) bool { return true }), nil
}

func (f *fakeCategories) TopLevel(_ context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(c models.Category) bool { return c.IsTopLevel() }), nil
}

func (f *fakeCategories) Children(_ context.Context, parentID string) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sorted(func(c models.Category) bool { return c.ParentID != nil && *c.ParentID == parentID }), nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategories) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCategories) Create(_ context.Context, c *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = fmt.Sprintf("c-%d", len(f.items)+1)
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategories) Update(_ context.Context, c *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategories) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeUsers struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	profiles map[string]*models.User
	finds    int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{accounts: map[string]*models.Account{}, profiles: map[string]*models.User{}}
}

func (f *fakeUsers) CreateAccount(_ context.Context, a *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if existing.Email == a.Email {
			return models.ErrEmailInUse
		}
	}
	a.ID = fmt.Sprintf("u-%d", len(f.accounts)+1)
	copied := *a
	f.accounts[a.ID] = &copied
	return nil
}

func (f *fakeUsers) FindAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	for _, a := range f.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUsers) FindAccountByID(_ context.Context, id string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeUsers) SetDisabled(_ context.Context, id string, disabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.accounts[id]
	if !ok {
		return models.ErrNotFound
	}
	a.Disabled = disabled
	return nil
}

func (f *fakeUsers) GetProfile(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) CreateProfile(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.profiles[u.ID]; ok {
		copied := *existing
		return &copied, nil
	}
	copied := *u
	f.profiles[u.ID] = &copied
	out := copied
	return &out, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[u.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *u
	f.profiles[u.ID] = &copied
	return nil
}

func (f *fakeUsers) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.profiles[id]
	if !ok {
		return models.ErrNotFound
	}
	u.IsAdmin = isAdmin
	return nil
}

func (f *fakeUsers) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.profiles[id]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

func (f *fakeUsers) ListProfiles(_ context.Context, search string, limit, offset int) ([]models.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []models.User{}
	for _, u := range f.profiles {
		if search == "" || strings.Contains(u.Email, search) || strings.Contains(u.DisplayName, search) {
			all = append(all, *u)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if offset >= total {
		return []models.User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failOn  string
	deletes []string
}

const fakeStorageBase = "https://cdn.test/"

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Put(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && strings.Contains(objectPath, f.failOn) {
		return "", errors.New("storage unavailable")
	}
	f.objects[objectPath] = data
	return fakeStorageBase + objectPath, nil
}

func (f *fakeStorage) Delete(_ context.Context, objectPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectPath)
	f.deletes = append(f.deletes, objectPath)
	return nil
}

func (f *fakeStorage) PathFromURL(rawURL string) (string, error) {
	p, ok := strings.CutPrefix(rawURL, fakeStorageBase)
	if !ok || p == "" {
		return "", models.ErrInvalidStorageURL
	}
	return p, nil
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) SendWelcome(toEmail, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return nil
}
