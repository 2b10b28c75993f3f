package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Lutkowo/lutkowo/models"
)

// ProductRefresher reloads the first page of the catalog on a fixed interval
// and pushes it to live viewers. It only works while someone is watching;
// the last viewer leaving pauses it and the next one resumes it.
type ProductRefresher struct {
	catalog  *CatalogService
	interval time.Duration

	mu      sync.Mutex
	viewers map[chan []models.Product]struct{}
	latest  []models.Product
	wake    chan struct{}
	refresh func(ctx context.Context) ([]models.Product, error)
}

func NewProductRefresher(catalog *CatalogService, interval time.Duration) *ProductRefresher {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	r := &ProductRefresher{
		catalog:  catalog,
		interval: interval,
		viewers:  make(map[chan []models.Product]struct{}),
		wake:     make(chan struct{}, 1),
	}
	r.refresh = r.loadFirstPage
	return r
}

func (r *ProductRefresher) loadFirstPage(ctx context.Context) ([]models.Product, error) {
	page, err := r.catalog.ListPage(ctx, models.ProductFilter{}, r.catalog.PageSize(), nil)
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

func (r *ProductRefresher) Viewers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.viewers)
}

func (r *ProductRefresher) Paused() bool {
	return r.Viewers() == 0
}

// Watch registers a viewer. The channel receives the latest list right away
// when one is known, then every refresh.
func (r *ProductRefresher) Watch() (<-chan []models.Product, func()) {
	ch := make(chan []models.Product, 1)

	r.mu.Lock()
	r.viewers[ch] = struct{}{}
	first := len(r.viewers) == 1
	if r.latest != nil {
		ch <- r.latest
	}
	r.mu.Unlock()

	if first {
		select {
		case r.wake <- struct{}{}:
		default:
		}
	}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.viewers, ch)
			close(ch)
			r.mu.Unlock()
		})
	}
}

// Run blocks until ctx is done.
func (r *ProductRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[Refresher] started, interval %s", r.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[Refresher] stopped")
			return
		case <-r.wake:
			// resumed by a new viewer
			r.tick(ctx)
			ticker.Reset(r.interval)
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *ProductRefresher) tick(ctx context.Context) {
	if r.Paused() {
		return
	}

	products, err := r.refresh(ctx)
	if err != nil {
		log.Printf("[Refresher] refresh failed, retrying next tick: %v", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.latest = products
	for ch := range r.viewers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- products:
		default:
		}
	}
}
