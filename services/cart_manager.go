package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/google/uuid"
)

// CartChange is handed to observers after every mutation.
type CartChange struct {
	Token    string
	State    models.CartState
	Origin   string
	Snapshot models.CartSnapshot
}

type CartObserver interface {
	CartChanged(ctx context.Context, change CartChange)
}

type CartObserverFunc func(ctx context.Context, change CartChange)

func (f CartObserverFunc) CartChanged(ctx context.Context, change CartChange) {
	f(ctx, change)
}

type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// CartManager is the state container for one device cart. Mutations only
// touch in-memory state; persistence, the remote mirror and the broadcast
// run as observers once the mutation is done.
type CartManager struct {
	mu     sync.Mutex
	token  string
	origin string
	state  models.CartState
	snap   models.CartSnapshot

	products  ProductLookup
	coupons   *CouponService
	carts     CartStore
	observers []CartObserver
	now       func() time.Time
}

func (m *CartManager) Token() string {
	return m.token
}

func (m *CartManager) State() models.CartState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *CartManager) Snapshot() models.CartSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *CartManager) snapshotLocked() models.CartSnapshot {
	snap := m.snap
	snap.Items = cloneItems(m.snap.Items)
	if m.snap.Coupon != nil {
		c := *m.snap.Coupon
		snap.Coupon = &c
	}
	return snap
}

func (m *CartManager) View() models.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.snapshotLocked()
	return models.CartView{
		Token:  m.token,
		State:  m.state,
		Items:  snap.Items,
		Coupon: snap.Coupon,
		Totals: ComputeTotals(snap.Items, snap.Coupon),
	}
}

func (m *CartManager) Totals() models.CartTotals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ComputeTotals(m.snap.Items, m.snap.Coupon)
}

func (m *CartManager) userID() string {
	if m.state == models.CartSynced {
		return m.snap.Owner
	}
	return ""
}

func (m *CartManager) mutate(ctx context.Context, fn func(snap *models.CartSnapshot) error) error {
	m.mu.Lock()
	if err := fn(&m.snap); err != nil {
		m.mu.Unlock()
		return err
	}
	m.snap.UpdatedAt = m.now()
	change := CartChange{
		Token:    m.token,
		State:    m.state,
		Origin:   m.origin,
		Snapshot: m.snapshotLocked(),
	}
	m.mu.Unlock()

	m.notify(ctx, change)
	return nil
}

func (m *CartManager) notify(ctx context.Context, change CartChange) {
	for _, o := range m.observers {
		o.CartChanged(ctx, change)
	}
}

// Add puts qty units of the product into the cart. The same product with the
// same attributes lands on the existing line.
func (m *CartManager) Add(ctx context.Context, productID string, qty int, attrs map[string]string) error {
	if qty < 1 {
		return models.ErrInvalidQuantity
	}

	product, err := m.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return models.ErrProductInactive
	}

	if len(attrs) == 0 {
		attrs = nil
	}
	id := LineItemID(product.ID, attrs)

	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		for i := range snap.Items {
			if snap.Items[i].ID == id {
				snap.Items[i].Quantity += qty
				return nil
			}
		}
		item := models.CartItem{
			ID:        id,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.FirstImage(),
			Quantity:  qty,
		}
		if attrs != nil {
			item.Attributes = make(map[string]string, len(attrs))
			for k, v := range attrs {
				item.Attributes[k] = v
			}
		}
		snap.Items = append(snap.Items, item)
		return nil
	})
}

// UpdateQuantity sets the line quantity; anything below 1 removes the line.
func (m *CartManager) UpdateQuantity(ctx context.Context, itemID string, qty int) error {
	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		for i := range snap.Items {
			if snap.Items[i].ID != itemID {
				continue
			}
			if qty < 1 {
				snap.Items = append(snap.Items[:i], snap.Items[i+1:]...)
			} else {
				snap.Items[i].Quantity = qty
			}
			return nil
		}
		return models.ErrNotFound
	})
}

func (m *CartManager) Remove(ctx context.Context, itemID string) error {
	return m.UpdateQuantity(ctx, itemID, 0)
}

func (m *CartManager) Clear(ctx context.Context) error {
	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		snap.Items = []models.CartItem{}
		snap.Coupon = nil
		return nil
	})
}

func (m *CartManager) ApplyCoupon(ctx context.Context, code string) error {
	code = models.NormalizeCouponCode(code)

	m.mu.Lock()
	current := m.snap.Coupon
	userID := m.userID()
	m.mu.Unlock()

	if current != nil && current.Code == code {
		return nil
	}

	coupon, err := m.coupons.Apply(ctx, code, userID)
	if err != nil {
		return err
	}

	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		snap.Coupon = coupon
		return nil
	})
}

func (m *CartManager) RemoveCoupon(ctx context.Context) error {
	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		snap.Coupon = nil
		return nil
	})
}

// Reconcile merges the device cart with the user's server cart and moves the
// manager to synced. On failure the cart stays a guest cart.
func (m *CartManager) Reconcile(ctx context.Context, userID string) error {
	m.mu.Lock()
	prev := m.state
	m.state = models.CartReconciling
	m.mu.Unlock()

	server, err := m.carts.Load(ctx, userID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		m.mu.Lock()
		m.state = prev
		m.mu.Unlock()
		return fmt.Errorf("load server cart: %w", err)
	}

	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		switch {
		case server == nil:
			// the device cart becomes the server cart through the mirror
		case len(snap.Items) == 0:
			snap.Items = cloneItems(server.Items)
			if snap.Coupon == nil {
				snap.Coupon = server.Coupon
			}
		default:
			snap.Items = MergeCarts(snap.Items, server.Items)
			if snap.Coupon == nil {
				snap.Coupon = server.Coupon
			}
		}
		if snap.Items == nil {
			snap.Items = []models.CartItem{}
		}
		snap.Owner = userID
		m.state = models.CartSynced
		return nil
	})
}

// Detach empties the device cart after sign-out. The server copy is left
// untouched and comes back on the next sign-in.
func (m *CartManager) Detach(ctx context.Context) error {
	return m.mutate(ctx, func(snap *models.CartSnapshot) error {
		m.state = models.CartGuest
		snap.Owner = ""
		snap.Items = []models.CartItem{}
		snap.Coupon = nil
		return nil
	})
}

// CheckoutPreview prices the cart as a pending order. Nothing is stored.
func (m *CartManager) CheckoutPreview(req models.CheckoutPreviewRequest) (*models.Order, error) {
	m.mu.Lock()
	snap := m.snapshotLocked()
	userID := m.userID()
	m.mu.Unlock()

	if len(snap.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	totals := ComputeTotals(snap.Items, snap.Coupon)
	items := make([]models.OrderItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		line := Subtotal([]models.CartItem{it})
		items = append(items, models.OrderItem{
			ProductID:    it.ProductID,
			Name:         it.Name,
			Price:        it.Price,
			Quantity:     it.Quantity,
			ThumbnailURL: it.Image,
			Options:      it.Attributes,
			Total:        line.Round(2).InexactFloat64(),
		})
	}

	billing := req.ShippingAddress
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		Status:          models.OrderPending,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  billing,
		ShippingMethod:  req.ShippingMethod,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentPending,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		Total:           totals.Total,
		Notes:           req.Notes,
		GiftMessage:     req.GiftMessage,
		CreatedAt:       m.now(),
	}
	if snap.Coupon != nil && totals.Discount > 0 {
		order.CouponCode = snap.Coupon.Code
	}

	log.Printf("[Cart] checkout preview for %s: %d lines, total %.2f", m.token, len(items), order.Total)
	return order, nil
}
