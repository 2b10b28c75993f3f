package services

import (
	"context"
	"log"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
	"github.com/google/uuid"
)

const reconcileOrigin = "server"

func cartKey(token string) string {
	return "cart:" + token
}

type CartService struct {
	kv       libs.KV
	bus      *CartBus
	carts    CartStore
	products ProductLookup
	coupons  *CouponService
	ttl      time.Duration
	locks    keyedMutex
	now      func() time.Time
}

func NewCartService(kv libs.KV, bus *CartBus, carts CartStore, products ProductLookup, coupons *CouponService, ttl time.Duration) *CartService {
	return &CartService{
		kv:       kv,
		bus:      bus,
		carts:    carts,
		products: products,
		coupons:  coupons,
		ttl:      ttl,
		now:      time.Now,
	}
}

// CartChanged persists the device snapshot. It runs for every state.
func (s *CartService) CartChanged(ctx context.Context, change CartChange) {
	if err := libs.SetJSON(ctx, s.kv, cartKey(change.Token), change.Snapshot, s.ttl); err != nil {
		log.Printf("[Cart] failed to persist device cart %s: %v", change.Token, err)
	}
}

type cartMirror struct {
	carts CartStore
}

// CartChanged writes synced carts to the server copy. Failures are logged
// and dropped: the device snapshot stays the source of truth.
func (o cartMirror) CartChanged(ctx context.Context, change CartChange) {
	if change.State != models.CartSynced || change.Snapshot.Owner == "" {
		return
	}
	if err := o.carts.Save(ctx, change.Snapshot.Owner, change.Snapshot); err != nil {
		log.Printf("[Cart] mirror write for user %s failed: %v", change.Snapshot.Owner, err)
	}
}

func (s *CartService) newManager(token, origin string, snap models.CartSnapshot) *CartManager {
	if snap.Items == nil {
		snap.Items = []models.CartItem{}
	}
	return &CartManager{
		token:     token,
		origin:    origin,
		state:     models.CartGuest,
		snap:      snap,
		products:  s.products,
		coupons:   s.coupons,
		carts:     s.carts,
		observers: []CartObserver{s, cartMirror{carts: s.carts}, s.bus},
		now:       s.now,
	}
}

// Open loads the device cart for token and brings it in line with the
// session: a signed-in user whose cart was not reconciled yet gets it
// reconciled, a guest never sees a cart that belonged to a user.
func (s *CartService) Open(ctx context.Context, token, origin string, session *models.Session) (*CartManager, error) {
	if token == "" {
		token = uuid.NewString()
	}

	var snap models.CartSnapshot
	if _, err := libs.GetJSON(ctx, s.kv, cartKey(token), &snap); err != nil {
		log.Printf("[Cart] failed to read device cart %s: %v", token, err)
	}

	userID := session.UserID()
	if userID == "" && snap.Owner != "" {
		snap = models.CartSnapshot{}
	}

	m := s.newManager(token, origin, snap)
	if userID == "" {
		return m, nil
	}
	if snap.Owner == userID {
		m.state = models.CartSynced
		return m, nil
	}

	if snap.Owner != "" {
		// another user's cart; never merge across accounts
		m.snap = models.CartSnapshot{Items: []models.CartItem{}}
	}

	m.origin = reconcileOrigin
	if err := m.Reconcile(ctx, userID); err != nil {
		log.Printf("[Cart] reconcile for user %s failed, staying guest: %v", userID, err)
	}
	m.origin = origin
	return m, nil
}

// Do runs fn against the device cart while holding the device lock, so
// requests from several tabs of one device apply one at a time.
func (s *CartService) Do(ctx context.Context, token, origin string, session *models.Session, fn func(m *CartManager) error) (*CartManager, error) {
	if token == "" {
		token = uuid.NewString()
	}
	unlock := s.locks.Lock(token)
	defer unlock()

	m, err := s.Open(ctx, token, origin, session)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return m, nil
	}
	return m, fn(m)
}

// DetachDevice drops the device cart on sign-out.
func (s *CartService) DetachDevice(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	unlock := s.locks.Lock(token)
	defer unlock()

	var snap models.CartSnapshot
	if _, err := libs.GetJSON(ctx, s.kv, cartKey(token), &snap); err != nil {
		log.Printf("[Cart] failed to read device cart %s: %v", token, err)
	}
	m := s.newManager(token, reconcileOrigin, snap)
	return m.Detach(ctx)
}

func (s *CartService) Events(ctx context.Context, token string) (<-chan models.CartMessage, func()) {
	return s.bus.Subscribe(ctx, token)
}
