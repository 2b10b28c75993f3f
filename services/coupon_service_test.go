package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Lutkowo/lutkowo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCouponValidate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	store := newFakeCoupons(
		models.Coupon{Code: "OK", Type: models.CouponFixed, Discount: 5, IsActive: true, ExpiresAt: &future},
		models.Coupon{Code: "OFF", Type: models.CouponFixed, Discount: 5, IsActive: false},
		models.Coupon{Code: "OLD", Type: models.CouponFixed, Discount: 5, IsActive: true, ExpiresAt: &past},
		models.Coupon{Code: "FULL", Type: models.CouponFixed, Discount: 5, IsActive: true, UsageLimit: intPtr(2), UsageCount: 2},
		models.Coupon{Code: "ONCE", Type: models.CouponFixed, Discount: 5, IsActive: true, OnePerUser: true},
	)
	store.consumed["u1|ONCE"] = true

	svc := NewCouponService(store)
	svc.now = func() time.Time { return now }

	tests := []struct {
		code   string
		userID string
		err    error
	}{
		{"ok", "", nil},
		{"  Ok ", "u1", nil},
		{"", "", models.ErrCouponNotFound},
		{"NOPE", "", models.ErrCouponNotFound},
		{"OFF", "", models.ErrCouponInactive},
		{"OLD", "", models.ErrCouponExpired},
		{"FULL", "", models.ErrCouponExhausted},
		{"ONCE", "u1", models.ErrCouponAlreadyUsed},
		{"ONCE", "u2", nil},
		{"ONCE", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.userID, func(t *testing.T) {
			coupon, err := svc.Validate(context.Background(), tt.code, tt.userID)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, coupon)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.NormalizeCouponCode(tt.code), coupon.Code)
		})
	}
}

func TestCouponApplyRedeems(t *testing.T) {
	store := newFakeCoupons(models.Coupon{Code: "ONCE", Type: models.CouponFixed, Discount: 5, IsActive: true, OnePerUser: true, UsageLimit: intPtr(1)})
	svc := NewCouponService(store)
	ctx := context.Background()

	coupon, err := svc.Apply(ctx, "once", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsageCount)
	assert.True(t, store.consumed["u1|ONCE"])

	_, err = svc.Apply(ctx, "once", "u2")
	assert.ErrorIs(t, err, models.ErrCouponExhausted)
}

func TestCouponRedeemFailureKeepsUse(t *testing.T) {
	store := newFakeCoupons(models.Coupon{Code: "RAZ", Type: models.CouponFixed, Discount: 5, IsActive: true, OnePerUser: true, UsageLimit: intPtr(1)})
	svc := NewCouponService(store)
	ctx := context.Background()

	store.redeemErr = errors.New("db down")
	_, err := svc.Apply(ctx, "raz", "u1")
	require.Error(t, err)
	assert.Zero(t, store.usage("RAZ"), "a failed redeem uses nothing up")
	assert.False(t, store.consumed["u1|RAZ"])

	store.mu.Lock()
	store.redeemErr = nil
	store.mu.Unlock()

	coupon, err := svc.Apply(ctx, "raz", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsageCount)
}

func TestCouponOnePerUserConcurrentApply(t *testing.T) {
	store := newFakeCoupons(models.Coupon{Code: "RAZ", Type: models.CouponFixed, Discount: 5, IsActive: true, OnePerUser: true})
	svc := NewCouponService(store)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Apply(context.Background(), "RAZ", "u1")
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, models.ErrCouponAlreadyUsed)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, store.usage("RAZ"))
}

func TestCouponCreate(t *testing.T) {
	store := newFakeCoupons()
	svc := NewCouponService(store)
	ctx := context.Background()
	expires := "2026-12-31T23:59:59Z"

	coupon, err := svc.Create(ctx, models.CouponRequest{Code: "lato25", Discount: 25, Type: models.CouponPercentage, ExpiresAt: &expires})
	require.NoError(t, err)
	assert.Equal(t, "LATO25", coupon.Code)
	assert.True(t, coupon.IsActive)
	require.NotNil(t, coupon.ExpiresAt)
	assert.Equal(t, 2026, coupon.ExpiresAt.Year())

	_, err = svc.Create(ctx, models.CouponRequest{Code: "ZADUZO", Discount: 150, Type: models.CouponPercentage})
	assert.Error(t, err)

	bad := "jutro"
	_, err = svc.Create(ctx, models.CouponRequest{Code: "ZLADATA", Discount: 5, Type: models.CouponFixed, ExpiresAt: &bad})
	assert.Error(t, err)

	require.NoError(t, svc.SetActive(ctx, "lato25", false))
	_, err = svc.Validate(ctx, "LATO25", "")
	assert.ErrorIs(t, err, models.ErrCouponInactive)
}
