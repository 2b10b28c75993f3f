package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Lutkowo/lutkowo/models"
)

type CouponService struct {
	coupons CouponStore
	now     func() time.Time
}

func NewCouponService(coupons CouponStore) *CouponService {
	return &CouponService{coupons: coupons, now: time.Now}
}

// Validate looks the code up and checks every eligibility rule. userID may
// be empty for guests, in which case the one-per-user rule is not checked.
func (s *CouponService) Validate(ctx context.Context, code, userID string) (*models.Coupon, error) {
	code = models.NormalizeCouponCode(code)
	if code == "" {
		return nil, models.ErrCouponNotFound
	}

	coupon, err := s.coupons.GetByCode(ctx, code)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("coupon lookup: %w", err)
	}

	if !coupon.IsActive {
		return nil, models.ErrCouponInactive
	}
	if coupon.Expired(s.now()) {
		return nil, models.ErrCouponExpired
	}
	if coupon.Exhausted() {
		return nil, models.ErrCouponExhausted
	}

	if userID != "" && coupon.OnePerUser {
		used, err := s.coupons.HasConsumed(ctx, userID, coupon.Code)
		if err != nil {
			return nil, fmt.Errorf("coupon consumption lookup: %w", err)
		}
		if used {
			return nil, models.ErrCouponAlreadyUsed
		}
	}

	return coupon, nil
}

// Redeem counts one use of the coupon and, for one-per-user coupons,
// records it against the user.
func (s *CouponService) Redeem(ctx context.Context, coupon *models.Coupon, userID string) error {
	if !coupon.OnePerUser {
		userID = ""
	}
	if err := s.coupons.Redeem(ctx, coupon.Code, userID); err != nil {
		return fmt.Errorf("redeem coupon %s: %w", coupon.Code, err)
	}
	coupon.UsageCount++
	return nil
}

func (s *CouponService) Apply(ctx context.Context, code, userID string) (*models.Coupon, error) {
	coupon, err := s.Validate(ctx, code, userID)
	if err != nil {
		log.Printf("[Coupon] %s rejected: %v", models.NormalizeCouponCode(code), err)
		return nil, err
	}
	if err := s.Redeem(ctx, coupon, userID); err != nil {
		log.Printf("[Coupon] %s redeem failed: %v", coupon.Code, err)
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *CouponService) Create(ctx context.Context, req models.CouponRequest) (*models.Coupon, error) {
	coupon := &models.Coupon{
		Code:         models.NormalizeCouponCode(req.Code),
		Discount:     req.Discount,
		Type:         req.Type,
		MinCartValue: req.MinCartValue,
		UsageLimit:   req.UsageLimit,
		OnePerUser:   req.OnePerUser,
		IsActive:     true,
	}

	if coupon.Type == models.CouponPercentage && coupon.Discount > 100 {
		return nil, errors.New("percentage discount cannot exceed 100")
	}

	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		expires, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expires_at: %w", err)
		}
		coupon.ExpiresAt = &expires
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) SetActive(ctx context.Context, code string, active bool) error {
	return s.coupons.SetActive(ctx, models.NormalizeCouponCode(code), active)
}
