package models

import (
	"strings"
	"time"
)

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

type Coupon struct {
	Code         string     `json:"code"`
	Discount     float64    `json:"discount"`
	Type         CouponType `json:"type"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	MinCartValue *float64   `json:"min_cart_value,omitempty"`
	UsageLimit   *int       `json:"usage_limit,omitempty"`
	UsageCount   int        `json:"usage_count"`
	OnePerUser   bool       `json:"one_per_user"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

func (c *Coupon) Exhausted() bool {
	return c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit
}
