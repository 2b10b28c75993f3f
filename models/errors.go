package models

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidStorageURL = errors.New("invalid storage url")
	ErrInvalidImage      = errors.New("payload is not a supported image")
	ErrTooManyImages     = errors.New("too many images for one product")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrCategoryCycle     = errors.New("category parent would create a cycle")
	ErrSlugTaken         = errors.New("category slug already exists")
	ErrInvalidCursor     = errors.New("invalid pagination cursor")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductInactive   = errors.New("product is not available")
)

// Coupon rejections.
var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponInactive    = errors.New("coupon inactive")
	ErrCouponExpired     = errors.New("coupon expired")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrCouponAlreadyUsed = errors.New("coupon already used")
)

// Identity provider rejections.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrEmailInUse         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrSessionEnded       = errors.New("session ended")
)
