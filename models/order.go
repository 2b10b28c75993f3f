package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPickup   ShippingMethod = "pickup"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
	PaymentPaypal         PaymentMethod = "paypal"
	PaymentStripe         PaymentMethod = "stripe"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

type Address struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Company       string `json:"company,omitempty"`
	StreetAddress string `json:"street_address" binding:"required"`
	Apartment     string `json:"apartment,omitempty"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	Country       string `json:"country" binding:"required"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" binding:"omitempty,email"`
}

type OrderItem struct {
	ProductID    string            `json:"product_id"`
	Name         string            `json:"name"`
	Price        float64           `json:"price"`
	Quantity     int               `json:"quantity"`
	ThumbnailURL string            `json:"thumbnail_url,omitempty"`
	Options      map[string]string `json:"options,omitempty"`
	Total        float64           `json:"total"`
}

type Order struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id,omitempty"`
	Items           []OrderItem    `json:"items"`
	Status          OrderStatus    `json:"status"`
	ShippingAddress Address        `json:"shipping_address"`
	BillingAddress  Address        `json:"billing_address"`
	ShippingMethod  ShippingMethod `json:"shipping_method"`
	PaymentMethod   PaymentMethod  `json:"payment_method"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	Subtotal        float64        `json:"subtotal"`
	Discount        float64        `json:"discount,omitempty"`
	Total           float64        `json:"total"`
	CouponCode      string         `json:"coupon_code,omitempty"`
	Notes           string         `json:"notes,omitempty"`
	GiftMessage     string         `json:"gift_message,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered,
		OrderCompleted, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingPickup:
		return true
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentBankTransfer, PaymentPaypal, PaymentStripe, PaymentCashOnDelivery:
		return true
	}
	return false
}
