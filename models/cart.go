package models

import "time"

type CartItem struct {
	ID         string            `json:"id"`
	ProductID  string            `json:"product_id"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Image      string            `json:"image,omitempty"`
	Quantity   int               `json:"quantity"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

type CartState string

const (
	CartGuest       CartState = "guest"
	CartReconciling CartState = "reconciling"
	CartSynced      CartState = "synced"
)

// CartSnapshot is what a device keeps between requests. Owner is the user
// the device cart was last reconciled with.
type CartSnapshot struct {
	Owner     string     `json:"owner,omitempty"`
	Items     []CartItem `json:"items"`
	Coupon    *Coupon    `json:"coupon,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

type CartView struct {
	Token  string     `json:"token"`
	State  CartState  `json:"state"`
	Items  []CartItem `json:"items"`
	Coupon *Coupon    `json:"coupon,omitempty"`
	Totals CartTotals `json:"totals"`
}

const CartMessageReplace = "replace"

// CartMessage is the envelope broadcast to every open client of a device.
type CartMessage struct {
	Type     string       `json:"type"`
	Origin   string       `json:"origin"`
	Snapshot CartSnapshot `json:"snapshot"`
	SentAt   time.Time    `json:"sent_at"`
}
