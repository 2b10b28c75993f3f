package services

import (
	"github.com/Lutkowo/lutkowo/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func Subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(money(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// CouponDiscount is the amount taken off subtotal. A coupon whose minimum
// cart value is not met stays attached but is worth nothing.
func CouponDiscount(subtotal decimal.Decimal, c *models.Coupon) decimal.Decimal {
	if c == nil || !subtotal.IsPositive() {
		return decimal.Zero
	}
	if c.MinCartValue != nil && subtotal.LessThan(money(*c.MinCartValue)) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch c.Type {
	case models.CouponPercentage:
		discount = subtotal.Mul(money(c.Discount)).Div(hundred)
	case models.CouponFixed:
		discount = money(c.Discount)
	default:
		return decimal.Zero
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

func ComputeTotals(items []models.CartItem, c *models.Coupon) models.CartTotals {
	subtotal := Subtotal(items)
	discount := CouponDiscount(subtotal, c)

	count := 0
	for _, it := range items {
		count += it.Quantity
	}

	return models.CartTotals{
		Subtotal:  subtotal.Round(2).InexactFloat64(),
		Discount:  discount.Round(2).InexactFloat64(),
		Total:     subtotal.Sub(discount).Round(2).InexactFloat64(),
		ItemCount: count,
	}
}
