package pricing

import (
	"bazaar-be/internal/cart"
	"bazaar-be/internal/money"
)

// DefaultShippingFee is the flat per-order shipping charge in rupees.
const DefaultShippingFee money.Amount = 250

type Totals struct {
	Subtotal money.Amount `json:"subtotal"`
	Shipping money.Amount `json:"shipping"`
	Total    money.Amount `json:"total"`
}

// Calculator derives order totals from a cart. The shipping fee is charged
// once per non-empty cart; there is no per-seller split or free-shipping
// threshold.
type Calculator struct {
	ShippingFee money.Amount
}

func NewCalculator(shippingFee int64) Calculator {
	if shippingFee < 0 {
		shippingFee = int64(DefaultShippingFee)
	}
	return Calculator{ShippingFee: money.Amount(shippingFee)}
}

func (c Calculator) Compute(items cart.Cart) Totals {
	var subtotal money.Amount
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	var shipping money.Amount
	if !items.IsEmpty() {
		shipping = c.ShippingFee
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// Compute uses the default shipping fee.
func Compute(items cart.Cart) Totals {
	return Calculator{ShippingFee: DefaultShippingFee}.Compute(items)
}
