package order

import (
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/payment"
	"bazaar-be/internal/pricing"
)

// Builder turns a cart into a new PENDING order.
type Builder struct {
	Calc pricing.Calculator
	IDs  *IDGenerator
	Now  func() time.Time
}

func NewBuilder(calc pricing.Calculator, ids *IDGenerator) *Builder {
	return &Builder{Calc: calc, IDs: ids, Now: time.Now}
}

// Build snapshots c into an order. The cart is copied so later cart
// changes never reach the order.
func (b *Builder) Build(c cart.Cart, customerID string, method payment.Method, shipping ShippingDetails) (Order, error) {
	if c.IsEmpty() {
		return Order{}, ErrEmptyCart
	}

	id, err := b.IDs.Next()
	if err != nil {
		return Order{}, err
	}

	if customerID == "" {
		customerID = GuestCustomerID
	}

	totals := b.Calc.Compute(c)

	return Order{
		ID:            id,
		CustomerID:    customerID,
		Date:          b.Now(),
		Items:         c.Clone(),
		Subtotal:      totals.Subtotal,
		ShippingFee:   totals.Shipping,
		Total:         totals.Total,
		Status:        StatusPending,
		PaymentMethod: method,
		Shipping:      shipping,
	}, nil
}
