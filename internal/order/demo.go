package order

import (
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/payment"
)

const demoCustomerID = "u1"

// DemoOrderIDs are the ids of the orders every new session starts with.
var DemoOrderIDs = []string{"BZ-772104", "BZ-892311"}

// DemoOrders builds the sample history shown to new sessions, newest first.
// Products missing from the catalog are skipped.
func DemoOrders(products []catalog.Product) History {
	byID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := func(ids ...string) cart.Cart {
		var c cart.Cart
		for _, id := range ids {
			if p, ok := byID[id]; ok {
				c = cart.Add(c, p)
			}
		}
		return c
	}

	return History{
		{
			ID:            "BZ-892311",
			CustomerID:    demoCustomerID,
			Date:          time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
			Items:         lines("3", "2"),
			Subtotal:      7000,
			Total:         7000,
			Status:        StatusShipped,
			PaymentMethod: payment.MethodEasypaisa,
			Shipping:      ShippingDetails{FullName: "Ali Khan", Phone: "03001234567", Address: "House 12, Street 4, Gulberg III", City: "Lahore"},
		},
		{
			ID:            "BZ-772104",
			CustomerID:    demoCustomerID,
			Date:          time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
			Items:         lines("5"),
			Subtotal:      2800,
			Total:         2800,
			Status:        StatusDelivered,
			PaymentMethod: payment.MethodCOD,
			Shipping:      ShippingDetails{FullName: "Ali Khan", Phone: "03001234567", Address: "House 12, Street 4, Gulberg III", City: "Lahore"},
		},
	}
}
