package order

import (
	"context"

	"bazaar-be/internal/cart"
)

// PlaceFunc builds an order from the session's current cart and customer id.
type PlaceFunc func(c cart.Cart, customerID string) (Order, error)

// Repository is the session-scoped order store. CommitOrder runs place
// against the live cart and, only when it succeeds, prepends the order to
// the history and clears the cart in the same step.
type Repository interface {
	CommitOrder(ctx context.Context, sessionID string, place PlaceFunc) (Order, error)
	ListOrders(ctx context.Context, sessionID string) (History, error)
}
