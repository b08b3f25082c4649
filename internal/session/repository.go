package session

import (
	"context"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/order"
	"bazaar-be/internal/user"
)

// Reducers backing the domain repositories.

var (
	_ cart.Repository  = (*Store)(nil)
	_ order.Repository = (*Store)(nil)
	_ user.Repository  = (*Store)(nil)
)

func (s *Store) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	st, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Cart, nil
}

func (s *Store) UpdateCart(ctx context.Context, sessionID string, fn func(cart.Cart) cart.Cart) (cart.Cart, error) {
	st, err := s.Update(ctx, sessionID, func(st *State) error {
		st.Cart = fn(st.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st.Cart, nil
}

// CommitOrder builds the order from the live cart, prepends it to the
// history and empties the cart. Nothing changes when place fails.
func (s *Store) CommitOrder(ctx context.Context, sessionID string, place order.PlaceFunc) (order.Order, error) {
	var placed order.Order
	_, err := s.Update(ctx, sessionID, func(st *State) error {
		o, err := place(st.Cart, st.CustomerID())
		if err != nil {
			return err
		}
		st.Orders = order.Prepend(st.Orders, o)
		st.Cart = nil
		placed = o
		return nil
	})
	if err != nil {
		return order.Order{}, err
	}
	return placed, nil
}

func (s *Store) ListOrders(ctx context.Context, sessionID string) (order.History, error) {
	st, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.Orders, nil
}

func (s *Store) SetUser(ctx context.Context, sessionID string, u *user.User) error {
	_, err := s.Update(ctx, sessionID, func(st *State) error {
		if u == nil {
			st.User = nil
			return nil
		}
		cp := *u
		st.User = &cp
		return nil
	})
	return err
}

func (s *Store) GetUser(ctx context.Context, sessionID string) (*user.User, error) {
	st, err := s.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return st.User, nil
}
