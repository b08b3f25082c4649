package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/order"
	"bazaar-be/internal/payment"
	"bazaar-be/internal/pricing"
	"bazaar-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kurta = catalog.Product{ID: "2", Name: "Men's Cotton Kurta", Price: 2500}

func newBuilder() *order.Builder {
	return order.NewBuilder(pricing.NewCalculator(250), order.NewIDGenerator())
}

func TestStore_CreateSeedsDemoOrders(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{Seed: func() order.History {
		return order.DemoOrders(catalog.SeedProducts())
	}})

	id := s.Create(ctx)

	orders, err := s.ListOrders(ctx, id)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "BZ-892311", orders[0].ID)

	c, err := s.GetCart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, c)

	u, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_UnknownSession(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})

	_, err := s.GetCart(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.UpdateCart(ctx, "nope", func(c cart.Cart) cart.Cart { return c })
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.False(t, s.Touch(ctx, "nope"))
}

func TestStore_UpdateCart(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})
	id := s.Create(ctx)

	c, err := s.UpdateCart(ctx, id, func(c cart.Cart) cart.Cart { return cart.Add(c, kurta) })
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count())

	c[0].Quantity = 99

	stored, err := s.GetCart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, stored[0].Quantity)
}

func TestStore_CommitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success clears cart and prepends order", func(t *testing.T) {
		s := NewStore(Options{})
		id := s.Create(ctx)
		b := newBuilder()

		_, err := s.UpdateCart(ctx, id, func(c cart.Cart) cart.Cart { return cart.Add(cart.Add(c, kurta), kurta) })
		require.NoError(t, err)

		o, err := s.CommitOrder(ctx, id, func(c cart.Cart, customerID string) (order.Order, error) {
			return b.Build(c, customerID, payment.MethodCOD, order.ShippingDetails{City: "Karachi"})
		})
		require.NoError(t, err)
		assert.Equal(t, order.GuestCustomerID, o.CustomerID)
		assert.EqualValues(t, 5250, o.Total)

		c, _ := s.GetCart(ctx, id)
		assert.Empty(t, c)

		orders, _ := s.ListOrders(ctx, id)
		require.Len(t, orders, 1)
		assert.Equal(t, o.ID, orders[0].ID)
	})

	t.Run("Failure leaves state untouched", func(t *testing.T) {
		s := NewStore(Options{Seed: func() order.History { return order.History{{ID: "BZ-1"}} }})
		id := s.Create(ctx)
		_, _ = s.UpdateCart(ctx, id, func(c cart.Cart) cart.Cart { return cart.Add(c, kurta) })

		_, err := s.CommitOrder(ctx, id, func(cart.Cart, string) (order.Order, error) {
			return order.Order{}, errors.New("boom")
		})
		assert.Error(t, err)

		c, _ := s.GetCart(ctx, id)
		assert.Len(t, c, 1)
		orders, _ := s.ListOrders(ctx, id)
		assert.Len(t, orders, 1)
	})

	t.Run("Empty cart", func(t *testing.T) {
		s := NewStore(Options{})
		id := s.Create(ctx)
		b := newBuilder()

		_, err := s.CommitOrder(ctx, id, func(c cart.Cart, customerID string) (order.Order, error) {
			return b.Build(c, customerID, payment.MethodCOD, order.ShippingDetails{})
		})

		assert.ErrorIs(t, err, order.ErrEmptyCart)
		orders, _ := s.ListOrders(ctx, id)
		assert.Empty(t, orders)
	})

	t.Run("Logged in customer id", func(t *testing.T) {
		s := NewStore(Options{})
		id := s.Create(ctx)
		require.NoError(t, s.SetUser(ctx, id, &user.User{ID: "u-9", Role: user.RoleCustomer}))
		_, _ = s.UpdateCart(ctx, id, func(c cart.Cart) cart.Cart { return cart.Add(c, kurta) })

		var got string
		_, err := s.CommitOrder(ctx, id, func(c cart.Cart, customerID string) (order.Order, error) {
			got = customerID
			return order.Order{ID: "BZ-2"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "u-9", got)
	})
}

func TestStore_SetUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})
	id := s.Create(ctx)

	u := &user.User{ID: "u-1", Name: "Ayesha"}
	require.NoError(t, s.SetUser(ctx, id, u))
	u.Name = "changed"

	got, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ayesha", got.Name)

	require.NoError(t, s.SetUser(ctx, id, nil))
	got, _ = s.GetUser(ctx, id)
	assert.Nil(t, got)
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(Options{TTL: time.Minute})
	s.now = func() time.Time { return now }

	idle := s.Create(ctx)
	active := s.Create(ctx)

	now = now.Add(45 * time.Second)
	assert.True(t, s.Touch(ctx, active))

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, s.EvictExpired())
	assert.Equal(t, 1, s.Len())

	_, err := s.Snapshot(ctx, idle)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Snapshot(ctx, active)
	assert.NoError(t, err)

	now = now.Add(2 * time.Minute)
	assert.False(t, s.Touch(ctx, active))
}

func TestStore_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	s := NewStore(Options{})
	id := s.Create(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.UpdateCart(ctx, id, func(c cart.Cart) cart.Cart { return cart.Add(c, kurta) })
		}()
	}
	wg.Wait()

	c, err := s.GetCart(ctx, id)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, 50, c[0].Quantity)
}

func TestStore_RunJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewStore(Options{TTL: time.Millisecond})
	s.Create(ctx)

	done := make(chan struct{})
	go func() {
		s.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
