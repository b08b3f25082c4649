package order

import (
	"testing"
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/money"
	"bazaar-be/internal/payment"
	"bazaar-be/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2024, time.March, 25, 10, 30, 0, 0, time.UTC)
	lahore   = ShippingDetails{FullName: "Ayesha", Phone: "03001234567", Address: "12 Mall Road", City: "Lahore"}
)

func newTestBuilder() *Builder {
	b := NewBuilder(pricing.NewCalculator(250), NewIDGenerator())
	b.Now = func() time.Time { return fixedNow }
	return b
}

func sampleCart() cart.Cart {
	a := catalog.Product{ID: "a", Name: "A", Price: 100}
	b := catalog.Product{ID: "b", Name: "B", Price: 50}
	return cart.Add(cart.Add(cart.Add(nil, a), a), b)
}

func TestBuilder_Build(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		b := newTestBuilder()

		o, err := b.Build(sampleCart(), "u-1", payment.MethodCOD, lahore)

		require.NoError(t, err)
		assert.Regexp(t, `^BZ-\d{6}$`, o.ID)
		assert.Equal(t, "u-1", o.CustomerID)
		assert.Equal(t, fixedNow, o.Date)
		assert.Equal(t, StatusPending, o.Status)
		assert.Equal(t, money.Amount(250), o.Subtotal)
		assert.Equal(t, money.Amount(250), o.ShippingFee)
		assert.Equal(t, money.Amount(500), o.Total)
		assert.Equal(t, payment.MethodCOD, o.PaymentMethod)
		assert.Equal(t, lahore, o.Shipping)
		assert.Equal(t, "25 March, 2024", o.DisplayDate())
	})

	t.Run("Guest customer", func(t *testing.T) {
		o, err := newTestBuilder().Build(sampleCart(), "", payment.MethodCard, lahore)

		require.NoError(t, err)
		assert.Equal(t, GuestCustomerID, o.CustomerID)
	})

	t.Run("Empty cart", func(t *testing.T) {
		o, err := newTestBuilder().Build(nil, "u-1", payment.MethodCOD, lahore)

		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Empty(t, o.ID)
	})

	t.Run("Items are a snapshot", func(t *testing.T) {
		c := sampleCart()
		o, err := newTestBuilder().Build(c, "u-1", payment.MethodCOD, lahore)
		require.NoError(t, err)

		c[0].Quantity = 40
		c = cart.Remove(c, "b")

		assert.Equal(t, 2, o.Items[0].Quantity)
		assert.Len(t, o.Items, 2)
		assert.Equal(t, money.Amount(500), o.Total)
	})
}

func TestHistory(t *testing.T) {
	var h History
	h = Prepend(h, Order{ID: "BZ-1"})
	h = Prepend(h, Order{ID: "BZ-2"})

	require.Len(t, h, 2)
	assert.Equal(t, "BZ-2", h[0].ID)

	o, ok := h.Find("BZ-1")
	assert.True(t, ok)
	assert.Equal(t, "BZ-1", o.ID)

	_, ok = h.Find("BZ-404")
	assert.False(t, ok)
}

func TestDemoOrders(t *testing.T) {
	h := DemoOrders(catalog.SeedProducts())

	require.Len(t, h, 2)

	shipped, ok := h.Find("BZ-892311")
	require.True(t, ok)
	assert.Equal(t, StatusShipped, shipped.Status)
	assert.Equal(t, money.Amount(7000), shipped.Total)
	assert.Equal(t, payment.MethodEasypaisa, shipped.PaymentMethod)
	assert.Equal(t, "20 March, 2024", shipped.DisplayDate())
	require.Len(t, shipped.Items, 2)
	assert.Equal(t, "3", shipped.Items[0].ID)
	assert.Equal(t, "2", shipped.Items[1].ID)

	delivered, ok := h.Find("BZ-772104")
	require.True(t, ok)
	assert.Equal(t, StatusDelivered, delivered.Status)
	assert.Equal(t, money.Amount(2800), delivered.Total)
	assert.Equal(t, "12 March, 2024", delivered.DisplayDate())
	require.Len(t, delivered.Items, 1)
	assert.Equal(t, "5", delivered.Items[0].ID)
}
