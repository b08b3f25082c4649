package cart

import (
	"testing"

	"bazaar-be/internal/catalog"
	"bazaar-be/internal/money"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProduct(f *gofakeit.Faker) catalog.Product {
	return catalog.Product{
		ID:       f.UUID(),
		Name:     f.ProductName(),
		Category: f.ProductCategory(),
		Price:    money.Amount(f.Number(1, 50000)),
		Stock:    f.Number(0, 100),
	}
}

func TestAdd(t *testing.T) {
	a := catalog.Product{ID: "a", Name: "A", Price: 100}
	b := catalog.Product{ID: "b", Name: "B", Price: 50}

	t.Run("Appends new line with quantity one", func(t *testing.T) {
		c := Add(nil, a)

		require.Len(t, c, 1)
		assert.Equal(t, "a", c[0].ID)
		assert.Equal(t, 1, c[0].Quantity)
	})

	t.Run("Increments existing line", func(t *testing.T) {
		c := Add(Add(nil, a), a)

		require.Len(t, c, 1)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("Preserves insertion order", func(t *testing.T) {
		c := Add(Add(Add(nil, a), b), a)

		require.Len(t, c, 2)
		assert.Equal(t, "a", c[0].ID)
		assert.Equal(t, "b", c[1].ID)
		assert.Equal(t, 2, c[0].Quantity)
	})

	t.Run("Does not mutate input", func(t *testing.T) {
		before := Add(nil, a)
		after := Add(before, a)

		assert.Equal(t, 1, before[0].Quantity)
		assert.Equal(t, 2, after[0].Quantity)
	})
}

func TestAdd_RepeatedProductsCollapse(t *testing.T) {
	f := gofakeit.New(42)

	for i := 0; i < 50; i++ {
		p := fakeProduct(f)
		n := f.Number(1, 20)

		var c Cart
		for j := 0; j < n; j++ {
			c = Add(c, p)
		}

		require.Len(t, c, 1)
		assert.Equal(t, n, c[0].Quantity)
		assert.Equal(t, n, c.Count())
	}
}

func TestRemove(t *testing.T) {
	a := catalog.Product{ID: "a", Price: 100}
	b := catalog.Product{ID: "b", Price: 50}

	t.Run("Removes whole line", func(t *testing.T) {
		c := Add(Add(Add(nil, a), a), b)

		out := Remove(c, "a")

		require.Len(t, out, 1)
		assert.Equal(t, "b", out[0].ID)
		assert.Len(t, c, 2)
	})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		c := Add(nil, a)

		out := Remove(c, "zzz")

		assert.Equal(t, c, out)
	})

	t.Run("Remove then add restarts at one", func(t *testing.T) {
		f := gofakeit.New(7)
		for i := 0; i < 20; i++ {
			p := fakeProduct(f)
			var c Cart
			for j := f.Number(1, 5); j > 0; j-- {
				c = Add(c, p)
			}

			c = Add(Remove(c, p.ID), p)

			item, ok := c.Find(p.ID)
			require.True(t, ok)
			assert.Equal(t, 1, item.Quantity)
		}
	})
}

func TestCartHelpers(t *testing.T) {
	c := Add(Add(Add(nil, catalog.Product{ID: "a", Price: 100}), catalog.Product{ID: "a", Price: 100}), catalog.Product{ID: "b", Price: 50})

	assert.Equal(t, 3, c.Count())
	assert.False(t, c.IsEmpty())
	assert.True(t, Cart(nil).IsEmpty())

	item, ok := c.Find("a")
	require.True(t, ok)
	assert.Equal(t, money.Amount(200), item.LineTotal())

	_, ok = c.Find("missing")
	assert.False(t, ok)

	clone := c.Clone()
	clone[0].Quantity = 99
	assert.Equal(t, 2, c[0].Quantity)
}
