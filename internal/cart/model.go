package cart

import (
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/money"
)

// Item is a line item: a copy of the catalog product plus its quantity.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (i Item) LineTotal() money.Amount {
	return i.Price.Times(i.Quantity)
}

// Cart holds at most one Item per product id, in insertion order.
// Functions in this package never modify a Cart in place.
type Cart []Item

// Add returns a copy of c with p added: the existing line's quantity is
// incremented by one, or a new line with quantity 1 is appended.
func Add(c Cart, p catalog.Product) Cart {
	out := c.Clone()
	for i := range out {
		if out[i].ID == p.ID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, Item{Product: p, Quantity: 1})
}

// Remove returns a copy of c without the line for id. Missing ids are a no-op.
func Remove(c Cart, id string) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// Clone returns an independent copy of c.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) Find(id string) (Item, bool) {
	for _, item := range c {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
