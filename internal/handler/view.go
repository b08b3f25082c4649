package handler

import (
	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/money"
	"bazaar-be/internal/order"
	"bazaar-be/internal/pricing"

	"golang.org/x/text/language"
)

type productView struct {
	catalog.Product
	DisplayName string `json:"displayName"`
	PriceLabel  string `json:"priceLabel"`
	InStock     bool   `json:"inStock"`
}

func newProductView(p catalog.Product, tag language.Tag) productView {
	return productView{
		Product:     p,
		DisplayName: p.DisplayName(tag),
		PriceLabel:  money.Format(p.Price, tag),
		InStock:     p.InStock(),
	}
}

type cartItemView struct {
	cart.Item
	DisplayName string       `json:"displayName"`
	LineTotal   money.Amount `json:"lineTotal"`
}

type totalsView struct {
	pricing.Totals
	TotalLabel string `json:"totalLabel"`
}

func newTotalsView(t pricing.Totals, tag language.Tag) totalsView {
	return totalsView{Totals: t, TotalLabel: money.Format(t.Total, tag)}
}

// cartView is the cart page: lines, the header badge count and totals.
type cartView struct {
	Items  []cartItemView `json:"items"`
	Count  int            `json:"count"`
	Totals totalsView     `json:"totals"`
}

func (h *Handler) newCartView(c cart.Cart, tag language.Tag) cartView {
	items := make([]cartItemView, 0, len(c))
	for _, it := range c {
		items = append(items, cartItemView{
			Item:        it,
			DisplayName: it.DisplayName(tag),
			LineTotal:   it.LineTotal(),
		})
	}
	return cartView{
		Items:  items,
		Count:  c.Count(),
		Totals: newTotalsView(h.Pricing.Compute(c), tag),
	}
}

type orderView struct {
	order.Order
	DisplayDate string `json:"displayDate"`
	TotalLabel  string `json:"totalLabel"`
}

func newOrderView(o order.Order, tag language.Tag) orderView {
	return orderView{
		Order:       o,
		DisplayDate: o.DisplayDate(),
		TotalLabel:  money.Format(o.Total, tag),
	}
}
