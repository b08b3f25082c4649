package catalog

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"bazaar-be/internal/locale"
	"bazaar-be/internal/money"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	NameUrdu     string          `json:"nameUrdu"`
	Description  string          `json:"description"`
	Price        money.Amount    `json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image"`
	SellerID     string          `json:"sellerId"`
	Rating       decimal.Decimal `json:"rating"`
	ReviewsCount int             `json:"reviewsCount"`
	Stock        int             `json:"stock"`
}

// DisplayName returns the product name in the requested language.
func (p Product) DisplayName(tag language.Tag) string {
	if locale.IsUrdu(tag) && p.NameUrdu != "" {
		return p.NameUrdu
	}
	return p.Name
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameUrdu string `json:"nameUrdu"`
}

// Query filters the catalog. Empty fields match everything.
type Query struct {
	Text     string
	Category string
	SellerID string
}
