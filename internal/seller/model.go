package seller

import (
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/money"
)

const (
	lowStockBelow = 10
	healthyAbove  = 20
)

type StockLevel string

const (
	StockOut     StockLevel = "out_of_stock"
	StockLow     StockLevel = "low_stock"
	StockInStock StockLevel = "in_stock"
)

func LevelOf(stock int) StockLevel {
	switch {
	case stock <= 0:
		return StockOut
	case stock < lowStockBelow:
		return StockLow
	default:
		return StockInStock
	}
}

type Item struct {
	catalog.Product
	Level StockLevel `json:"level"`
}

// Stats summarize a seller's inventory. LowStock excludes out-of-stock items.
type Stats struct {
	TotalProducts  int          `json:"totalProducts"`
	OutOfStock     int          `json:"outOfStock"`
	LowStock       int          `json:"lowStock"`
	Healthy        int          `json:"healthy"`
	InventoryValue money.Amount `json:"inventoryValue"`
}

type Inventory struct {
	SellerID string `json:"sellerId"`
	Items    []Item `json:"items"`
	Stats    Stats  `json:"stats"`
}

func ComputeStats(products []catalog.Product) Stats {
	st := Stats{TotalProducts: len(products)}
	for _, p := range products {
		switch LevelOf(p.Stock) {
		case StockOut:
			st.OutOfStock++
		case StockLow:
			st.LowStock++
		}
		if p.Stock > healthyAbove {
			st.Healthy++
		}
		st.InventoryValue += p.Price.Times(p.Stock)
	}
	return st
}
