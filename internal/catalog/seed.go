package catalog

import "github.com/shopspring/decimal"

// SeedProducts returns a fresh copy of the built-in catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:           "1",
			Name:         "Samsung Galaxy S24 Ultra",
			NameUrdu:     "سام سنگ گلیکسی S24 الٹرا",
			Description:  "Latest flagship smartphone with AI features.",
			Price:        399999,
			Category:     "Electronics",
			ImageURL:     "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?auto=format&fit=crop&q=80&w=400",
			SellerID:     "s1",
			Rating:       decimal.RequireFromString("4.8"),
			ReviewsCount: 150,
			Stock:        10,
		},
		{
			ID:           "2",
			Name:         "Men's Cotton Kurta",
			NameUrdu:     "مردانہ سوتی کرتا",
			Description:  "Premium quality stitched cotton kurta for summer.",
			Price:        2500,
			Category:     "Fashion",
			ImageURL:     "https://images.unsplash.com/photo-1589310243389-96a5483213a8?auto=format&fit=crop&q=80&w=400",
			SellerID:     "s2",
			Rating:       decimal.RequireFromString("4.5"),
			ReviewsCount: 89,
			Stock:        50,
		},
		{
			ID:           "3",
			Name:         "Wireless Bluetooth Earbuds",
			NameUrdu:     "وائرلیس بلوٹوتھ ایئربڈز",
			Description:  "Noise cancelling buds with 24h battery life.",
			Price:        4500,
			Category:     "Electronics",
			ImageURL:     "https://images.unsplash.com/photo-1590608897129-79da98d15969?auto=format&fit=crop&q=80&w=400",
			SellerID:     "s1",
			Rating:       decimal.RequireFromString("4.2"),
			ReviewsCount: 300,
			Stock:        100,
		},
		{
			ID:           "4",
			Name:         "Traditional Peshawari Chappal",
			NameUrdu:     "روایتی پشاوری چپل",
			Description:  "Handmade pure leather Peshawari Chappal.",
			Price:        3200,
			Category:     "Fashion",
			ImageURL:     "https://images.unsplash.com/photo-1603487742131-4160ec999306?auto=format&fit=crop&q=80&w=400",
			SellerID:     "s3",
			Rating:       decimal.RequireFromString("4.9"),
			ReviewsCount: 45,
			Stock:        20,
		},
		{
			ID:           "5",
			Name:         "Cooking Oil - 5 Litre",
			NameUrdu:     "کوکنگ آئل - 5 لیٹر",
			Description:  "Premium vegetable oil for healthy cooking.",
			Price:        2800,
			Category:     "Groceries",
			ImageURL:     "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?auto=format&fit=crop&q=80&w=400",
			SellerID:     "s2",
			Rating:       decimal.RequireFromString("4.6"),
			ReviewsCount: 1200,
			Stock:        500,
		},
	}
}

// SeedCategories returns the browse categories shown on the storefront home page.
func SeedCategories() []Category {
	return []Category{
		{ID: "1", Name: "Face Mask & Packs", NameUrdu: "فیس ماسک"},
		{ID: "2", Name: "3D Printers", NameUrdu: "تھری ڈی پرنٹرز"},
		{ID: "3", Name: "Pasta & Pizza Tools", NameUrdu: "پاستا اور پیزا ٹولز"},
		{ID: "4", Name: "SIM Tools", NameUrdu: "سم ٹولز"},
		{ID: "5", Name: "Screen Protectors", NameUrdu: "اسکرین پروٹیکٹرز"},
		{ID: "6", Name: "Casserole Pots", NameUrdu: "ہانڈی"},
		{ID: "7", Name: "Hoodies & Sweatshirts", NameUrdu: "ہوڈیز"},
		{ID: "8", Name: "Toy Boxes & Organisers", NameUrdu: "کھلونوں کے ڈبے"},
		{ID: "9", Name: "Electric Clippers", NameUrdu: "پالتو جانوروں کے کلپرز"},
		{ID: "10", Name: "Dining Sets", NameUrdu: "ڈائننگ سیٹس"},
		{ID: "11", Name: "Microphones", NameUrdu: "مائیکروفون"},
		{ID: "12", Name: "Headbands", NameUrdu: "ہیڈ بینڈز"},
		{ID: "13", Name: "Christening Wear", NameUrdu: "بچوں کے کپڑے"},
		{ID: "14", Name: "Leashes & Harnesses", NameUrdu: "پٹے اور ہارنس"},
		{ID: "15", Name: "Donate to Educate", NameUrdu: "تعلیم کے لیے عطیہ"},
		{ID: "16", Name: "Coloring & Drawing", NameUrdu: "ڈرائنگ کا سامان"},
	}
}
