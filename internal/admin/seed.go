package admin

import "time"

func SeedSellers() []Seller {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []Seller{
		{ID: "s1", Name: "Khyber Crafts", Email: "khyber@pk.com", Status: SellerPending, Joined: day(2024, time.March, 20), Sales: 0},
		{ID: "s2", Name: "Lahore Tech", Email: "lahore@tech.com", Status: SellerApproved, Joined: day(2024, time.January, 15), Sales: 154},
		{ID: "s3", Name: "Fashion Hub", Email: "hub@fashion.com", Status: SellerSuspended, Joined: day(2023, time.November, 5), Sales: 89},
	}
}
