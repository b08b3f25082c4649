package order

import (
	"time"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/money"
	"bazaar-be/internal/payment"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// GuestCustomerID is recorded on orders placed without a logged-in user.
const GuestCustomerID = "guest"

// DateLayout renders order dates as shown to customers, e.g. "12 March, 2024".
const DateLayout = "2 January, 2006"

type ShippingDetails struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	Address  string `json:"address" validate:"required,max=300"`
	City     string `json:"city" validate:"required,city"`
}

// Order is an immutable snapshot taken at checkout. Totals are never recomputed.
type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customerId"`
	Date          time.Time       `json:"date"`
	Items         cart.Cart       `json:"items"`
	Subtotal      money.Amount    `json:"subtotal"`
	ShippingFee   money.Amount    `json:"shippingFee"`
	Total         money.Amount    `json:"total"`
	Status        Status          `json:"status"`
	PaymentMethod payment.Method  `json:"paymentMethod"`
	Shipping      ShippingDetails `json:"shipping"`
}

func (o Order) DisplayDate() string {
	return o.Date.Format(DateLayout)
}

// History is a session's order list, newest first.
type History []Order

// Prepend returns a new history with o in front.
func Prepend(h History, o Order) History {
	out := make(History, 0, len(h)+1)
	out = append(out, o)
	return append(out, h...)
}

func (h History) Find(id string) (Order, bool) {
	for _, o := range h {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (h History) Clone() History {
	out := make(History, len(h))
	for i, o := range h {
		o.Items = o.Items.Clone()
		out[i] = o
	}
	return out
}
