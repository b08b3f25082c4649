package order

import (
	"time"

	"bazaar-be/internal/cart"
)

// Steps are the linear delivery stages shown on the tracking page.
var Steps = []string{"ordered", "processing", "shipped", "delivered"}

const deliveryEstimate = 4 * 24 * time.Hour

// Progress is the position of an order on Steps. A cancelled order has no
// step; Step is -1 and Cancelled is set.
type Progress struct {
	Step      int  `json:"step"`
	Cancelled bool `json:"cancelled"`
}

func StepFor(s Status) (Progress, error) {
	switch s {
	case StatusPending:
		return Progress{Step: 0}, nil
	case StatusProcessing:
		return Progress{Step: 1}, nil
	case StatusShipped:
		return Progress{Step: 2}, nil
	case StatusDelivered:
		return Progress{Step: 3}, nil
	case StatusCancelled:
		return Progress{Step: -1, Cancelled: true}, nil
	}
	return Progress{}, ErrUnknownStatus
}

type Tracking struct {
	OrderID           string          `json:"orderId"`
	Status            Status          `json:"status"`
	Progress          Progress        `json:"progress"`
	Steps             []string        `json:"steps"`
	OrderedOn         string          `json:"orderedOn"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	ShippingAddress   ShippingDetails `json:"shippingAddress"`
	Items             cart.Cart       `json:"items"`
}

func Track(o Order) (*Tracking, error) {
	p, err := StepFor(o.Status)
	if err != nil {
		return nil, err
	}

	return &Tracking{
		OrderID:           o.ID,
		Status:            o.Status,
		Progress:          p,
		Steps:             Steps,
		OrderedOn:         o.DisplayDate(),
		EstimatedDelivery: o.Date.Add(deliveryEstimate).Format(DateLayout),
		ShippingAddress:   o.Shipping,
		Items:             o.Items.Clone(),
	}, nil
}
