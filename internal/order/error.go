package order

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUnknownStatus    = errors.New("unknown order status")
	ErrMissingSession   = errors.New("session id is required")
	ErrIDSpaceExhausted = errors.New("could not allocate a unique order id")
)
