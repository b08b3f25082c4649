package admin

import "errors"

var (
	ErrSellerNotFound   = errors.New("seller not found")
	ErrSellerNotPending = errors.New("seller is not pending approval")
)
