package seller

import "errors"

var (
	ErrNotOwner         = errors.New("product belongs to another seller")
	ErrEmptyProductName = errors.New("product name is required")
	ErrMissingSeller    = errors.New("seller id is required")
)
