package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingSession   = errors.New("session id is required")
	ErrMissingProductID = errors.New("product id is required")
)
