package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrFailedLoad      = errors.New("failed to load catalog")
)
