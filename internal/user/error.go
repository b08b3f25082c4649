package user

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
	ErrInvalidToken   = errors.New("invalid token")
	ErrNoSecret       = errors.New("token secret is not set")
)
