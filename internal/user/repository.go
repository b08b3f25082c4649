package user

import "context"

// Repository binds users to sessions. A nil user means a guest.
type Repository interface {
	SetUser(ctx context.Context, sessionID string, u *User) error
	GetUser(ctx context.Context, sessionID string) (*User, error)
}
