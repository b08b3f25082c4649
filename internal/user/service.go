package user

import (
	"context"
	"reflect"
	"strings"

	"bazaar-be/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, sessionID string, in LoginInput) (*User, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (*User, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &service{
		repo:     repo,
		validate: v,
	}
}

// Login fabricates a user from the form and binds it to the session.
// No credentials are checked.
func (s *service) Login(ctx context.Context, sessionID string, in LoginInput) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	if sessionID == "" {
		return nil, ErrMissingSession
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		log.Warn("invalid login input", zap.Error(err))
		return nil, err
	}

	u := &User{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Role:       in.Role,
		IsApproved: in.Role == RoleSeller,
	}
	if u.Name == "" {
		u.Name = "User"
	}
	if u.Role == RoleSeller {
		u.SellerID = in.SellerID
		if u.SellerID == "" {
			u.SellerID = DefaultSellerID
		}
	}

	if err := s.repo.SetUser(ctx, sessionID, u); err != nil {
		log.Error("failed to bind user to session", zap.Error(err))
		return nil, err
	}

	log.Info("login completed",
		zap.String("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return u, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	if err := s.repo.SetUser(ctx, sessionID, nil); err != nil {
		logger.FromCtx(ctx).Error("failed to clear session user", zap.Error(err))
		return err
	}
	return nil
}

// Me returns the session user, or nil for a guest.
func (s *service) Me(ctx context.Context, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return s.repo.GetUser(ctx, sessionID)
}
