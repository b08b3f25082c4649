package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SetUser(ctx context.Context, sessionID string, u *User) error {
	args := m.Called(ctx, sessionID, u)
	return args.Error(0)
}

func (m *MockRepository) GetUser(ctx context.Context, sessionID string) (*User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Customer", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("SetUser", ctx, "sess", mock.AnythingOfType("*user.User")).Return(nil)

		u, err := svc.Login(ctx, "sess", LoginInput{Name: "Ayesha", Email: "ayesha@example.pk", Role: RoleCustomer})

		require.NoError(t, err)
		assert.Equal(t, "Ayesha", u.Name)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.False(t, u.IsApproved)
		assert.Empty(t, u.SellerID)
		_, err = uuid.Parse(u.ID)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Seller is approved and defaults seller id", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("SetUser", ctx, "sess", mock.Anything).Return(nil)

		u, err := svc.Login(ctx, "sess", LoginInput{Email: "shop@example.pk", Role: RoleSeller})

		require.NoError(t, err)
		assert.Equal(t, "User", u.Name)
		assert.True(t, u.IsApproved)
		assert.Equal(t, DefaultSellerID, u.SellerID)
	})

	t.Run("Admin", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("SetUser", ctx, "sess", mock.Anything).Return(nil)

		u, err := svc.Login(ctx, "sess", LoginInput{Name: "Root", Email: "admin@bazaar.pk", Role: RoleAdmin})

		require.NoError(t, err)
		assert.False(t, u.IsApproved)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.Login(ctx, "sess", LoginInput{Email: "not-an-email", Role: RoleCustomer})
		assert.Error(t, err)

		_, err = svc.Login(ctx, "sess", LoginInput{Email: "a@b.pk", Role: "OWNER"})
		assert.Error(t, err)

		_, err = svc.Login(ctx, "", LoginInput{Email: "a@b.pk", Role: RoleCustomer})
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("Store error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("SetUser", ctx, "sess", mock.Anything).Return(errors.New("gone"))

		_, err := svc.Login(ctx, "sess", LoginInput{Email: "a@b.pk", Role: RoleCustomer})
		assert.EqualError(t, err, "gone")
	})
}

func TestService_LogoutAndMe(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("SetUser", ctx, "sess", (*User)(nil)).Return(nil)
	repo.On("GetUser", ctx, "sess").Return(nil, nil)

	require.NoError(t, svc.Logout(ctx, "sess"))

	u, err := svc.Me(ctx, "sess")
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.ErrorIs(t, svc.Logout(ctx, ""), ErrMissingSession)
}
