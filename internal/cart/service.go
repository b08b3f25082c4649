package cart

import (
	"context"

	"bazaar-be/internal/catalog"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/metrics"

	"go.uber.org/zap"
)

// Repository stores one cart per session. UpdateCart applies fn atomically
// and persists its result.
type Repository interface {
	GetCart(ctx context.Context, sessionID string) (Cart, error)
	UpdateCart(ctx context.Context, sessionID string, fn func(Cart) Cart) (Cart, error)
}

// Service defines the business logic for carts.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (Cart, error)
	AddToCart(ctx context.Context, sessionID, productID string) (Cart, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) (Cart, error)
}

type service struct {
	repo        Repository
	productRepo catalog.Repository
}

func NewService(repo Repository, productRepo catalog.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) GetCart(ctx context.Context, sessionID string) (Cart, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return s.repo.GetCart(ctx, sessionID)
}

// AddToCart adds one unit of the product to the session cart.
func (s *service) AddToCart(ctx context.Context, sessionID, productID string) (Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("product_id", productID),
	)

	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if productID == "" {
		return nil, ErrMissingProductID
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return nil, err
	}

	c, err := s.repo.UpdateCart(ctx, sessionID, func(c Cart) Cart {
		return Add(c, *product)
	})
	if err != nil {
		log.Error("failed to update cart", zap.Error(err))
		return nil, err
	}

	metrics.CartItemsAdded.Inc()
	log.Info("item added to cart", zap.Int("cart_count", c.Count()))
	return c, nil
}

// RemoveFromCart drops the whole line for productID.
func (s *service) RemoveFromCart(ctx context.Context, sessionID, productID string) (Cart, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if productID == "" {
		return nil, ErrMissingProductID
	}

	c, err := s.repo.UpdateCart(ctx, sessionID, func(c Cart) Cart {
		return Remove(c, productID)
	})
	if err != nil {
		logger.FromCtx(ctx).Error("failed to remove cart item",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}
