package order

import (
	"context"
	"fmt"

	"bazaar-be/internal/cart"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, in CheckoutInput) (*Order, error)
	ListOrders(ctx context.Context, sessionID string) (History, error)
	GetOrder(ctx context.Context, sessionID, orderID string) (*Order, error)
	Track(ctx context.Context, sessionID, orderID string) (*Tracking, error)
}

type service struct {
	repo     Repository
	builder  *Builder
	inFlight singleflight.Group
}

func NewService(repo Repository, builder *Builder) Service {
	return &service{
		repo:    repo,
		builder: builder,
	}
}

// PlaceOrder validates the checkout form and turns the session cart into an
// order. Concurrent submissions for one session share a single placement.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, in CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	if sessionID == "" {
		return nil, ErrMissingSession
	}

	in, err := in.Validate()
	if err != nil {
		log.Warn("invalid checkout input", zap.Error(err))
		return nil, err
	}

	v, err, shared := s.inFlight.Do(sessionID, func() (any, error) {
		o, err := s.repo.CommitOrder(ctx, sessionID, func(c cart.Cart, customerID string) (Order, error) {
			return s.builder.Build(c, customerID, in.PaymentMethod, in.Shipping)
		})
		if err != nil {
			return nil, err
		}
		metrics.OrdersPlaced.WithLabelValues(string(o.PaymentMethod)).Inc()
		metrics.OrderRevenue.Add(float64(o.Total))
		return o, nil
	})
	if err != nil {
		log.Warn("order placement failed", zap.Error(err))
		return nil, err
	}

	o := v.(Order)
	if shared {
		log.Info("duplicate checkout joined in-flight placement", zap.String("order_id", o.ID))
	}

	log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total", int64(o.Total)),
		zap.Int("items", o.Items.Count()),
	)
	return &o, nil
}

func (s *service) ListOrders(ctx context.Context, sessionID string) (History, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	return s.repo.ListOrders(ctx, sessionID)
}

func (s *service) GetOrder(ctx context.Context, sessionID, orderID string) (*Order, error) {
	history, err := s.ListOrders(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o, ok := history.Find(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &o, nil
}

func (s *service) Track(ctx context.Context, sessionID, orderID string) (*Tracking, error) {
	o, err := s.GetOrder(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}

	t, err := Track(*o)
	if err != nil {
		logger.FromCtx(ctx).Error("order has unknown status",
			zap.String("order_id", o.ID),
			zap.String("status", string(o.Status)),
		)
		return nil, fmt.Errorf("track %s: %w", o.ID, err)
	}
	return t, nil
}
