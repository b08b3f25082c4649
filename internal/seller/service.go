package seller

import (
	"context"
	"strings"

	"bazaar-be/internal/catalog"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/task"

	"go.uber.org/zap"
)

// Describer writes marketing copy for a product name.
type Describer interface {
	DescribeProduct(ctx context.Context, productName string) string
}

type Service interface {
	Inventory(ctx context.Context, sellerID string) (*Inventory, error)
	AdjustStock(ctx context.Context, sellerID, productID string, delta int) (*catalog.Product, error)
	GenerateDescription(ctx context.Context, sellerID, productName string) (string, error)
}

type service struct {
	products  catalog.Repository
	describer Describer
	guard     *task.Guard
}

func NewService(products catalog.Repository, describer Describer) Service {
	return &service{
		products:  products,
		describer: describer,
		guard:     task.NewGuard(),
	}
}

func (s *service) Inventory(ctx context.Context, sellerID string) (*Inventory, error) {
	if sellerID == "" {
		return nil, ErrMissingSeller
	}

	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	var owned []catalog.Product
	for _, p := range all {
		if p.SellerID == sellerID {
			owned = append(owned, p)
		}
	}

	items := make([]Item, 0, len(owned))
	for _, p := range owned {
		items = append(items, Item{Product: p, Level: LevelOf(p.Stock)})
	}

	return &Inventory{
		SellerID: sellerID,
		Items:    items,
		Stats:    ComputeStats(owned),
	}, nil
}

// AdjustStock adds delta to the product's stock, clamping at zero.
func (s *service) AdjustStock(ctx context.Context, sellerID, productID string, delta int) (*catalog.Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdjustStock"),
		zap.String("seller_id", sellerID),
		zap.String("product_id", productID),
	)

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.SellerID != sellerID {
		log.Warn("stock change on foreign product rejected")
		return nil, ErrNotOwner
	}

	updated, err := s.products.AdjustStock(ctx, productID, delta)
	if err != nil {
		log.Error("failed to update stock", zap.Error(err))
		return nil, err
	}

	log.Info("stock adjusted", zap.Int("delta", delta), zap.Int("stock", updated.Stock))
	return updated, nil
}

// GenerateDescription allows one generation in flight per seller. Failures
// come back as the fallback text, not as errors.
func (s *service) GenerateDescription(ctx context.Context, sellerID, productName string) (string, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return "", ErrEmptyProductName
	}

	return task.Do(s.guard, sellerID, func() (string, error) {
		return s.describer.DescribeProduct(ctx, productName), nil
	})
}
