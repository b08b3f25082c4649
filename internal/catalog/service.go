package catalog

import (
	"context"
	"strings"

	"bazaar-be/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

type Service interface {
	Search(ctx context.Context, q Query) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) []Category
	Facets(ctx context.Context) ([]string, error)
}

type service struct {
	repo       Repository
	categories []Category
}

func NewService(repo Repository, categories []Category) Service {
	return &service{repo: repo, categories: categories}
}

// Search returns the products matching q in catalog order.
func (s *service) Search(ctx context.Context, q Query) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Search"),
	)

	products, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, q) {
			out = append(out, p)
		}
	}

	log.Debug("search completed",
		zap.String("text", q.Text),
		zap.String("category", q.Category),
		zap.Int("count", len(out)),
	)
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Categories(ctx context.Context) []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Facets returns the distinct product category tags in first-seen order.
func (s *service) Facets(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var facets []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		facets = append(facets, p.Category)
	}
	return facets, nil
}

// Matches reports whether p satisfies q. The English name is compared with
// Unicode case folding, the Urdu name verbatim.
func Matches(p Product, q Query) bool {
	if q.Category != "" && p.Category != q.Category {
		return false
	}
	if q.SellerID != "" && p.SellerID != q.SellerID {
		return false
	}
	if q.Text == "" {
		return true
	}
	fold := cases.Fold()
	if strings.Contains(fold.String(p.Name), fold.String(q.Text)) {
		return true
	}
	return strings.Contains(p.NameUrdu, q.Text)
}
