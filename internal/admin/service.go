package admin

import (
	"context"
	"time"

	"bazaar-be/internal/assistant"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/task"

	"go.uber.org/zap"
)

const auditTimeout = time.Minute

// Auditor moderates a product by name.
type Auditor interface {
	Audit(ctx context.Context, productName string) (assistant.Verdict, error)
}

type Service interface {
	Overview(ctx context.Context) (*Overview, error)
	ListSellers(ctx context.Context) ([]Seller, error)
	ApproveSeller(ctx context.Context, id string) (*Seller, error)
	ListAudits(ctx context.Context) ([]Audit, error)
	StartAudit(ctx context.Context, productID string) (*Audit, error)
}

type service struct {
	repo     Repository
	products catalog.Repository
	auditor  Auditor
	guard    *task.Guard
	now      func() time.Time
	// onAuditDone is called after a background audit settles.
	onAuditDone func(Audit)
}

func NewService(repo Repository, products catalog.Repository, auditor Auditor) Service {
	return &service{
		repo:     repo,
		products: products,
		auditor:  auditor,
		guard:    task.NewGuard(),
		now:      time.Now,
	}
}

func (s *service) ListSellers(ctx context.Context) ([]Seller, error) {
	return s.repo.ListSellers(ctx)
}

// ApproveSeller moves a pending seller to Approved.
func (s *service) ApproveSeller(ctx context.Context, id string) (*Seller, error) {
	seller, err := s.repo.UpdateSeller(ctx, id, func(sl *Seller) error {
		if sl.Status != SellerPending {
			return ErrSellerNotPending
		}
		sl.Status = SellerApproved
		return nil
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("seller approval rejected",
			zap.String("seller_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	logger.FromCtx(ctx).Info("seller approved", zap.String("seller_id", id))
	return seller, nil
}

// ListAudits returns one entry per catalog product in catalog order.
func (s *service) ListAudits(ctx context.Context) ([]Audit, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Audit, 0, len(products))
	for _, p := range products {
		a, ok := s.repo.GetAudit(ctx, p.ID)
		if !ok {
			a = Audit{ProductID: p.ID, Status: AuditUnverified}
		}
		a.ProductName = p.Name
		out = append(out, a)
	}
	return out, nil
}

// StartAudit marks the product as auditing and runs the moderation call in
// the background. A failed run reverts the product to unverified. Only one
// audit per product may run at a time.
func (s *service) StartAudit(ctx context.Context, productID string) (*Audit, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "StartAudit"),
		zap.String("product_id", productID),
	)

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	release, err := s.guard.Acquire(productID)
	if err != nil {
		log.Info("audit already running")
		return nil, err
	}

	previous, ok := s.repo.GetAudit(ctx, productID)
	if !ok {
		previous = Audit{ProductID: p.ID, ProductName: p.Name, Status: AuditUnverified}
	}

	running := Audit{
		ProductID:   p.ID,
		ProductName: p.Name,
		Status:      AuditRunning,
		Notes:       previous.Notes,
		UpdatedAt:   s.now(),
	}
	if err := s.repo.SaveAudit(ctx, running); err != nil {
		release()
		log.Error("failed to mark audit running", zap.Error(err))
		return nil, err
	}

	task.Go(ctx, auditTimeout, func(ctx context.Context) (assistant.Verdict, error) {
		return s.auditor.Audit(ctx, p.Name)
	}, func(res task.Result[assistant.Verdict]) {
		final := Audit{ProductID: p.ID, ProductName: p.Name, UpdatedAt: s.now()}
		switch {
		case res.State != task.StateSucceeded:
			final.Status = AuditUnverified
			final.Notes = previous.Notes
			log.Warn("audit failed, product reverted to unverified", zap.String("error", res.Error))
		case res.Value.Flagged:
			final.Status = AuditFlagged
			final.Notes = res.Value.Notes
		default:
			final.Status = AuditSafe
			final.Notes = res.Value.Notes
		}
		if err := s.repo.SaveAudit(context.Background(), final); err != nil {
			log.Error("failed to save audit result", zap.Error(err))
			final.Status = AuditUnverified
			final.Notes = previous.Notes
			if err := s.repo.SaveAudit(context.Background(), final); err != nil {
				log.Error("failed to revert audit", zap.Error(err))
			}
		}
		release()
		log.Info("audit settled", zap.String("status", string(final.Status)))

		if s.onAuditDone != nil {
			s.onAuditDone(final)
		}
	})

	return &running, nil
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	sellers, err := s.repo.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	audits, err := s.ListAudits(ctx)
	if err != nil {
		return nil, err
	}

	ov := &Overview{
		Sellers:  make(map[SellerStatus]int),
		Products: len(audits),
		Audits:   make(map[AuditStatus]int),
	}
	for _, sl := range sellers {
		ov.Sellers[sl.Status]++
	}
	for _, a := range audits {
		ov.Audits[a.Status]++
	}
	return ov, nil
}
