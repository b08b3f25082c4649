package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bazaar-be/internal/logger"
	"bazaar-be/internal/metrics"

	"go.uber.org/zap"
)

const (
	DescriptionFallback = "Description generation failed."
	SummaryFallback     = "Could not summarize reviews."

	defaultTimeout = 30 * time.Second
)

var ErrAuditFailed = errors.New("product audit failed")

// Verdict is the moderation result for one product.
type Verdict struct {
	Flagged bool   `json:"flagged"`
	Notes   string `json:"notes"`
}

// Service wraps a Generator with the storefront prompts. Generator failures
// are logged and replaced by fallback text; they never reach callers as
// faults, except for Audit whose caller needs to know the run failed.
type Service struct {
	gen     Generator
	timeout time.Duration
}

func NewService(gen Generator) *Service {
	if gen == nil {
		gen = Unavailable()
	}
	return &Service{gen: gen, timeout: defaultTimeout}
}

func (s *Service) DescribeProduct(ctx context.Context, productName string) string {
	prompt := fmt.Sprintf(
		"Generate a compelling e-commerce product description for %q in both English and Urdu. "+
			"Keep it professional and attractive for a Pakistani marketplace.",
		productName,
	)

	text, err := s.generate(ctx, "describe", prompt)
	if err != nil || text == "" {
		return DescriptionFallback
	}
	return text
}

func (s *Service) SummarizeReviews(ctx context.Context, reviews []string) string {
	prompt := "Summarize the following customer reviews for a product to help buyers decide: " +
		strings.Join(reviews, "; ")

	text, err := s.generate(ctx, "summarize", prompt)
	if err != nil || text == "" {
		return SummaryFallback
	}
	return text
}

// Audit asks for a SAFE or FLAGGED verdict. The product is flagged iff the
// response mentions FLAGGED in any case; an empty response counts as SAFE.
func (s *Service) Audit(ctx context.Context, productName string) (Verdict, error) {
	prompt := fmt.Sprintf(
		"Act as a marketplace policy moderator. Audit this product: %q. "+
			"Check if it violates common e-commerce policies (e.g. prohibited items like weapons, drugs, or highly misleading names). "+
			"Return a short verdict: \"SAFE\" or \"FLAGGED\" followed by a short reason.",
		productName,
	)

	text, err := s.generate(ctx, "audit", prompt)
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %v", ErrAuditFailed, err)
	}
	return ParseVerdict(text), nil
}

func ParseVerdict(text string) Verdict {
	if strings.TrimSpace(text) == "" {
		text = "SAFE"
	}
	return Verdict{
		Flagged: strings.Contains(strings.ToUpper(text), "FLAGGED"),
		Notes:   text,
	}
}

func (s *Service) generate(ctx context.Context, operation, prompt string) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "assistant"),
		zap.String("operation", operation),
	)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.AssistantCalls.WithLabelValues(operation, "fallback").Inc()
		log.Warn("text generation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", err
	}

	metrics.AssistantCalls.WithLabelValues(operation, "ok").Inc()
	log.Debug("text generated", zap.Int("chars", len(text)), zap.Duration("elapsed", time.Since(start)))
	return strings.TrimSpace(text), nil
}
