package handler

import (
	"fmt"
	"net/http"

	"bazaar-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SearchProducts(c *gin.Context) {
	tag := lang(c)
	products, err := h.Catalog.Search(c.Request.Context(), catalog.Query{
		Text:     c.Query("q"),
		Category: c.Query("category"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, tag))
	}
	respond(c, http.StatusOK, views)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, newProductView(*p, lang(c)))
}

func (h *Handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()
	facets, err := h.Catalog.Facets(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"categories": h.Catalog.Categories(ctx),
		"facets":     facets,
	})
}

type reviewSummaryRequest struct {
	Reviews []string `json:"reviews"`
}

func (h *Handler) SummarizeReviews(c *gin.Context) {
	ctx := c.Request.Context()

	var req reviewSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	reviews := make([]string, 0, len(req.Reviews))
	for _, r := range req.Reviews {
		if r = trimmed(r); r != "" {
			reviews = append(reviews, r)
		}
	}
	if len(reviews) == 0 {
		respondError(c, fmt.Errorf("%w: at least one review is required", errBadRequest))
		return
	}

	p, err := h.Catalog.GetProduct(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"productId": p.ID,
		"summary":   h.Summarizer.SummarizeReviews(ctx, reviews),
	})
}
