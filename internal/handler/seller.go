package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type adjustStockRequest struct {
	Delta *int `json:"delta"`
}

type describeRequest struct {
	ProductName string `json:"productName"`
}

func (h *Handler) SellerInventory(c *gin.Context) {
	u := currentUser(c)
	inv, err := h.Sellers.Inventory(c.Request.Context(), u.SellerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, inv)
}

func (h *Handler) AdjustStock(c *gin.Context) {
	var req adjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if req.Delta == nil {
		respondError(c, fmt.Errorf("%w: delta is required", errBadRequest))
		return
	}

	u := currentUser(c)
	p, err := h.Sellers.AdjustStock(c.Request.Context(), u.SellerID, c.Param("id"), *req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, newProductView(*p, lang(c)))
}

func (h *Handler) GenerateDescription(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	u := currentUser(c)
	text, err := h.Sellers.GenerateDescription(c.Request.Context(), u.SellerID, req.ProductName)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"description": text})
}
