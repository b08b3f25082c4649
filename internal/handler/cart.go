package handler

import (
	"fmt"
	"net/http"

	"bazaar-be/internal/order"
	"bazaar-be/internal/payment"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.Carts.GetCart(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, h.newCartView(items, lang(c)))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	items, err := h.Carts.AddToCart(c.Request.Context(), sessionID(c), trimmed(req.ProductID))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, h.newCartView(items, lang(c)))
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	items, err := h.Carts.RemoveFromCart(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, h.newCartView(items, lang(c)))
}

// Checkout returns what the checkout page needs: the cart totals, the
// payment methods and the delivery cities.
func (h *Handler) Checkout(c *gin.Context) {
	items, err := h.Carts.GetCart(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	view := h.newCartView(items, lang(c))
	respond(c, http.StatusOK, gin.H{
		"cart":           view,
		"empty":          items.IsEmpty(),
		"paymentMethods": payment.Options,
		"cities":         order.Cities,
	})
}
