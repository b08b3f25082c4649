package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"bazaar-be/internal/money"
	"bazaar-be/internal/order"
	"bazaar-be/internal/payment"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var in order.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	o, err := h.Orders.PlaceOrder(c.Request.Context(), sessionID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	tag := lang(c)
	respond(c, http.StatusCreated, gin.H{
		"order":        newOrderView(*o, tag),
		"instructions": payment.Instructions(o.PaymentMethod, o.Total, order.NormalizeAccount(in.PaymentAccount), tag),
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	history, err := h.Orders.ListOrders(c.Request.Context(), sessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	tag := lang(c)
	views := make([]orderView, 0, len(history))
	for _, o := range history {
		views = append(views, newOrderView(o, tag))
	}
	respond(c, http.StatusOK, views)
}

func (h *Handler) GetOrder(c *gin.Context) {
	o, err := h.Orders.GetOrder(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, newOrderView(*o, lang(c)))
}

func (h *Handler) TrackOrder(c *gin.Context) {
	t, err := h.Orders.Track(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, t)
}

func (h *Handler) PaymentInstructions(c *gin.Context) {
	method, err := payment.ParseMethod(c.Param("method"))
	if err != nil {
		respondError(c, err)
		return
	}

	var amount int64
	if raw := c.Query("amount"); raw != "" {
		amount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || amount < 0 {
			respondError(c, fmt.Errorf("%w: amount must be a non-negative whole number", errBadRequest))
			return
		}
	}

	respond(c, http.StatusOK, gin.H{
		"method":       method,
		"instructions": payment.Instructions(method, money.Amount(amount), c.Query("account"), lang(c)),
	})
}
