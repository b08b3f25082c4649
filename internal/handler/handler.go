// Package handler exposes the storefront over HTTP with gin. It expects the
// session middleware to have bound a session id to the request context.
package handler

import (
	"context"
	"net/http"
	"time"

	"bazaar-be/internal/admin"
	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/order"
	"bazaar-be/internal/pricing"
	"bazaar-be/internal/seller"
	"bazaar-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Summarizer condenses customer reviews into a short paragraph.
type Summarizer interface {
	SummarizeReviews(ctx context.Context, reviews []string) string
}

type Handler struct {
	Catalog    catalog.Service
	Carts      cart.Service
	Pricing    pricing.Calculator
	Orders     order.Service
	Users      user.Service
	Sellers    seller.Service
	Admin      admin.Service
	Summarizer Summarizer

	// Tokens re-issues the session token when the logged-in user changes.
	Tokens        *user.TokenIssuer
	TokenTTL      time.Duration
	SecureCookies bool
}

// NewRouter returns a gin engine serving the /api routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	sess := api.Group("/session")
	sess.POST("/login", h.Login)
	sess.POST("/logout", h.Logout)
	sess.GET("/me", h.Me)

	api.GET("/products", h.SearchProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products/:id/review-summary", h.SummarizeReviews)
	api.GET("/categories", h.Categories)

	api.GET("/cart", h.GetCart)
	api.POST("/cart/items", h.AddToCart)
	api.DELETE("/cart/items/:id", h.RemoveFromCart)

	api.GET("/checkout", h.Checkout)
	api.POST("/orders", h.PlaceOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.GET("/orders/:id/tracking", h.TrackOrder)
	api.GET("/payments/:method/instructions", h.PaymentInstructions)

	sellers := api.Group("/seller", h.requireRole(user.RoleSeller))
	sellers.GET("/inventory", h.SellerInventory)
	sellers.POST("/inventory/:id/stock", h.AdjustStock)
	sellers.POST("/descriptions", h.GenerateDescription)

	admins := api.Group("/admin", h.requireRole(user.RoleAdmin))
	admins.GET("/overview", h.AdminOverview)
	admins.GET("/sellers", h.ListSellers)
	admins.POST("/sellers/:id/approve", h.ApproveSeller)
	admins.GET("/audits", h.ListAudits)
	admins.POST("/audits/:id", h.StartAudit)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{
			Success:   false,
			Error:     &APIError{Code: "NOT_FOUND", Message: "route not found"},
			RequestID: requestID(c),
		})
	})

	return r
}
