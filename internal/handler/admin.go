package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminOverview(c *gin.Context) {
	ov, err := h.Admin.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, ov)
}

func (h *Handler) ListSellers(c *gin.Context) {
	sellers, err := h.Admin.ListSellers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sellers)
}

func (h *Handler) ApproveSeller(c *gin.Context) {
	s, err := h.Admin.ApproveSeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, s)
}

func (h *Handler) ListAudits(c *gin.Context) {
	audits, err := h.Admin.ListAudits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, audits)
}

// StartAudit kicks off a background audit and answers before it finishes.
func (h *Handler) StartAudit(c *gin.Context) {
	a, err := h.Admin.StartAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusAccepted, a)
}
