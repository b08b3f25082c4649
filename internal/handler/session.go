package handler

import (
	"fmt"
	"net/http"

	"bazaar-be/internal/auth"
	"bazaar-be/internal/user"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var in user.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	u, err := h.Users.Login(c.Request.Context(), sessionID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.reissueToken(c, u)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"user": u, "token": token})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.Users.Logout(c.Request.Context(), sessionID(c)); err != nil {
		respondError(c, err)
		return
	}

	token, err := h.reissueToken(c, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"token": token})
}

func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)

	u, err := h.Users.Me(ctx, sid)
	if err != nil {
		respondError(c, err)
		return
	}
	items, err := h.Carts.GetCart(ctx, sid)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{"user": u, "cartCount": items.Count()})
}

// reissueToken writes a token carrying the new user snapshot for the
// current session.
func (h *Handler) reissueToken(c *gin.Context, u *user.User) (string, error) {
	token, err := h.Tokens.Issue(sessionID(c), u)
	if err != nil {
		return "", err
	}
	auth.WriteSessionToken(c.Writer, token, h.TokenTTL, h.SecureCookies)
	return token, nil
}
