package handler

import (
	"strings"

	"bazaar-be/internal/locale"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/user"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const userKey = "user"

func sessionID(c *gin.Context) string {
	return logger.SessionIDFrom(c.Request.Context())
}

// lang resolves the display language from the lang query parameter, then
// Accept-Language.
func lang(c *gin.Context) language.Tag {
	return locale.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// requireRole lets through only sessions whose user has exactly one of roles.
func (h *Handler) requireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := h.Users.Me(c.Request.Context(), sessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		if u == nil {
			respondError(c, errUnauthenticated)
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Set(userKey, u)
				c.Next()
				return
			}
		}
		respondError(c, errForbidden)
	}
}

func currentUser(c *gin.Context) *user.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
