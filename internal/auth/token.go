package auth

import (
	"net/http"
	"strings"
	"time"
)

const (
	SessionCookie      = "session_token"
	SessionTokenHeader = "X-Session-Token"
)

// ExtractSessionToken reads the session token from the cookie, falling back
// to an Authorization bearer header.
func ExtractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return ""
}

// WriteSessionToken hands the token back to the client in both the response
// header and an HttpOnly cookie.
func WriteSessionToken(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	w.Header().Set(SessionTokenHeader, token)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
