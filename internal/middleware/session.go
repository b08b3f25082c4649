package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"bazaar-be/internal/auth"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/session"
	"bazaar-be/internal/user"

	"go.uber.org/zap"
)

// Sessions resolves the caller's storefront session from its token. A
// missing, invalid or expired token gets a fresh guest session, and the
// current token is always written back to the client.
type Sessions struct {
	Store  *session.Store
	Tokens *user.TokenIssuer
	TTL    time.Duration
	Secure bool
}

func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromCtx(ctx)

		token := auth.ExtractSessionToken(r)
		var sid string
		if token != "" {
			claims, err := s.Tokens.Parse(token)
			switch {
			case err != nil:
				log.Debug("discarding unusable session token", zap.Error(err))
			case !s.Store.Touch(ctx, claims.SessionID):
				log.Debug("session expired", zap.String("session_id", claims.SessionID))
			default:
				sid = claims.SessionID
			}
		}

		if sid == "" {
			sid = s.Store.Create(ctx)
			u, _ := s.Store.GetUser(ctx, sid)
			fresh, err := s.Tokens.Issue(sid, u)
			if err != nil {
				log.Error("failed to issue session token", zap.Error(err))
				writeError(w, r, http.StatusInternalServerError, "INTERNAL", "could not start session")
				return
			}
			token = fresh
		}

		auth.WriteSessionToken(w, token, s.TTL, s.Secure)
		next.ServeHTTP(w, r.WithContext(logger.WithSessionID(ctx, sid)))
	})
}

// TokenSessionKey returns a RateLimiter.SessionKey that reads the session id
// from a validly signed session token.
func TokenSessionKey(tokens *user.TokenIssuer) func(r *http.Request) string {
	return func(r *http.Request) string {
		token := auth.ExtractSessionToken(r)
		if token == "" {
			return ""
		}
		claims, err := tokens.Parse(token)
		if err != nil {
			return ""
		}
		return claims.SessionID
	}
}

// writeError writes the API error envelope for failures raised before the
// router runs.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
		"request_id": logger.RequestIDFrom(r.Context()),
	})
}
