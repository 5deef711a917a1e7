package middleware

import (
	"context"
	"net/http"

	"github.com/dvukovic/devconnect/internal/token"
)

type contextKey string

const userClaimKey contextKey = "user_claim"

// The rejection body is identical for a missing, malformed, expired, or
// forged token. Keep it that way.
const unauthenticatedBody = `{"error":{"code":"UNAUTHENTICATED","message":"Authentication required"}}`

// Auth verifies the bearer token carried in the `token` request header and
// injects the decoded identity into the request context.
func Auth(tokens *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("token")
			if raw == "" {
				rejectUnauthenticated(w)
				return
			}

			claim, err := tokens.Verify(raw)
			if err != nil {
				rejectUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), userClaimKey, claim)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(unauthenticatedBody))
}

// UserClaim extracts the authenticated identity from the request context.
// Only valid downstream of Auth.
func UserClaim(ctx context.Context) token.UserClaim {
	return ctx.Value(userClaimKey).(token.UserClaim)
}
