package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dukedan/consensus-backend/internal/domain"
	"github.com/dukedan/consensus-backend/pkg/ctxutil"
)

type sessionVerifier interface {
	VerifySession(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves the bearer session token into a user ID in the context.
// Requests without a token pass through anonymously; a present-but-invalid
// token is rejected with 401 rather than silently downgraded.
func Auth(verifier sessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := verifier.VerifySession(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), identity.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that did not authenticate. Apply after Auth
// on routes where anonymous access makes no sense.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
