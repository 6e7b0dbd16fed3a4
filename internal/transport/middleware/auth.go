package middleware

import (
	"net/http"
	"strings"

	"github.com/postroom/postroom-backend/internal/domain"
	"github.com/postroom/postroom-backend/pkg/ctxutil"
)

type tokenVerifier interface {
	VerifyAccessToken(token string) (domain.Identity, error)
}

// Auth returns middleware that requires a valid bearer token and stores
// the caller identity in the request context. Requests without one are
// rejected; every route behind this middleware can assume an identity.
func Auth(verifier tokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			identity, err := verifier.VerifyAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
