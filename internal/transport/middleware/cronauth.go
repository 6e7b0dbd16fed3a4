package middleware

import (
	"crypto/subtle"
	"net/http"
)

// CronAuth returns middleware that guards machine-invoked routes with a
// shared secret bearer token. It is separate from user auth: the cron
// caller has no user identity, only the secret.
func CronAuth(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
