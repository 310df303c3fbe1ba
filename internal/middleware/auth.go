package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/finwell/finwell-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type contextKey string

// OwnerIDKey carries the authenticated owner id through the request
// context. Tokens are issued by the external auth service; this
// middleware only validates them.
const OwnerIDKey contextKey = "ownerID"

// OwnerID extracts the authenticated owner id from the context.
// Returns an empty string when the request was not authenticated.
func OwnerID(ctx context.Context) string {
	owner, _ := ctx.Value(OwnerIDKey).(string)
	return owner
}

// AuthMiddleware validates the bearer token and stores its subject as
// the owner id
func AuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OwnerIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
