package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/broomaam/BAAM-BookingService/internal/api/handlers"
)

type contextKey string

const subjectKey contextKey = "subject"

const (
	msgMissingToken = "missing or malformed authorization header"
	msgInvalidToken = "invalid token"
	msgForbidden    = "admin role required"
)

// Auth guards the admin routes. It expects a Bearer token signed with
// the shared HMAC secret and a "role" claim matching adminRole.
type Auth struct {
	secret    []byte
	adminRole string
}

// NewAuth creates the auth middleware.
func NewAuth(secret string, adminRole string) *Auth {
	return &Auth{
		secret:    []byte(secret),
		adminRole: adminRole,
	}
}

// Middleware returns the mux-compatible wrapper.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		role, _ := claims["role"].(string)
		if role != a.adminRole {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		ctx := r.Context()
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			ctx = context.WithValue(ctx, subjectKey, sub)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubject returns the authenticated subject, if any.
func GetSubject(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}
