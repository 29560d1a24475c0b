package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// isPublicPath libera as rotas de autenticação e as rotas de leitura do
// painel público (o telão não se autentica)
func isPublicPath(r *http.Request) bool {
	switch r.URL.Path {
	case "/v1/login", "/v1/register", "/healthcheck":
		return true
	case "/v1/dashboard", "/v1/dashboard/ws", "/v1/config":
		return r.Method == http.MethodGet
	case "/v1/dashboard/celebration":
		return r.Method == http.MethodGet || r.Method == http.MethodDelete
	}
	return false
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
