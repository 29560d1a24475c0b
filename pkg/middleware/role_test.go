package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestWithRole := func(roleID int) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/vendedores", nil)
		claims := &domain.Claims{UserID: 1, UserRoleID: roleID}
		return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
	}

	tests := []struct {
		name           string
		middleware     func(http.Handler) http.Handler
		request        *http.Request
		expectedStatus int
	}{
		{
			name:           "Deve permitir administrador em rota restrita a administradores",
			middleware:     AdminOnly(),
			request:        requestWithRole(RoleAdmin),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Deve negar gestor em rota restrita a administradores",
			middleware:     AdminOnly(),
			request:        requestWithRole(RoleGestor),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Deve permitir coordenador em rota de administradores e coordenadores",
			middleware:     AdminOrCoordenador(),
			request:        requestWithRole(RoleCoordenador),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Deve negar gestor em rota de administradores e coordenadores",
			middleware:     AdminOrCoordenador(),
			request:        requestWithRole(RoleGestor),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Deve permitir gestor em rota aberta a todos os perfis",
			middleware:     AllRoles(),
			request:        requestWithRole(RoleGestor),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Deve negar requisição sem claims no contexto",
			middleware:     AllRoles(),
			request:        httptest.NewRequest(http.MethodGet, "/v1/vendedores", nil),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(recorder, tt.request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
