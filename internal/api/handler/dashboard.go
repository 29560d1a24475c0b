package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/scheduler"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/nextapps-br/sales-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// GetDashboard retorna o snapshot do telão. Sem parâmetro de mês serve o
// snapshot mantido pelo ciclo ao vivo; com ?month=YYYY-MM calcula o mês
// pedido sob demanda.
func GetDashboard(service *scheduler.DashboardRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		monthParam := r.URL.Query().Get("month")

		if monthParam == "" || monthParam == time.Now().Format("2006-01") {
			snapshot := service.Snapshot()
			if snapshot == nil {
				// O primeiro ciclo ainda não terminou; calcular na hora
				var err error
				snapshot, err = service.SnapshotForMonth(time.Now())
				if err != nil {
					logrus.Error("Erro ao montar dashboard:", err)
					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
					return
				}
			}

			writeDashboard(w, snapshot)
			return
		}

		month, err := time.Parse("2006-01", monthParam)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato YYYY-MM", nil)
			return
		}

		snapshot, err := service.SnapshotForMonth(month)
		if err != nil {
			logrus.Error("Erro ao montar dashboard histórico:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard do mês pedido", nil)
			return
		}

		writeDashboard(w, snapshot)
	})
}

func writeDashboard(w http.ResponseWriter, snapshot *domain.DashboardSnapshot) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

// RefreshDashboard dispara manualmente um ciclo de atualização
func RefreshDashboard(service *scheduler.DashboardRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshDashboard")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem disparar a atualização", nil)
			return
		}

		go service.Refresh()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Atualização do telão disparada com sucesso",
		})
	})
}

// GetDashboardStatus retorna o estado do ciclo de atualização
func GetDashboardStatus(service *scheduler.DashboardRefreshService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem consultar o status", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	})
}
