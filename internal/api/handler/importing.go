package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/importing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/nextapps-br/sales-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// ImportFromSheets dispara a carga das planilhas publicadas para o banco
func ImportFromSheets(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportFromSheets")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem importar planilhas", nil)
			return
		}

		summary, err := service.ImportFromSheets()
		if err != nil {
			logrus.Error("Erro na importação de planilhas:", err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao importar planilhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
