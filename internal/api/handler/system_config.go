package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetSystemConfig retorna a configuração visual do sistema; antes do
// primeiro registro vale a configuração padrão
func GetSystemConfig(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		config, err := service.GetSystemConfig()
		if err != nil {
			logrus.Error("Erro ao buscar configuração do sistema:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configuração do sistema", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(config); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SaveSystemConfig(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveSystemConfig")

		var config domain.SystemConfig
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		salvo, err := service.SaveSystemConfig(&config)
		if err != nil {
			writeManagingError(w, err, "Erro ao salvar configuração do sistema")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(salvo); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
