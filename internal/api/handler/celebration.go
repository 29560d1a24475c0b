package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/celebrating"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
)

// GetCelebration retorna o evento de comemoração em exibição no telão.
// Sem evento ativo responde 204, que o painel interpreta como overlay
// fechado.
func GetCelebration(detector *celebrating.Detector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event := detector.Current()
		if event == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DismissCelebration encerra a exibição do evento atual
func DismissCelebration(detector *celebrating.Detector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		detector.Dismiss()
		w.WriteHeader(http.StatusNoContent)
	})
}
