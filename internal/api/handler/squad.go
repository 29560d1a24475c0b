package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

func ListSquads(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		squads, err := service.ListSquads()
		if err != nil {
			logrus.Error("Erro ao listar squads:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar squads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(squads); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateSquad(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSquad")

		var squad domain.Squad
		if err := json.NewDecoder(r.Body).Decode(&squad); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		criado, err := service.CreateSquad(&squad)
		if err != nil {
			writeManagingError(w, err, "Erro ao criar squad")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(criado); err != nil {
			logrus.Error("Erro ao codificar resposta:", err)
		}
	})
}

func UpdateSquad(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateSquad")

		var squad domain.Squad
		if err := json.NewDecoder(r.Body).Decode(&squad); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		squad.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		atualizado, err := service.UpdateSquad(&squad)
		if err != nil {
			writeManagingError(w, err, "Erro ao atualizar squad")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(atualizado); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeleteSquad remove o squad; os integrantes são desvinculados antes da
// remoção
func DeleteSquad(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteSquad")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSquad(id); err != nil {
			writeManagingError(w, err, "Erro ao remover squad")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
