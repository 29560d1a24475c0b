package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type AssignSquadRequest struct {
	SquadID *string `json:"squad_id"`
}

func ListVendedores(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vendedores, err := service.ListVendedores()
		if err != nil {
			logrus.Error("Erro ao listar vendedores:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar vendedores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendedores); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetVendedor(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		vendedor, err := service.GetVendedor(id)
		if err != nil {
			writeManagingError(w, err, "Erro ao buscar vendedor")
			return
		}
		if vendedor == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Vendedor não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendedor); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateVendedor(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVendedor")

		var vendedor domain.Vendedor
		if err := json.NewDecoder(r.Body).Decode(&vendedor); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		criado, err := service.CreateVendedor(&vendedor)
		if err != nil {
			writeManagingError(w, err, "Erro ao criar vendedor")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(criado); err != nil {
			logrus.Error("Erro ao codificar resposta:", err)
		}
	})
}

func UpdateVendedor(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateVendedor")

		var request domain.UpdateVendedorRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		request.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		vendedor, err := service.UpdateVendedor(&request)
		if err != nil {
			writeManagingError(w, err, "Erro ao atualizar vendedor")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendedor); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteVendedor(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteVendedor")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteVendedor(id); err != nil {
			writeManagingError(w, err, "Erro ao remover vendedor")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// AssignVendedorSquad move o vendedor de squad; squad_id nulo no corpo
// tira o vendedor de qualquer squad
func AssignVendedorSquad(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AssignVendedorSquad")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request AssignSquadRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.AssignSquad(id, request.SquadID); err != nil {
			writeManagingError(w, err, "Erro ao mover vendedor de squad")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeManagingError converte os erros de validação do painel em
// respostas padronizadas
func writeManagingError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback, ": ", err)

	switch {
	case errors.Is(err, managing.ErrIDObrigatorio),
		errors.Is(err, managing.ErrNomeObrigatorio):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, managing.ErrDataInvalida),
		errors.Is(err, managing.ErrContagemNegativa),
		errors.Is(err, managing.ErrTipoVendaInvalido):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, managing.ErrVendedorNaoEncontrado),
		errors.Is(err, managing.ErrSquadNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
