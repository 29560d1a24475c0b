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

// ListVendas retorna as vendas do mês pedido em ?month=YYYY-MM
func ListVendas(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month, ok := parseMonthParam(w, r)
		if !ok {
			return
		}

		vendas, err := service.VendasByMonth(month)
		if err != nil {
			logrus.Error("Erro ao buscar vendas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendas); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateVenda(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateVenda")

		var venda domain.VendaIndividual
		if err := json.NewDecoder(r.Body).Decode(&venda); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		criada, err := service.CreateVenda(&venda)
		if err != nil {
			writeManagingError(w, err, "Erro ao registrar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(criada); err != nil {
			logrus.Error("Erro ao codificar resposta:", err)
		}
	})
}

func UpdateVenda(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateVenda")

		var venda domain.VendaIndividual
		if err := json.NewDecoder(r.Body).Decode(&venda); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		venda.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.UpdateVenda(&venda); err != nil {
			writeManagingError(w, err, "Erro ao atualizar venda")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(venda); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteVenda(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteVenda")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteVenda(id); err != nil {
			writeManagingError(w, err, "Erro ao remover venda")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListMetodosPagamento retorna o catálogo de métodos aceitos pelo painel
func ListMetodosPagamento() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domain.MetodosPagamentoDisponiveis); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
