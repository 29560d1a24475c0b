package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListDailyEntries retorna os lançamentos do mês pedido em ?month=YYYY-MM
// (mês corrente quando ausente)
func ListDailyEntries(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month, ok := parseMonthParam(w, r)
		if !ok {
			return
		}

		entries, err := service.DailyEntriesByMonth(month)
		if err != nil {
			logrus.Error("Erro ao buscar lançamentos diários:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar lançamentos diários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// UpsertDailyEntry grava o lançamento do par (vendedor, data),
// substituindo um lançamento anterior do mesmo dia se existir
func UpsertDailyEntry(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertDailyEntry")

		var request domain.UpsertDailyEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.UpsertDailyEntry(&request)
		if err != nil {
			writeManagingError(w, err, "Erro ao gravar lançamento diário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteDailyEntry(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDailyEntry")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDailyEntry(id); err != nil {
			writeManagingError(w, err, "Erro ao remover lançamento diário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// parseMonthParam lê ?month=YYYY-MM, valendo o mês corrente quando o
// parâmetro não é informado. Escreve a resposta de erro quando o formato
// é inválido.
func parseMonthParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	monthParam := r.URL.Query().Get("month")
	if monthParam == "" {
		return time.Now(), true
	}

	month, err := time.Parse("2006-01", monthParam)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato YYYY-MM", nil)
		return time.Time{}, false
	}

	return month, true
}
