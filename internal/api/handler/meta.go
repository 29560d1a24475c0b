package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/managing"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type SaveMetaRequest struct {
	Mes              string  `json:"mes"` // Formato 2006-01
	ValorEntradaMeta float64 `json:"valor_entrada_meta"`
	ValorVendasMeta  float64 `json:"valor_vendas_meta"`
	VendasMeta       int     `json:"vendas_meta"`
	CallsMeta        int     `json:"calls_meta"`
	LeadsMeta        int     `json:"leads_meta"`
}

// GetMeta retorna a meta do mês pedido em ?month=YYYY-MM; sem meta
// cadastrada responde 204
func GetMeta(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month, ok := parseMonthParam(w, r)
		if !ok {
			return
		}

		meta, err := service.MetaByMonth(month)
		if err != nil {
			logrus.Error("Erro ao buscar meta:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta do mês", nil)
			return
		}

		if meta == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(meta); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SaveMeta cria ou substitui a meta do mês informado
func SaveMeta(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveMeta")

		var request SaveMetaRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		mes, err := time.Parse("2006-01", request.Mes)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use o formato YYYY-MM", nil)
			return
		}

		meta, err := service.SaveMeta(&domain.Meta{
			Mes:              mes,
			ValorEntradaMeta: request.ValorEntradaMeta,
			ValorVendasMeta:  request.ValorVendasMeta,
			VendasMeta:       request.VendasMeta,
			CallsMeta:        request.CallsMeta,
			LeadsMeta:        request.LeadsMeta,
		})
		if err != nil {
			writeManagingError(w, err, "Erro ao salvar meta do mês")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(meta); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
