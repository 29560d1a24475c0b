// Package importing faz a carga inicial do banco a partir das planilhas
// publicadas em CSV
package importing

import (
	"fmt"
	"strings"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ImportSummary resume o resultado de uma importação
type ImportSummary struct {
	VendedoresCriados     int `json:"vendedoresCriados"`
	VendedoresAtualizados int `json:"vendedoresAtualizados"`
	LancamentosImportados int `json:"lancamentosImportados"`
	LinhasIgnoradas       int `json:"linhasIgnoradas"`
}

type Importer interface {
	ImportFromSheets() (*ImportSummary, error)
}

type Service struct {
	integrator   sheets.SheetsIntegrator
	vendedorRepo repository.VendedorRepository
	dailyRepo    repository.DailyEntryRepository
}

func NewService(
	integrator sheets.SheetsIntegrator,
	vendedorRepo repository.VendedorRepository,
	dailyRepo repository.DailyEntryRepository,
) Importer {
	return &Service{
		integrator:   integrator,
		vendedorRepo: vendedorRepo,
		dailyRepo:    dailyRepo,
	}
}

// ImportFromSheets busca as duas planilhas e grava vendedores e
// lançamentos diários no banco. Vendedores são casados pelo nome
// normalizado; lançamentos referenciando nomes desconhecidos são
// contados como ignorados, não abortam a importação.
func (s *Service) ImportFromSheets() (*ImportSummary, error) {
	summary := &ImportSummary{}

	planilhaVendedores, err := s.integrator.FetchVendedores()
	if err != nil {
		return nil, fmt.Errorf("erro ao importar vendedores: %w", err)
	}

	existentes, err := s.vendedorRepo.ListVendedores()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendedores existentes: %w", err)
	}

	idPorNome := make(map[string]string, len(existentes))
	for _, vendedor := range existentes {
		idPorNome[normalizeNome(vendedor.Nome)] = vendedor.ID
	}

	for _, vendedor := range planilhaVendedores {
		nome := normalizeNome(vendedor.Nome)

		if id, ok := idPorNome[nome]; ok {
			vendedor.ID = id
			if err := s.vendedorRepo.UpdateVendedor(vendedor); err != nil {
				logrus.Warnf("Erro ao atualizar vendedor %s na importação: %v", vendedor.Nome, err)
				summary.LinhasIgnoradas++
				continue
			}
			summary.VendedoresAtualizados++
			continue
		}

		criado, err := s.vendedorRepo.CreateVendedor(vendedor)
		if err != nil {
			logrus.Warnf("Erro ao criar vendedor %s na importação: %v", vendedor.Nome, err)
			summary.LinhasIgnoradas++
			continue
		}

		idPorNome[nome] = criado.ID
		summary.VendedoresCriados++
	}

	lancamentos, err := s.integrator.FetchDadosDiarios()
	if err != nil {
		return nil, fmt.Errorf("erro ao importar dados diários: %w", err)
	}

	for _, linha := range lancamentos {
		vendedorID, ok := idPorNome[normalizeNome(linha.VendedorNome)]
		if !ok {
			summary.LinhasIgnoradas++
			continue
		}

		_, err := s.dailyRepo.UpsertDailyEntry(&domain.DailyEntry{
			VendedorID:     vendedorID,
			Data:           linha.Data,
			Calls:          linha.Calls,
			LeadsAtendidos: linha.LeadsAtendidos,
		})
		if err != nil {
			logrus.Warnf("Erro ao gravar lançamento de %s em %s: %v", linha.VendedorNome, linha.Data.Format(time.DateOnly), err)
			summary.LinhasIgnoradas++
			continue
		}

		summary.LancamentosImportados++
	}

	return summary, nil
}

func normalizeNome(nome string) string {
	return strings.ToLower(strings.TrimSpace(nome))
}
