// Package sheets importa vendedores e lançamentos diários de planilhas
// publicadas em CSV, usadas como fonte de carga inicial do banco
package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
)

// DailyEntryRow é uma linha da planilha de lançamentos diários. A
// planilha referencia o vendedor pelo nome; a resolução para ID fica a
// cargo de quem importa.
type DailyEntryRow struct {
	VendedorNome   string
	Data           time.Time
	Calls          int
	LeadsAtendidos int
}

type SheetsIntegrator interface {
	FetchVendedores() ([]*domain.Vendedor, error)
	FetchDadosDiarios() ([]DailyEntryRow, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchVendedores lê a planilha de vendedores. Colunas reconhecidas:
// nome (obrigatória), cargo, foto_url e squad_id; linhas sem nome são
// ignoradas.
func (s *SheetsService) FetchVendedores() ([]*domain.Vendedor, error) {
	if s.cfg.Sheets.VendedoresCSVURL == "" {
		return nil, fmt.Errorf("planilha de vendedores não configurada")
	}

	records, err := s.Client.FetchCSV(s.cfg.Sheets.VendedoresCSVURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar planilha de vendedores: %w", err)
	}

	header, rows := splitHeader(records)
	if header == nil {
		return []*domain.Vendedor{}, nil
	}

	vendedores := make([]*domain.Vendedor, 0, len(rows))
	for _, row := range rows {
		nome := strings.TrimSpace(cell(row, header, "nome"))
		if nome == "" {
			continue
		}

		vendedor := &domain.Vendedor{
			Nome:  nome,
			Cargo: strings.TrimSpace(cell(row, header, "cargo")),
		}
		if vendedor.Cargo == "" {
			vendedor.Cargo = domain.CargoPadrao
		}

		if foto := strings.TrimSpace(cell(row, header, "foto_url")); foto != "" {
			vendedor.FotoURL = &foto
		}

		if squadID := strings.TrimSpace(cell(row, header, "squad_id")); squadID != "" {
			vendedor.SquadID = &squadID
		}

		vendedores = append(vendedores, vendedor)
	}

	return vendedores, nil
}

// FetchDadosDiarios lê a planilha de lançamentos diários. Colunas
// reconhecidas: vendedor (nome), data (YYYY-MM-DD), calls e
// leads_atendidos; números inválidos valem zero e linhas sem vendedor
// ou com data inválida são ignoradas.
func (s *SheetsService) FetchDadosDiarios() ([]DailyEntryRow, error) {
	if s.cfg.Sheets.DadosDiariosCSVURL == "" {
		return nil, fmt.Errorf("planilha de dados diários não configurada")
	}

	records, err := s.Client.FetchCSV(s.cfg.Sheets.DadosDiariosCSVURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar planilha de dados diários: %w", err)
	}

	header, rows := splitHeader(records)
	if header == nil {
		return []DailyEntryRow{}, nil
	}

	entries := make([]DailyEntryRow, 0, len(rows))
	for _, row := range rows {
		vendedor := strings.TrimSpace(cell(row, header, "vendedor"))
		if vendedor == "" {
			continue
		}

		data, err := time.Parse(time.DateOnly, strings.TrimSpace(cell(row, header, "data")))
		if err != nil {
			continue
		}

		entries = append(entries, DailyEntryRow{
			VendedorNome:   vendedor,
			Data:           data,
			Calls:          parseCount(cell(row, header, "calls")),
			LeadsAtendidos: parseCount(cell(row, header, "leads_atendidos")),
		})
	}

	return entries, nil
}

// splitHeader separa o cabeçalho das linhas de dados, mapeando cada nome
// de coluna normalizado para seu índice
func splitHeader(records [][]string) (map[string]int, [][]string) {
	if len(records) == 0 {
		return nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized != "" {
			header[normalized] = i
		}
	}

	return header, records[1:]
}

func cell(row []string, header map[string]int, column string) string {
	index, ok := header[column]
	if !ok || index >= len(row) {
		return ""
	}
	return row[index]
}

// parseCount converte uma célula numérica, valendo zero quando a célula
// está vazia ou não é um número
func parseCount(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
