package sheets

import (
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient devolve registros fixos por URL
type stubClient struct {
	records map[string][][]string
	err     error
}

func (c *stubClient) FetchCSV(url string) ([][]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.records[url], nil
}

func newTestService(records map[string][][]string) SheetsIntegrator {
	cfg := &config.Config{}
	cfg.Sheets.VendedoresCSVURL = "https://sheets.test/vendedores"
	cfg.Sheets.DadosDiariosCSVURL = "https://sheets.test/dados"

	return New(cfg, &stubClient{records: records})
}

func TestSheetsService_FetchVendedores(t *testing.T) {
	tests := []struct {
		name     string
		records  [][]string
		validate func(t *testing.T, vendedores []*domain.Vendedor, err error)
	}{
		{
			name: "Deve mapear colunas pelo cabeçalho independente da ordem",
			records: [][]string{
				{"cargo", "nome", "squad_id", "foto_url"},
				{"Closer", "Ana Souza", "SQ001", "https://cdn.test/ana.png"},
			},
			validate: func(t *testing.T, vendedores []*domain.Vendedor, err error) {
				require.NoError(t, err)
				require.Len(t, vendedores, 1)
				assert.Equal(t, "Ana Souza", vendedores[0].Nome)
				assert.Equal(t, "Closer", vendedores[0].Cargo)
				require.NotNil(t, vendedores[0].SquadID)
				assert.Equal(t, "SQ001", *vendedores[0].SquadID)
				require.NotNil(t, vendedores[0].FotoURL)
			},
		},
		{
			name: "Linhas sem nome são ignoradas e cargo vazio recebe o padrão",
			records: [][]string{
				{"nome", "cargo"},
				{"", "Closer"},
				{"Bruno Lima", ""},
			},
			validate: func(t *testing.T, vendedores []*domain.Vendedor, err error) {
				require.NoError(t, err)
				require.Len(t, vendedores, 1)
				assert.Equal(t, "Bruno Lima", vendedores[0].Nome)
				assert.Equal(t, domain.CargoPadrao, vendedores[0].Cargo)
				assert.Nil(t, vendedores[0].SquadID)
			},
		},
		{
			name: "Linha mais curta que o cabeçalho não deve quebrar",
			records: [][]string{
				{"nome", "cargo", "foto_url"},
				{"Carla Mendes"},
			},
			validate: func(t *testing.T, vendedores []*domain.Vendedor, err error) {
				require.NoError(t, err)
				require.Len(t, vendedores, 1)
				assert.Equal(t, domain.CargoPadrao, vendedores[0].Cargo)
			},
		},
		{
			name:    "Planilha vazia deve retornar lista vazia",
			records: nil,
			validate: func(t *testing.T, vendedores []*domain.Vendedor, err error) {
				require.NoError(t, err)
				assert.Empty(t, vendedores)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(map[string][][]string{
				"https://sheets.test/vendedores": tt.records,
			})

			vendedores, err := service.FetchVendedores()
			tt.validate(t, vendedores, err)
		})
	}
}

func TestSheetsService_FetchDadosDiarios(t *testing.T) {
	service := newTestService(map[string][][]string{
		"https://sheets.test/dados": {
			{"vendedor", "data", "calls", "leads_atendidos"},
			{"Ana Souza", "2026-08-10", "12", "5"},
			{"Ana Souza", "data-invalida", "3", "1"}, // Data ilegível: ignorada
			{"", "2026-08-10", "3", "1"},             // Sem vendedor: ignorada
			{"Bruno Lima", "2026-08-11", "abc", "-2"},
		},
	})

	entries, err := service.FetchDadosDiarios()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Ana Souza", entries[0].VendedorNome)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), entries[0].Data)
	assert.Equal(t, 12, entries[0].Calls)
	assert.Equal(t, 5, entries[0].LeadsAtendidos)

	// Números ilegíveis ou negativos valem zero
	assert.Equal(t, "Bruno Lima", entries[1].VendedorNome)
	assert.Zero(t, entries[1].Calls)
	assert.Zero(t, entries[1].LeadsAtendidos)
}

func TestSheetsService_URLNaoConfigurada(t *testing.T) {
	service := New(&config.Config{}, &stubClient{})

	_, err := service.FetchVendedores()
	assert.Error(t, err)

	_, err = service.FetchDadosDiarios()
	assert.Error(t, err)
}
