package importing

import (
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets"
	sheetsmocks "github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_ImportFromSheets(t *testing.T) {
	dia := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(integrator *sheetsmocks.MockSheetsIntegrator, vendedorRepo *mocks.MockVendedorRepository, dailyRepo *mocks.MockDailyEntryRepository)
		validate func(t *testing.T, summary *ImportSummary, err error)
	}{
		{
			name: "Deve criar vendedores novos e atualizar os existentes pelo nome",
			setup: func(integrator *sheetsmocks.MockSheetsIntegrator, vendedorRepo *mocks.MockVendedorRepository, dailyRepo *mocks.MockDailyEntryRepository) {
				integrator.EXPECT().FetchVendedores().Return([]*domain.Vendedor{
					{Nome: "Ana Souza", Cargo: "Closer"},
					{Nome: "bruno lima", Cargo: "SDR"}, // Casamento ignora caixa
				}, nil)

				vendedorRepo.EXPECT().ListVendedores().Return([]*domain.Vendedor{
					{ID: "VND002", Nome: "Bruno Lima"},
				}, nil)

				vendedorRepo.EXPECT().
					CreateVendedor(gomock.Any()).
					DoAndReturn(func(v *domain.Vendedor) (*domain.Vendedor, error) {
						assert.Equal(t, "Ana Souza", v.Nome)
						v.ID = "VND001"
						return v, nil
					})

				vendedorRepo.EXPECT().
					UpdateVendedor(gomock.Any()).
					DoAndReturn(func(v *domain.Vendedor) error {
						assert.Equal(t, "VND002", v.ID)
						return nil
					})

				integrator.EXPECT().FetchDadosDiarios().Return(nil, nil)
			},
			validate: func(t *testing.T, summary *ImportSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, summary.VendedoresCriados)
				assert.Equal(t, 1, summary.VendedoresAtualizados)
				assert.Zero(t, summary.LinhasIgnoradas)
			},
		},
		{
			name: "Lançamentos devem resolver o vendedor pelo nome, inclusive recém-criados",
			setup: func(integrator *sheetsmocks.MockSheetsIntegrator, vendedorRepo *mocks.MockVendedorRepository, dailyRepo *mocks.MockDailyEntryRepository) {
				integrator.EXPECT().FetchVendedores().Return([]*domain.Vendedor{
					{Nome: "Ana Souza"},
				}, nil)
				vendedorRepo.EXPECT().ListVendedores().Return(nil, nil)
				vendedorRepo.EXPECT().
					CreateVendedor(gomock.Any()).
					DoAndReturn(func(v *domain.Vendedor) (*domain.Vendedor, error) {
						v.ID = "VND001"
						return v, nil
					})

				integrator.EXPECT().FetchDadosDiarios().Return([]sheets.DailyEntryRow{
					{VendedorNome: "ANA SOUZA", Data: dia, Calls: 10, LeadsAtendidos: 4},
					{VendedorNome: "Desconhecido", Data: dia, Calls: 3, LeadsAtendidos: 1},
				}, nil)

				dailyRepo.EXPECT().
					UpsertDailyEntry(gomock.Any()).
					DoAndReturn(func(entry *domain.DailyEntry) (*domain.DailyEntry, error) {
						assert.Equal(t, "VND001", entry.VendedorID)
						assert.Equal(t, dia, entry.Data)
						assert.Equal(t, 10, entry.Calls)
						return entry, nil
					})
			},
			validate: func(t *testing.T, summary *ImportSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, summary.LancamentosImportados)
				assert.Equal(t, 1, summary.LinhasIgnoradas)
			},
		},
		{
			name: "Erro de gravação em uma linha não aborta a importação",
			setup: func(integrator *sheetsmocks.MockSheetsIntegrator, vendedorRepo *mocks.MockVendedorRepository, dailyRepo *mocks.MockDailyEntryRepository) {
				integrator.EXPECT().FetchVendedores().Return(nil, nil)
				vendedorRepo.EXPECT().ListVendedores().Return([]*domain.Vendedor{
					{ID: "VND001", Nome: "Ana Souza"},
				}, nil)

				integrator.EXPECT().FetchDadosDiarios().Return([]sheets.DailyEntryRow{
					{VendedorNome: "Ana Souza", Data: dia, Calls: 1},
					{VendedorNome: "Ana Souza", Data: dia.AddDate(0, 0, 1), Calls: 2},
				}, nil)

				gomock.InOrder(
					dailyRepo.EXPECT().UpsertDailyEntry(gomock.Any()).Return(nil, assert.AnError),
					dailyRepo.EXPECT().UpsertDailyEntry(gomock.Any()).DoAndReturn(func(entry *domain.DailyEntry) (*domain.DailyEntry, error) {
						return entry, nil
					}),
				)
			},
			validate: func(t *testing.T, summary *ImportSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, summary.LancamentosImportados)
				assert.Equal(t, 1, summary.LinhasIgnoradas)
			},
		},
		{
			name: "Falha ao buscar a planilha de vendedores aborta a importação",
			setup: func(integrator *sheetsmocks.MockSheetsIntegrator, vendedorRepo *mocks.MockVendedorRepository, dailyRepo *mocks.MockDailyEntryRepository) {
				integrator.EXPECT().FetchVendedores().Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, summary *ImportSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			integrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
			vendedorRepo := mocks.NewMockVendedorRepository(ctrl)
			dailyRepo := mocks.NewMockDailyEntryRepository(ctrl)

			tt.setup(integrator, vendedorRepo, dailyRepo)

			service := NewService(integrator, vendedorRepo, dailyRepo)
			summary, err := service.ImportFromSheets()

			tt.validate(t, summary, err)
		})
	}
}
