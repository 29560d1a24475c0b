package aggregating

import (
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_AggregateMonth(t *testing.T) {
	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	squadA := "SQ001"
	squadB := "SQ002"

	vendedores := []*domain.Vendedor{
		{ID: "VND001", Nome: "Ana Souza", SquadID: &squadA},
		{ID: "VND002", Nome: "Bruno Lima", SquadID: &squadA},
		{ID: "VND003", Nome: "Carla Mendes"},
	}

	squads := []*domain.Squad{
		{ID: squadA, Nome: "Squad Alpha"},
		{ID: squadB, Nome: "Squad Beta"},
	}

	tests := []struct {
		name     string
		setup    func(deps testDeps)
		validate func(t *testing.T, result *MonthlyAggregate, err error)
	}{
		{
			name: "Deve agregar calls, leads e vendas do mês por vendedor",
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().ListVendedores().Return(vendedores, nil)
				deps.squadRepo.EXPECT().ListSquads().Return(squads, nil)

				deps.dailyRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.DailyEntry{
						{VendedorID: "VND001", Calls: 10, LeadsAtendidos: 4},
						{VendedorID: "VND001", Calls: 5, LeadsAtendidos: 2},
						{VendedorID: "VND002", Calls: 8, LeadsAtendidos: 3},
					}, nil)

				deps.vendaRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.VendaIndividual{
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaCall, ValorVenda: "1.500,00", ValorEntrada: "500,00", MetodoPagamento: "pix"},
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaLead, ValorVenda: "800,00", ValorEntrada: "200,00", MetodoPagamento: "pix"},
						{VendedorID: "VND002", TipoVenda: domain.TipoVendaCall, ValorVenda: "1000.50", ValorEntrada: "300.50", MetodoPagamento: "boleto"},
					}, nil)
			},
			validate: func(t *testing.T, result *MonthlyAggregate, err error) {
				require.NoError(t, err)
				require.Len(t, result.Vendedores, 3)

				ana := result.Vendedores[0]
				assert.Equal(t, "VND001", ana.Vendedor.ID)
				assert.Equal(t, 15, ana.TotalCalls)
				assert.Equal(t, 6, ana.TotalLeads)
				assert.Equal(t, 1, ana.VendasCall)
				assert.Equal(t, 1, ana.VendasWhatsapp)
				assert.Equal(t, 2, ana.TotalVendas)
				assert.InDelta(t, 2300.0, ana.ValorTotal, 0.001)
				assert.InDelta(t, 700.0, ana.ValorEntrada, 0.001)

				bruno := result.Vendedores[1]
				assert.InDelta(t, 1000.50, bruno.ValorTotal, 0.001)
				assert.InDelta(t, 300.50, bruno.ValorEntrada, 0.001)

				// Vendedor sem atividade aparece zerado, não some da lista
				carla := result.Vendedores[2]
				assert.Equal(t, "VND003", carla.Vendedor.ID)
				assert.Zero(t, carla.TotalVendas)
				assert.Zero(t, carla.ValorEntrada)
			},
		},
		{
			name: "Taxa de conversão com zero leads deve ser 0, não NaN",
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().ListVendedores().Return(vendedores[:1], nil)
				deps.squadRepo.EXPECT().ListSquads().Return(nil, nil)
				deps.dailyRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil)
				deps.vendaRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.VendaIndividual{
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaCall, ValorEntrada: "100,00"},
					}, nil)
			},
			validate: func(t *testing.T, result *MonthlyAggregate, err error) {
				require.NoError(t, err)
				require.Len(t, result.Vendedores, 1)
				assert.Equal(t, 1, result.Vendedores[0].TotalVendas)
				assert.Zero(t, result.Vendedores[0].TaxaConversao)
			},
		},
		{
			name: "Deve calcular taxa de conversão quando há leads",
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().ListVendedores().Return(vendedores[:1], nil)
				deps.squadRepo.EXPECT().ListSquads().Return(nil, nil)
				deps.dailyRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.DailyEntry{
						{VendedorID: "VND001", Calls: 20, LeadsAtendidos: 8},
					}, nil)
				deps.vendaRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.VendaIndividual{
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaCall},
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaLead},
					}, nil)
			},
			validate: func(t *testing.T, result *MonthlyAggregate, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 25.0, result.Vendedores[0].TaxaConversao, 0.001)
			},
		},
		{
			name: "Squads devem somar apenas integrantes atuais e excluir squads vazios",
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().ListVendedores().Return(vendedores, nil)
				deps.squadRepo.EXPECT().ListSquads().Return(squads, nil)
				deps.dailyRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil)
				deps.vendaRepo.EXPECT().
					GetByDateRange(gomock.Any(), gomock.Any()).
					Return([]*domain.VendaIndividual{
						{VendedorID: "VND001", TipoVenda: domain.TipoVendaCall, ValorEntrada: "400,00"},
						{VendedorID: "VND002", TipoVenda: domain.TipoVendaCall, ValorEntrada: "100,00"},
						// VND003 não tem squad: a venda conta para ele, não para squad algum
						{VendedorID: "VND003", TipoVenda: domain.TipoVendaLead, ValorEntrada: "900,00"},
					}, nil)
			},
			validate: func(t *testing.T, result *MonthlyAggregate, err error) {
				require.NoError(t, err)

				// SQ002 não tem integrantes e fica fora da saída
				require.Len(t, result.Squads, 1)
				alpha := result.Squads[0]
				assert.Equal(t, "SQ001", alpha.Squad.ID)
				assert.Len(t, alpha.Vendedores, 2)
				assert.Equal(t, 2, alpha.TotalVendas)
				assert.InDelta(t, 500.0, alpha.ValorEntrada, 0.001)
			},
		},
		{
			name: "Falha em qualquer busca deve abortar o ciclo inteiro",
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().ListVendedores().Return(vendedores, nil)
				deps.squadRepo.EXPECT().ListSquads().Return(squads, nil)
				deps.dailyRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
				deps.vendaRepo.EXPECT().GetByDateRange(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *MonthlyAggregate, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			deps := newTestDeps(ctrl)
			tt.setup(deps)

			service := NewService(deps.vendedorRepo, deps.squadRepo, deps.dailyRepo, deps.vendaRepo)
			result, err := service.AggregateMonth(month)

			tt.validate(t, result, err)
		})
	}
}

func TestPaymentMethodStats(t *testing.T) {
	tests := []struct {
		name     string
		vendas   []*domain.VendaIndividual
		validate func(t *testing.T, stats []domain.PaymentMethodStat)
	}{
		{
			name:   "Sem vendas deve retornar nil",
			vendas: nil,
			validate: func(t *testing.T, stats []domain.PaymentMethodStat) {
				assert.Nil(t, stats)
			},
		},
		{
			name: "Venda com dois métodos credita os dois no denominador",
			vendas: []*domain.VendaIndividual{
				{MetodoPagamento: "pix"},
				{MetodoPagamento: "pix, cartao_credito"},
				{MetodoPagamento: "boleto"},
			},
			validate: func(t *testing.T, stats []domain.PaymentMethodStat) {
				// 4 ocorrências no total: pix=2, cartao_credito=1, boleto=1
				require.Len(t, stats, 3)

				assert.Equal(t, "pix", stats[0].Metodo)
				assert.Equal(t, "PIX", stats[0].Label)
				assert.Equal(t, 2, stats[0].Count)
				assert.Equal(t, 50, stats[0].Percentage)

				assert.Equal(t, 1, stats[1].Count)
				assert.Equal(t, 25, stats[1].Percentage)
				assert.Equal(t, 1, stats[2].Count)
				assert.Equal(t, 25, stats[2].Percentage)
			},
		},
		{
			name: "Método desconhecido usa o próprio valor como rótulo",
			vendas: []*domain.VendaIndividual{
				{MetodoPagamento: "consorcio"},
			},
			validate: func(t *testing.T, stats []domain.PaymentMethodStat) {
				require.Len(t, stats, 1)
				assert.Equal(t, "consorcio", stats[0].Metodo)
				assert.Equal(t, "consorcio", stats[0].Label)
				assert.Equal(t, 100, stats[0].Percentage)
			},
		},
		{
			name: "Vendas sem método preenchido devem retornar nil",
			vendas: []*domain.VendaIndividual{
				{MetodoPagamento: ""},
				{MetodoPagamento: "  "},
			},
			validate: func(t *testing.T, stats []domain.PaymentMethodStat) {
				assert.Nil(t, stats)
			},
		},
		{
			name: "Percentuais devem ser arredondados para inteiro",
			vendas: []*domain.VendaIndividual{
				{MetodoPagamento: "pix"},
				{MetodoPagamento: "pix"},
				{MetodoPagamento: "boleto"},
			},
			validate: func(t *testing.T, stats []domain.PaymentMethodStat) {
				require.Len(t, stats, 2)
				// 2/3 = 66.67% → 67; 1/3 = 33.33% → 33
				assert.Equal(t, 67, stats[0].Percentage)
				assert.Equal(t, 33, stats[1].Percentage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, paymentMethodStats(tt.vendas))
		})
	}
}

type testDeps struct {
	vendedorRepo *mocks.MockVendedorRepository
	squadRepo    *mocks.MockSquadRepository
	dailyRepo    *mocks.MockDailyEntryRepository
	vendaRepo    *mocks.MockVendaIndividualRepository
}

func newTestDeps(ctrl *gomock.Controller) testDeps {
	return testDeps{
		vendedorRepo: mocks.NewMockVendedorRepository(ctrl),
		squadRepo:    mocks.NewMockSquadRepository(ctrl),
		dailyRepo:    mocks.NewMockDailyEntryRepository(ctrl),
		vendaRepo:    mocks.NewMockVendaIndividualRepository(ctrl),
	}
}
