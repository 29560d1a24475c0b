package managing

import (
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	vendedorRepo *mocks.MockVendedorRepository
	squadRepo    *mocks.MockSquadRepository
	dailyRepo    *mocks.MockDailyEntryRepository
	vendaRepo    *mocks.MockVendaIndividualRepository
	metaRepo     *mocks.MockMetaRepository
	configRepo   *mocks.MockSystemConfigRepository
}

func newTestService(ctrl *gomock.Controller) (Manager, testDeps) {
	deps := testDeps{
		vendedorRepo: mocks.NewMockVendedorRepository(ctrl),
		squadRepo:    mocks.NewMockSquadRepository(ctrl),
		dailyRepo:    mocks.NewMockDailyEntryRepository(ctrl),
		vendaRepo:    mocks.NewMockVendaIndividualRepository(ctrl),
		metaRepo:     mocks.NewMockMetaRepository(ctrl),
		configRepo:   mocks.NewMockSystemConfigRepository(ctrl),
	}

	service := NewService(
		deps.vendedorRepo,
		deps.squadRepo,
		deps.dailyRepo,
		deps.vendaRepo,
		deps.metaRepo,
		deps.configRepo,
	)

	return service, deps
}

func TestService_CreateVendedor(t *testing.T) {
	t.Run("Nome é obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, _ := newTestService(ctrl)

		_, err := service.CreateVendedor(&domain.Vendedor{})
		assert.ErrorIs(t, err, ErrNomeObrigatorio)
	})

	t.Run("Cargo vazio recebe o padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.vendedorRepo.EXPECT().
			CreateVendedor(gomock.Any()).
			DoAndReturn(func(v *domain.Vendedor) (*domain.Vendedor, error) {
				assert.Equal(t, domain.CargoPadrao, v.Cargo)
				return v, nil
			})

		_, err := service.CreateVendedor(&domain.Vendedor{Nome: "Ana Souza"})
		assert.NoError(t, err)
	})

	t.Run("Squad informado precisa existir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		squadID := "SQ404"
		deps.squadRepo.EXPECT().GetSquadByID("SQ404").Return(nil, nil)

		_, err := service.CreateVendedor(&domain.Vendedor{Nome: "Ana", SquadID: &squadID})
		assert.ErrorIs(t, err, ErrSquadNaoEncontrado)
	})
}

func TestService_UpdateVendedor(t *testing.T) {
	t.Run("Aplica apenas os campos presentes na requisição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		squadAtual := "SQ001"
		deps.vendedorRepo.EXPECT().
			GetVendedorByID("VND001").
			Return(&domain.Vendedor{ID: "VND001", Nome: "Ana", Cargo: "Closer", SquadID: &squadAtual}, nil)

		novoNome := "Ana Souza"
		deps.vendedorRepo.EXPECT().
			UpdateVendedor(gomock.Any()).
			DoAndReturn(func(v *domain.Vendedor) error {
				assert.Equal(t, "Ana Souza", v.Nome)
				assert.Equal(t, "Closer", v.Cargo) // Não alterado
				require.NotNil(t, v.SquadID)       // Não alterado
				return nil
			})

		atualizado, err := service.UpdateVendedor(&domain.UpdateVendedorRequest{
			ID:   "VND001",
			Nome: &novoNome,
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", atualizado.Nome)
	})

	t.Run("SquadID vazio desvincula o vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		squadAtual := "SQ001"
		deps.vendedorRepo.EXPECT().
			GetVendedorByID("VND001").
			Return(&domain.Vendedor{ID: "VND001", Nome: "Ana", SquadID: &squadAtual}, nil)

		vazio := ""
		deps.vendedorRepo.EXPECT().
			UpdateVendedor(gomock.Any()).
			DoAndReturn(func(v *domain.Vendedor) error {
				assert.Nil(t, v.SquadID)
				return nil
			})

		_, err := service.UpdateVendedor(&domain.UpdateVendedorRequest{
			ID:      "VND001",
			SquadID: &vazio,
		})
		assert.NoError(t, err)
	})

	t.Run("Vendedor inexistente retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.vendedorRepo.EXPECT().GetVendedorByID("VND404").Return(nil, nil)

		_, err := service.UpdateVendedor(&domain.UpdateVendedorRequest{ID: "VND404"})
		assert.ErrorIs(t, err, ErrVendedorNaoEncontrado)
	})
}

func TestService_DeleteSquad(t *testing.T) {
	t.Run("Deve desvincular os integrantes antes de remover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		gomock.InOrder(
			deps.vendedorRepo.EXPECT().ClearSquad("SQ001").Return(nil),
			deps.squadRepo.EXPECT().DeleteSquad("SQ001").Return(nil),
		)

		assert.NoError(t, service.DeleteSquad("SQ001"))
	})

	t.Run("Falha ao desvincular não remove o squad", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.vendedorRepo.EXPECT().ClearSquad("SQ001").Return(assert.AnError)

		assert.Error(t, service.DeleteSquad("SQ001"))
	})
}

func TestService_UpsertDailyEntry(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.UpsertDailyEntryRequest
		setup       func(deps testDeps)
		expectedErr error
	}{
		{
			name:        "Vendedor é obrigatório",
			request:     &domain.UpsertDailyEntryRequest{Data: "2026-08-10"},
			setup:       func(deps testDeps) {},
			expectedErr: ErrIDObrigatorio,
		},
		{
			name:        "Data ilegível é rejeitada",
			request:     &domain.UpsertDailyEntryRequest{VendedorID: "VND001", Data: "10/08/2026"},
			setup:       func(deps testDeps) {},
			expectedErr: ErrDataInvalida,
		},
		{
			name:        "Data vazia é rejeitada",
			request:     &domain.UpsertDailyEntryRequest{VendedorID: "VND001"},
			setup:       func(deps testDeps) {},
			expectedErr: ErrDataInvalida,
		},
		{
			name:        "Contagens negativas são rejeitadas",
			request:     &domain.UpsertDailyEntryRequest{VendedorID: "VND001", Data: "2026-08-10", Calls: -1},
			setup:       func(deps testDeps) {},
			expectedErr: ErrContagemNegativa,
		},
		{
			name:    "Vendedor precisa existir",
			request: &domain.UpsertDailyEntryRequest{VendedorID: "VND404", Data: "2026-08-10"},
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().GetVendedorByID("VND404").Return(nil, nil)
			},
			expectedErr: ErrVendedorNaoEncontrado,
		},
		{
			name:    "Lançamento válido é gravado",
			request: &domain.UpsertDailyEntryRequest{VendedorID: "VND001", Data: "2026-08-10", Calls: 12, LeadsAtendidos: 5},
			setup: func(deps testDeps) {
				deps.vendedorRepo.EXPECT().GetVendedorByID("VND001").Return(&domain.Vendedor{ID: "VND001"}, nil)
				deps.dailyRepo.EXPECT().
					UpsertDailyEntry(gomock.Any()).
					DoAndReturn(func(entry *domain.DailyEntry) (*domain.DailyEntry, error) {
						assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), entry.Data)
						assert.Equal(t, 12, entry.Calls)
						return entry, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			service, deps := newTestService(ctrl)

			tt.setup(deps)

			_, err := service.UpsertDailyEntry(tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_CreateVenda(t *testing.T) {
	t.Run("Tipo de venda precisa ser call ou lead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, _ := newTestService(ctrl)

		_, err := service.CreateVenda(&domain.VendaIndividual{VendedorID: "VND001", TipoVenda: "presencial"})
		assert.ErrorIs(t, err, ErrTipoVendaInvalido)
	})

	t.Run("Data vazia vira a data atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.vendedorRepo.EXPECT().GetVendedorByID("VND001").Return(&domain.Vendedor{ID: "VND001"}, nil)
		deps.vendaRepo.EXPECT().
			CreateVenda(gomock.Any()).
			DoAndReturn(func(venda *domain.VendaIndividual) (*domain.VendaIndividual, error) {
				assert.False(t, venda.Data.IsZero())
				return venda, nil
			})

		_, err := service.CreateVenda(&domain.VendaIndividual{
			VendedorID:   "VND001",
			TipoVenda:    domain.TipoVendaCall,
			ValorEntrada: "500,00",
		})
		assert.NoError(t, err)
	})
}

func TestService_SaveMeta(t *testing.T) {
	t.Run("Mês é obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, _ := newTestService(ctrl)

		_, err := service.SaveMeta(&domain.Meta{})
		assert.ErrorIs(t, err, ErrDataInvalida)
	})

	t.Run("Metas negativas são rejeitadas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, _ := newTestService(ctrl)

		_, err := service.SaveMeta(&domain.Meta{
			Mes:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			ValorEntradaMeta: -1,
		})
		assert.ErrorIs(t, err, ErrContagemNegativa)
	})

	t.Run("Meta válida é gravada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		meta := &domain.Meta{
			Mes:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			ValorEntradaMeta: 50000,
			VendasMeta:       30,
		}
		deps.metaRepo.EXPECT().SaveOrUpdateMeta(meta).Return(meta, nil)

		saved, err := service.SaveMeta(meta)
		require.NoError(t, err)
		assert.Equal(t, meta, saved)
	})
}

func TestService_SystemConfig(t *testing.T) {
	t.Run("Sem registro no banco retorna a configuração padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.configRepo.EXPECT().GetSystemConfig().Return(nil, nil)

		config, err := service.GetSystemConfig()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSystemConfig().NomeSistema, config.NomeSistema)
	})

	t.Run("Campos vazios no save recebem os padrões", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		service, deps := newTestService(ctrl)

		deps.configRepo.EXPECT().
			SaveSystemConfig(gomock.Any()).
			DoAndReturn(func(config *domain.SystemConfig) (*domain.SystemConfig, error) {
				padrao := domain.DefaultSystemConfig()
				assert.Equal(t, "Painel Custom", config.NomeSistema)
				assert.Equal(t, padrao.CorPrimaria, config.CorPrimaria)
				assert.Equal(t, padrao.CorSecundaria, config.CorSecundaria)
				return config, nil
			})

		_, err := service.SaveSystemConfig(&domain.SystemConfig{NomeSistema: "Painel Custom"})
		assert.NoError(t, err)
	})
}
