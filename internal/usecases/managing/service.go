// Package managing implementa as operações do painel administrativo:
// cadastro de vendedores e squads, lançamentos diários, vendas
// individuais, metas e configuração do sistema
package managing

import (
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
)

type Manager interface {
	ListVendedores() ([]*domain.Vendedor, error)
	GetVendedor(id string) (*domain.Vendedor, error)
	CreateVendedor(vendedor *domain.Vendedor) (*domain.Vendedor, error)
	UpdateVendedor(request *domain.UpdateVendedorRequest) (*domain.Vendedor, error)
	DeleteVendedor(id string) error
	AssignSquad(vendedorID string, squadID *string) error

	ListSquads() ([]*domain.Squad, error)
	CreateSquad(squad *domain.Squad) (*domain.Squad, error)
	UpdateSquad(squad *domain.Squad) (*domain.Squad, error)
	DeleteSquad(id string) error

	DailyEntriesByMonth(month time.Time) ([]*domain.DailyEntry, error)
	UpsertDailyEntry(request *domain.UpsertDailyEntryRequest) (*domain.DailyEntry, error)
	DeleteDailyEntry(id string) error

	VendasByMonth(month time.Time) ([]*domain.VendaIndividual, error)
	CreateVenda(venda *domain.VendaIndividual) (*domain.VendaIndividual, error)
	UpdateVenda(venda *domain.VendaIndividual) error
	DeleteVenda(id string) error

	MetaByMonth(month time.Time) (*domain.Meta, error)
	SaveMeta(meta *domain.Meta) (*domain.Meta, error)

	GetSystemConfig() (*domain.SystemConfig, error)
	SaveSystemConfig(config *domain.SystemConfig) (*domain.SystemConfig, error)
}

type Service struct {
	vendedorRepo repository.VendedorRepository
	squadRepo    repository.SquadRepository
	dailyRepo    repository.DailyEntryRepository
	vendaRepo    repository.VendaIndividualRepository
	metaRepo     repository.MetaRepository
	configRepo   repository.SystemConfigRepository
}

func NewService(
	vendedorRepo repository.VendedorRepository,
	squadRepo repository.SquadRepository,
	dailyRepo repository.DailyEntryRepository,
	vendaRepo repository.VendaIndividualRepository,
	metaRepo repository.MetaRepository,
	configRepo repository.SystemConfigRepository,
) Manager {
	return &Service{
		vendedorRepo: vendedorRepo,
		squadRepo:    squadRepo,
		dailyRepo:    dailyRepo,
		vendaRepo:    vendaRepo,
		metaRepo:     metaRepo,
		configRepo:   configRepo,
	}
}

func (s *Service) ListVendedores() ([]*domain.Vendedor, error) {
	return s.vendedorRepo.ListVendedores()
}

func (s *Service) GetVendedor(id string) (*domain.Vendedor, error) {
	if id == "" {
		return nil, ErrIDObrigatorio
	}
	return s.vendedorRepo.GetVendedorByID(id)
}

func (s *Service) CreateVendedor(vendedor *domain.Vendedor) (*domain.Vendedor, error) {
	if vendedor.Nome == "" {
		return nil, ErrNomeObrigatorio
	}

	if vendedor.Cargo == "" {
		vendedor.Cargo = domain.CargoPadrao
	}

	if vendedor.SquadID != nil {
		if err := s.verificaSquad(*vendedor.SquadID); err != nil {
			return nil, err
		}
	}

	return s.vendedorRepo.CreateVendedor(vendedor)
}

// UpdateVendedor aplica apenas os campos presentes na requisição
func (s *Service) UpdateVendedor(request *domain.UpdateVendedorRequest) (*domain.Vendedor, error) {
	if request.ID == "" {
		return nil, ErrIDObrigatorio
	}

	vendedor, err := s.vendedorRepo.GetVendedorByID(request.ID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, ErrVendedorNaoEncontrado
	}

	if request.Nome != nil && *request.Nome != "" {
		vendedor.Nome = *request.Nome
	}

	if request.Cargo != nil {
		vendedor.Cargo = *request.Cargo
		if vendedor.Cargo == "" {
			vendedor.Cargo = domain.CargoPadrao
		}
	}

	if request.FotoURL != nil {
		vendedor.FotoURL = request.FotoURL
	}

	if request.SquadID != nil {
		if *request.SquadID == "" {
			vendedor.SquadID = nil
		} else {
			if err := s.verificaSquad(*request.SquadID); err != nil {
				return nil, err
			}
			vendedor.SquadID = request.SquadID
		}
	}

	if err := s.vendedorRepo.UpdateVendedor(vendedor); err != nil {
		return nil, err
	}

	return vendedor, nil
}

func (s *Service) DeleteVendedor(id string) error {
	if id == "" {
		return ErrIDObrigatorio
	}
	return s.vendedorRepo.DeleteVendedor(id)
}

// AssignSquad move o vendedor para o squad informado; squadID nil tira o
// vendedor de qualquer squad
func (s *Service) AssignSquad(vendedorID string, squadID *string) error {
	if vendedorID == "" {
		return ErrIDObrigatorio
	}

	vendedor, err := s.vendedorRepo.GetVendedorByID(vendedorID)
	if err != nil {
		return err
	}
	if vendedor == nil {
		return ErrVendedorNaoEncontrado
	}

	if squadID != nil {
		if err := s.verificaSquad(*squadID); err != nil {
			return err
		}
	}

	return s.vendedorRepo.AssignSquad(vendedorID, squadID)
}

func (s *Service) ListSquads() ([]*domain.Squad, error) {
	return s.squadRepo.ListSquads()
}

func (s *Service) CreateSquad(squad *domain.Squad) (*domain.Squad, error) {
	if squad.Nome == "" {
		return nil, ErrNomeObrigatorio
	}

	if squad.Cor == "" {
		squad.Cor = domain.CorPadraoSquad
	}

	return s.squadRepo.CreateSquad(squad)
}

func (s *Service) UpdateSquad(squad *domain.Squad) (*domain.Squad, error) {
	if squad.ID == "" {
		return nil, ErrIDObrigatorio
	}

	existente, err := s.squadRepo.GetSquadByID(squad.ID)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, ErrSquadNaoEncontrado
	}

	if squad.Nome == "" {
		squad.Nome = existente.Nome
	}
	if squad.Cor == "" {
		squad.Cor = existente.Cor
	}
	if squad.FotoURL == nil {
		squad.FotoURL = existente.FotoURL
	}

	if err := s.squadRepo.UpdateSquad(squad); err != nil {
		return nil, err
	}

	return squad, nil
}

// DeleteSquad remove o squad depois de desvincular os integrantes, para
// não deixar vendedor apontando para squad inexistente
func (s *Service) DeleteSquad(id string) error {
	if id == "" {
		return ErrIDObrigatorio
	}

	if err := s.vendedorRepo.ClearSquad(id); err != nil {
		return err
	}

	return s.squadRepo.DeleteSquad(id)
}

func (s *Service) DailyEntriesByMonth(month time.Time) ([]*domain.DailyEntry, error) {
	return s.dailyRepo.GetByDateRange(domain.FirstDayOfMonth(month), domain.LastDayOfMonth(month))
}

func (s *Service) UpsertDailyEntry(request *domain.UpsertDailyEntryRequest) (*domain.DailyEntry, error) {
	if request.VendedorID == "" {
		return nil, ErrIDObrigatorio
	}

	data, err := utils.ParseDate(request.Data)
	if err != nil || data.IsZero() {
		return nil, ErrDataInvalida
	}

	if request.Calls < 0 || request.LeadsAtendidos < 0 {
		return nil, ErrContagemNegativa
	}

	vendedor, err := s.vendedorRepo.GetVendedorByID(request.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, ErrVendedorNaoEncontrado
	}

	return s.dailyRepo.UpsertDailyEntry(&domain.DailyEntry{
		VendedorID:     request.VendedorID,
		Data:           *data,
		Calls:          request.Calls,
		LeadsAtendidos: request.LeadsAtendidos,
	})
}

func (s *Service) DeleteDailyEntry(id string) error {
	if id == "" {
		return ErrIDObrigatorio
	}
	return s.dailyRepo.DeleteDailyEntry(id)
}

func (s *Service) VendasByMonth(month time.Time) ([]*domain.VendaIndividual, error) {
	return s.vendaRepo.GetByDateRange(domain.FirstDayOfMonth(month), domain.LastDayOfMonth(month))
}

func (s *Service) CreateVenda(venda *domain.VendaIndividual) (*domain.VendaIndividual, error) {
	if venda.VendedorID == "" {
		return nil, ErrIDObrigatorio
	}

	if venda.TipoVenda != domain.TipoVendaCall && venda.TipoVenda != domain.TipoVendaLead {
		return nil, ErrTipoVendaInvalido
	}

	vendedor, err := s.vendedorRepo.GetVendedorByID(venda.VendedorID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, ErrVendedorNaoEncontrado
	}

	if venda.Data.IsZero() {
		venda.Data = time.Now()
	}

	return s.vendaRepo.CreateVenda(venda)
}

func (s *Service) UpdateVenda(venda *domain.VendaIndividual) error {
	if venda.ID == "" {
		return ErrIDObrigatorio
	}

	if venda.TipoVenda != "" && venda.TipoVenda != domain.TipoVendaCall && venda.TipoVenda != domain.TipoVendaLead {
		return ErrTipoVendaInvalido
	}

	return s.vendaRepo.UpdateVenda(venda)
}

func (s *Service) DeleteVenda(id string) error {
	if id == "" {
		return ErrIDObrigatorio
	}
	return s.vendaRepo.DeleteVenda(id)
}

func (s *Service) MetaByMonth(month time.Time) (*domain.Meta, error) {
	return s.metaRepo.GetMetaByMonth(month)
}

func (s *Service) SaveMeta(meta *domain.Meta) (*domain.Meta, error) {
	if meta.Mes.IsZero() {
		return nil, ErrDataInvalida
	}

	if meta.ValorEntradaMeta < 0 || meta.ValorVendasMeta < 0 ||
		meta.VendasMeta < 0 || meta.CallsMeta < 0 || meta.LeadsMeta < 0 {
		return nil, ErrContagemNegativa
	}

	return s.metaRepo.SaveOrUpdateMeta(meta)
}

// GetSystemConfig retorna a configuração gravada ou a padrão quando o
// banco ainda não tem registro
func (s *Service) GetSystemConfig() (*domain.SystemConfig, error) {
	config, err := s.configRepo.GetSystemConfig()
	if err != nil {
		return nil, err
	}

	if config == nil {
		padrao := domain.DefaultSystemConfig()
		return &padrao, nil
	}

	return config, nil
}

func (s *Service) SaveSystemConfig(config *domain.SystemConfig) (*domain.SystemConfig, error) {
	padrao := domain.DefaultSystemConfig()

	if config.NomeSistema == "" {
		config.NomeSistema = padrao.NomeSistema
	}
	if config.CorPrimaria == "" {
		config.CorPrimaria = padrao.CorPrimaria
	}
	if config.CorSecundaria == "" {
		config.CorSecundaria = padrao.CorSecundaria
	}

	return s.configRepo.SaveSystemConfig(config)
}

func (s *Service) verificaSquad(squadID string) error {
	squad, err := s.squadRepo.GetSquadByID(squadID)
	if err != nil {
		return err
	}
	if squad == nil {
		return ErrSquadNaoEncontrado
	}
	return nil
}
