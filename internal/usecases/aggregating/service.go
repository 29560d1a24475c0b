// Package aggregating calcula os resumos mensais de métricas por vendedor
// e por squad a partir dos dados persistidos
package aggregating

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
)

// MonthlyAggregate é o resultado de um ciclo de agregação. Vendedores
// preserva a ordem de busca (o ranking é responsabilidade do tracker);
// Squads já sai ordenado por valor de entrada decrescente.
type MonthlyAggregate struct {
	Vendedores []domain.VendedorMetrics
	Squads     []domain.SquadMetrics
}

type Aggregator interface {
	AggregateMonth(month time.Time) (*MonthlyAggregate, error)
}

type Service struct {
	vendedorRepo repository.VendedorRepository
	squadRepo    repository.SquadRepository
	dailyRepo    repository.DailyEntryRepository
	vendaRepo    repository.VendaIndividualRepository
}

func NewService(
	vendedorRepo repository.VendedorRepository,
	squadRepo repository.SquadRepository,
	dailyRepo repository.DailyEntryRepository,
	vendaRepo repository.VendaIndividualRepository,
) Aggregator {
	return &Service{
		vendedorRepo: vendedorRepo,
		squadRepo:    squadRepo,
		dailyRepo:    dailyRepo,
		vendaRepo:    vendaRepo,
	}
}

// AggregateMonth busca vendedores, squads, lançamentos diários e vendas
// individuais do mês informado e produz os resumos derivados. Qualquer
// falha de busca aborta o ciclo inteiro: resultado parcial não é agregado.
func (s *Service) AggregateMonth(month time.Time) (*MonthlyAggregate, error) {
	startDate := domain.FirstDayOfMonth(month)
	endDate := domain.LastDayOfMonth(month)

	var (
		vendedores []*domain.Vendedor
		squads     []*domain.Squad
		entries    []*domain.DailyEntry
		vendas     []*domain.VendaIndividual

		vendedoresErr error
		squadsErr     error
		entriesErr    error
		vendasErr     error
	)

	// As quatro buscas não dependem entre si, mas todas precisam concluir
	// antes da agregação começar
	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		vendedores, vendedoresErr = s.vendedorRepo.ListVendedores()
	}()

	go func() {
		defer wg.Done()
		squads, squadsErr = s.squadRepo.ListSquads()
	}()

	go func() {
		defer wg.Done()
		entries, entriesErr = s.dailyRepo.GetByDateRange(startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		vendas, vendasErr = s.vendaRepo.GetByDateRange(startDate, endDate)
	}()

	wg.Wait()

	for _, err := range []error{vendedoresErr, squadsErr, entriesErr, vendasErr} {
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar dados para agregação: %w", err)
		}
	}

	metrics := make([]domain.VendedorMetrics, 0, len(vendedores))
	for _, vendedor := range vendedores {
		metrics = append(metrics, s.aggregateVendedor(*vendedor, entries, vendas))
	}

	return &MonthlyAggregate{
		Vendedores: metrics,
		Squads:     s.aggregateSquads(squads, metrics),
	}, nil
}

func (s *Service) aggregateVendedor(
	vendedor domain.Vendedor,
	entries []*domain.DailyEntry,
	vendas []*domain.VendaIndividual,
) domain.VendedorMetrics {
	m := domain.VendedorMetrics{Vendedor: vendedor}

	for _, entry := range entries {
		if entry.VendedorID != vendedor.ID {
			continue
		}
		m.TotalCalls += entry.Calls
		m.TotalLeads += entry.LeadsAtendidos
	}

	vendasVendedor := make([]*domain.VendaIndividual, 0)
	for _, venda := range vendas {
		if venda.VendedorID != vendedor.ID {
			continue
		}
		vendasVendedor = append(vendasVendedor, venda)

		switch venda.TipoVenda {
		case domain.TipoVendaCall:
			m.VendasCall++
		case domain.TipoVendaLead:
			m.VendasWhatsapp++
		}

		m.ValorTotal += utils.ParseDecimal(venda.ValorVenda)
		m.ValorEntrada += utils.ParseDecimal(venda.ValorEntrada)
	}

	m.TotalVendas = m.VendasCall + m.VendasWhatsapp
	m.TaxaConversao = conversao(m.TotalVendas, m.TotalLeads)
	m.PaymentMethodStats = paymentMethodStats(vendasVendedor)

	return m
}

// aggregateSquads soma as métricas dos integrantes atuais de cada squad.
// Squads sem integrantes ficam fora da saída, mesmo com histórico de
// vendas, e a lista sai ordenada por valor de entrada decrescente.
func (s *Service) aggregateSquads(squads []*domain.Squad, metrics []domain.VendedorMetrics) []domain.SquadMetrics {
	squadMetrics := make([]domain.SquadMetrics, 0, len(squads))

	for _, squad := range squads {
		sm := domain.SquadMetrics{
			Squad:      *squad,
			Vendedores: make([]domain.VendedorMetrics, 0),
		}

		for _, m := range metrics {
			if m.Vendedor.SquadID == nil || *m.Vendedor.SquadID != squad.ID {
				continue
			}

			sm.Vendedores = append(sm.Vendedores, m)
			sm.TotalVendas += m.TotalVendas
			sm.ValorTotal += m.ValorTotal
			sm.ValorEntrada += m.ValorEntrada
			sm.TotalCalls += m.TotalCalls
			sm.TotalLeads += m.TotalLeads
		}

		if len(sm.Vendedores) == 0 {
			continue
		}

		sm.TaxaConversao = conversao(sm.TotalVendas, sm.TotalLeads)
		squadMetrics = append(squadMetrics, sm)
	}

	sort.SliceStable(squadMetrics, func(i, j int) bool {
		return squadMetrics[i].ValorEntrada > squadMetrics[j].ValorEntrada
	})

	return squadMetrics
}

// conversao retorna vendas/leads em percentual, com zero leads valendo 0
func conversao(vendas, leads int) float64 {
	if leads == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(vendas) / float64(leads) * 100)
}

// paymentMethodStats conta as ocorrências de cada método de pagamento nas
// vendas do período. Uma venda com dois métodos credita os dois e ambos
// entram no denominador; o percentual é arredondado para inteiro e a lista
// sai ordenada por contagem decrescente.
func paymentMethodStats(vendas []*domain.VendaIndividual) []domain.PaymentMethodStat {
	if len(vendas) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	total := 0

	for _, venda := range vendas {
		for _, metodo := range venda.MetodosPagamento() {
			if _, seen := counts[metodo]; !seen {
				order = append(order, metodo)
			}
			counts[metodo]++
			total++
		}
	}

	if total == 0 {
		return nil
	}

	stats := make([]domain.PaymentMethodStat, 0, len(counts))
	for _, metodo := range order {
		count := counts[metodo]
		stats = append(stats, domain.PaymentMethodStat{
			Metodo:     metodo,
			Label:      domain.MetodoPagamentoLabel(metodo),
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}
