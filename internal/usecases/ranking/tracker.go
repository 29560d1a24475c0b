// Package ranking ordena as métricas mensais e anota a movimentação de
// posição entre ciclos consecutivos de agregação
package ranking

import (
	"sort"
	"sync"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
)

// Sort ordena as métricas por valor de entrada decrescente sem anotar
// tendência nem tocar no snapshot. Usado para consultas de meses
// passados, que não participam do ciclo ao vivo.
func Sort(metrics []domain.VendedorMetrics) []domain.VendedorMetrics {
	ranked := make([]domain.VendedorMetrics, len(metrics))
	copy(ranked, metrics)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValorEntrada > ranked[j].ValorEntrada
	})

	return ranked
}

// Tracker guarda em memória o snapshot de posições do ciclo anterior.
// O histórico não sobrevive a reinício do processo: o primeiro ciclo após
// subir o serviço sai sem setas de tendência.
type Tracker struct {
	mutex     sync.Mutex
	positions map[string]int
}

func NewTracker() *Tracker {
	return &Tracker{
		positions: make(map[string]int),
	}
}

// Rank ordena as métricas por valor de entrada decrescente com ordenação
// estável (empates preservam a ordem de busca), preenche a posição do
// ciclo anterior de quem já aparecia no snapshot e substitui o snapshot
// por inteiro. Vendedores que saíram do ranking são esquecidos.
func (t *Tracker) Rank(metrics []domain.VendedorMetrics) []domain.VendedorMetrics {
	ranked := make([]domain.VendedorMetrics, len(metrics))
	copy(ranked, metrics)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ValorEntrada > ranked[j].ValorEntrada
	})

	t.mutex.Lock()
	defer t.mutex.Unlock()

	current := make(map[string]int, len(ranked))
	for i := range ranked {
		position := i + 1
		if previous, ok := t.positions[ranked[i].Vendedor.ID]; ok {
			anterior := previous
			ranked[i].PosicaoAnterior = &anterior
		}
		current[ranked[i].Vendedor.ID] = position
	}

	t.positions = current

	return ranked
}
