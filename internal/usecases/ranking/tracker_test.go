package ranking

import (
	"testing"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metricsFor(id string, entrada float64) domain.VendedorMetrics {
	return domain.VendedorMetrics{
		Vendedor:     domain.Vendedor{ID: id, Nome: "Vendedor " + id},
		ValorEntrada: entrada,
	}
}

func TestTracker_Rank(t *testing.T) {
	t.Run("Primeiro ciclo deve ordenar sem posições anteriores", func(t *testing.T) {
		tracker := NewTracker()

		ranked := tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 100),
			metricsFor("VND002", 300),
			metricsFor("VND003", 200),
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "VND002", ranked[0].Vendedor.ID)
		assert.Equal(t, "VND003", ranked[1].Vendedor.ID)
		assert.Equal(t, "VND001", ranked[2].Vendedor.ID)

		for _, m := range ranked {
			assert.Nil(t, m.PosicaoAnterior)
		}
	})

	t.Run("Segundo ciclo deve anotar a posição do ciclo anterior", func(t *testing.T) {
		tracker := NewTracker()

		tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 100),
			metricsFor("VND002", 300),
		})

		// VND001 ultrapassa VND002
		ranked := tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 500),
			metricsFor("VND002", 300),
		})

		require.Len(t, ranked, 2)
		assert.Equal(t, "VND001", ranked[0].Vendedor.ID)
		require.NotNil(t, ranked[0].PosicaoAnterior)
		assert.Equal(t, 2, *ranked[0].PosicaoAnterior)

		assert.Equal(t, "VND002", ranked[1].Vendedor.ID)
		require.NotNil(t, ranked[1].PosicaoAnterior)
		assert.Equal(t, 1, *ranked[1].PosicaoAnterior)
	})

	t.Run("Empates devem preservar a ordem de busca", func(t *testing.T) {
		tracker := NewTracker()

		ranked := tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 200),
			metricsFor("VND002", 200),
			metricsFor("VND003", 200),
		})

		assert.Equal(t, "VND001", ranked[0].Vendedor.ID)
		assert.Equal(t, "VND002", ranked[1].Vendedor.ID)
		assert.Equal(t, "VND003", ranked[2].Vendedor.ID)
	})

	t.Run("Vendedor que saiu do ranking deve ser esquecido", func(t *testing.T) {
		tracker := NewTracker()

		tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 100),
			metricsFor("VND002", 300),
		})

		// VND002 sai; no ciclo seguinte ele volta como novato
		tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 100),
		})

		ranked := tracker.Rank([]domain.VendedorMetrics{
			metricsFor("VND001", 100),
			metricsFor("VND002", 300),
		})

		assert.Equal(t, "VND002", ranked[0].Vendedor.ID)
		assert.Nil(t, ranked[0].PosicaoAnterior)
		require.NotNil(t, ranked[1].PosicaoAnterior)
		assert.Equal(t, 1, *ranked[1].PosicaoAnterior)
	})

	t.Run("Rank não deve alterar o slice de entrada", func(t *testing.T) {
		tracker := NewTracker()

		input := []domain.VendedorMetrics{
			metricsFor("VND001", 100),
			metricsFor("VND002", 300),
		}

		tracker.Rank(input)

		assert.Equal(t, "VND001", input[0].Vendedor.ID)
		assert.Equal(t, "VND002", input[1].Vendedor.ID)
	})
}

func TestSort(t *testing.T) {
	ranked := Sort([]domain.VendedorMetrics{
		metricsFor("VND001", 50),
		metricsFor("VND002", 150),
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "VND002", ranked[0].Vendedor.ID)
	assert.Nil(t, ranked[0].PosicaoAnterior)
}
