package celebrating

import (
	"testing"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relógio controlado pelos testes
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestDetector(displayDuration time.Duration) (*Detector, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)}
	detector := NewDetector(displayDuration)
	detector.now = clock.now
	return detector, clock
}

func metricsFor(id, nome string, entrada float64) domain.VendedorMetrics {
	return domain.VendedorMetrics{
		Vendedor:     domain.Vendedor{ID: id, Nome: nome},
		ValorEntrada: entrada,
	}
}

func TestDetector_Observe(t *testing.T) {
	t.Run("Primeiro ciclo só estabelece a linha de base", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		cycle := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}

		event := detector.Observe(cycle, cycle)

		assert.Nil(t, event)
		assert.Nil(t, detector.Current())
	})

	t.Run("Troca de líder deve emitir evento de primeiro lugar", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		next := []domain.VendedorMetrics{
			metricsFor("VND002", "Bruno", 800),
			metricsFor("VND001", "Ana", 500),
		}
		event := detector.Observe(next, next)

		require.NotNil(t, event)
		assert.Equal(t, "Bruno", event.Nome)
		assert.Equal(t, "🥇 Assumiu o 1º lugar!", event.Mensagem)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("Troca de líder tem prioridade sobre aumento de entrada", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		// Ana também aumentou a entrada, mas a troca de líder vence
		next := []domain.VendedorMetrics{
			metricsFor("VND002", "Bruno", 900),
			metricsFor("VND001", "Ana", 600),
		}
		event := detector.Observe(next, next)

		require.NotNil(t, event)
		assert.Equal(t, "Bruno", event.Nome)
		assert.Equal(t, "🥇 Assumiu o 1º lugar!", event.Mensagem)
	})

	t.Run("Aumento de entrada deve emitir evento com o valor formatado", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		next := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 1534.56),
		}
		event := detector.Observe(next, next)

		require.NotNil(t, event)
		assert.Equal(t, "Bruno", event.Nome)
		assert.Equal(t, "🎯 +R$ 1.234,56 em entrada!", event.Mensagem)
	})

	t.Run("Evento em exibição descarta novas conquistas sem enfileirar", func(t *testing.T) {
		detector, clock := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		second := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 400),
		}
		first := detector.Observe(second, second)
		require.NotNil(t, first)

		// Nova conquista com o overlay ocupado: descartada
		clock.advance(3 * time.Second)
		third := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 700),
		}
		dropped := detector.Observe(third, third)
		assert.Nil(t, dropped)
		assert.Equal(t, first.ID, detector.Current().ID)

		// O snapshot avançou mesmo assim: o aumento descartado não
		// reaparece depois que o overlay libera
		clock.advance(10 * time.Second)
		assert.Nil(t, detector.Current())

		repeat := detector.Observe(third, third)
		assert.Nil(t, repeat)
	})

	t.Run("Evento deve expirar após o tempo de exibição", func(t *testing.T) {
		detector, clock := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
		}
		detector.Observe(base, base)

		next := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 700),
		}
		event := detector.Observe(next, next)
		require.NotNil(t, event)

		clock.advance(9 * time.Second)
		assert.NotNil(t, detector.Current())

		clock.advance(1 * time.Second)
		assert.Nil(t, detector.Current())
	})

	t.Run("Dismiss deve liberar o detector imediatamente", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		next := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 900),
			metricsFor("VND002", "Bruno", 300),
		}
		require.NotNil(t, detector.Observe(next, next))

		detector.Dismiss()
		assert.Nil(t, detector.Current())

		// Overlay livre: a próxima conquista é emitida na hora
		after := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 1000),
			metricsFor("VND002", "Bruno", 300),
		}
		assert.NotNil(t, detector.Observe(after, after))
	})

	t.Run("Vendedor novo no ciclo não conta como aumento de entrada", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
		}
		detector.Observe(base, base)

		next := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 200),
		}
		assert.Nil(t, detector.Observe(next, next))
	})

	t.Run("Ranking vazio não deve emitir evento nem avançar a linha de base", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		assert.Nil(t, detector.Observe(nil, nil))

		// O primeiro ciclo com dados continua sendo só linha de base
		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
		}
		assert.Nil(t, detector.Observe(base, base))
	})

	t.Run("No máximo um evento por ciclo mesmo com vários aumentos", func(t *testing.T) {
		detector, _ := newTestDetector(10 * time.Second)

		base := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 500),
			metricsFor("VND002", "Bruno", 300),
		}
		detector.Observe(base, base)

		// Ambos aumentaram; o primeiro na ordem de busca vence
		next := []domain.VendedorMetrics{
			metricsFor("VND001", "Ana", 600),
			metricsFor("VND002", "Bruno", 400),
		}
		event := detector.Observe(next, next)

		require.NotNil(t, event)
		assert.Equal(t, "Ana", event.Nome)
	})
}
