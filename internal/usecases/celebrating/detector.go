// Package celebrating detecta conquistas entre ciclos de agregação e
// controla a exibição do overlay de comemoração no telão
package celebrating

import (
	"fmt"
	"sync"
	"time"

	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
)

// Detector compara cada agregação com a anterior e emite no máximo um
// evento por ciclo. Enquanto um evento está em exibição, novas conquistas
// são descartadas, não enfileiradas: numa sala de vendas o telão mostra
// sempre a conquista mais recente elegível, nunca uma fila atrasada.
type Detector struct {
	mutex           sync.Mutex
	displayDuration time.Duration

	current  *domain.CelebrationEvent
	shownAt  time.Time
	leaderID string
	entradas map[string]float64
	primed   bool

	now func() time.Time
}

func NewDetector(displayDuration time.Duration) *Detector {
	return &Detector{
		displayDuration: displayDuration,
		entradas:        make(map[string]float64),
		now:             time.Now,
	}
}

// Observe recebe o ranking recém-calculado e a mesma agregação na ordem
// de busca. Troca de líder tem prioridade sobre aumento de valor de
// entrada; detectada uma conquista, o restante do ciclo não é examinado.
// Retorna o evento emitido, ou nil quando nada foi detectado ou o overlay
// ainda está ocupado.
func (d *Detector) Observe(ranked, fetchOrder []domain.VendedorMetrics) *domain.CelebrationEvent {
	if len(ranked) == 0 {
		return nil
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.expireLocked()

	leader := ranked[0]
	event := d.detectLocked(leader, fetchOrder)

	// O snapshot avança mesmo quando o evento é descartado: a conquista
	// perdida não reaparece no ciclo seguinte
	d.leaderID = leader.Vendedor.ID
	entradas := make(map[string]float64, len(fetchOrder))
	for _, m := range fetchOrder {
		entradas[m.Vendedor.ID] = m.ValorEntrada
	}
	d.entradas = entradas
	d.primed = true

	if event == nil {
		return nil
	}

	if d.current != nil {
		return nil
	}

	d.current = event
	d.shownAt = d.now()

	return event
}

func (d *Detector) detectLocked(leader domain.VendedorMetrics, fetchOrder []domain.VendedorMetrics) *domain.CelebrationEvent {
	// O primeiro ciclo após subir o serviço só estabelece a linha de base
	if !d.primed {
		return nil
	}

	if leader.Vendedor.ID != d.leaderID {
		return d.newEventLocked(leader.Vendedor, "🥇 Assumiu o 1º lugar!")
	}

	for _, m := range fetchOrder {
		anterior, conhecido := d.entradas[m.Vendedor.ID]
		if !conhecido || m.ValorEntrada <= anterior {
			continue
		}

		mensagem := fmt.Sprintf("🎯 +%s em entrada!", utils.FormatBRL(m.ValorEntrada-anterior))
		return d.newEventLocked(m.Vendedor, mensagem)
	}

	return nil
}

func (d *Detector) newEventLocked(vendedor domain.Vendedor, mensagem string) *domain.CelebrationEvent {
	id, err := utils.GenerateID()
	if err != nil {
		id = fmt.Sprintf("evt-%d", d.now().UnixNano())
	}

	return &domain.CelebrationEvent{
		ID:       id,
		Nome:     vendedor.Nome,
		FotoURL:  vendedor.FotoURL,
		Mensagem: mensagem,
		CriadoEm: d.now(),
	}
}

// Current retorna o evento em exibição, ou nil quando o overlay está
// ocioso ou o tempo de exibição expirou
func (d *Detector) Current() *domain.CelebrationEvent {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.expireLocked()

	return d.current
}

// Dismiss encerra a exibição imediatamente, liberando o detector para a
// próxima conquista
func (d *Detector) Dismiss() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.current = nil
}

func (d *Detector) expireLocked() {
	if d.current == nil {
		return
	}

	if d.now().Sub(d.shownAt) >= d.displayDuration {
		d.current = nil
	}
}
