package domain

import "time"

// CelebrationEvent é o evento de comemoração exibido no painel público.
// O ID é único por evento para forçar a re-renderização do efeito visual
// mesmo quando nome e mensagem se repetem.
type CelebrationEvent struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	FotoURL  *string   `json:"foto_url,omitempty"`
	Mensagem string    `json:"mensagem"`
	CriadoEm time.Time `json:"criado_em"`
}
