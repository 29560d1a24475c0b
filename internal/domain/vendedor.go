// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// CargoPadrao é o cargo atribuído quando o cadastro não informa um
const CargoPadrao = "Vendedor(a)"

type Vendedor struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cargo     string    `json:"cargo"`
	FotoURL   *string   `json:"foto_url,omitempty"`
	SquadID   *string   `json:"squad_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateVendedorRequest struct {
	ID      string  `json:"id"`
	Nome    *string `json:"nome"`
	Cargo   *string `json:"cargo"`
	FotoURL *string `json:"foto_url"`
	SquadID *string `json:"squad_id"`
}
