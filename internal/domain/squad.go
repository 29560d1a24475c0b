package domain

import "time"

// CorPadraoSquad é a cor usada quando o cadastro do squad não define uma
const CorPadraoSquad = "#3B82F6"

type Squad struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Cor       string    `json:"cor"`
	FotoURL   *string   `json:"foto_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
