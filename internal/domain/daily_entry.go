package domain

import "time"

// DailyEntry representa o lançamento diário de atividade de um vendedor.
// Existe no máximo uma linha por (vendedor, data): o upsert usa essa chave.
type DailyEntry struct {
	ID             string    `json:"id"`
	VendedorID     string    `json:"vendedor_id"`
	Data           time.Time `json:"data"`
	Calls          int       `json:"calls"`
	LeadsAtendidos int       `json:"leads_atendidos"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpsertDailyEntryRequest struct {
	VendedorID     string `json:"vendedor_id"`
	Data           string `json:"data"` // Formato 2006-01-02
	Calls          int    `json:"calls"`
	LeadsAtendidos int    `json:"leads_atendidos"`
}
