package domain

import "time"

// Meta guarda as cinco metas mensais independentes do time.
// Existe no máximo uma linha por mês (mes = primeiro dia do mês).
type Meta struct {
	ID               string    `json:"id"`
	Mes              time.Time `json:"mes"`
	ValorEntradaMeta float64   `json:"valor_entrada_meta"`
	ValorVendasMeta  float64   `json:"valor_vendas_meta"`
	VendasMeta       int       `json:"vendas_meta"`
	CallsMeta        int       `json:"calls_meta"`
	LeadsMeta        int       `json:"leads_meta"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// FirstDayOfMonth normaliza uma data para o primeiro dia do mês, a chave
// natural da tabela de metas
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// LastDayOfMonth retorna o último dia do mês da data informada
func LastDayOfMonth(date time.Time) time.Time {
	return FirstDayOfMonth(date).AddDate(0, 1, -1)
}
