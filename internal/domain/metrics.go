package domain

import "time"

// PaymentMethodStat é a participação de um método de pagamento nas vendas
// de um vendedor no mês. Uma venda com dois métodos credita os dois e conta
// duas ocorrências no denominador.
type PaymentMethodStat struct {
	Metodo     string `json:"metodo"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// VendedorMetrics é o resumo mensal derivado de um vendedor. Nunca é
// persistido; é recalculado por completo a cada ciclo de atualização.
type VendedorMetrics struct {
	Vendedor           Vendedor            `json:"vendedor"`
	TotalVendas        int                 `json:"total_vendas"`
	ValorTotal         float64             `json:"valor_total"`
	ValorEntrada       float64             `json:"valor_entrada"`
	TotalCalls         int                 `json:"total_calls"`
	TotalLeads         int                 `json:"total_leads"`
	VendasCall         int                 `json:"vendas_call"`
	VendasWhatsapp     int                 `json:"vendas_whatsapp"`
	TaxaConversao      float64             `json:"taxa_conversao"`
	PosicaoAnterior    *int                `json:"posicao_anterior,omitempty"`
	PaymentMethodStats []PaymentMethodStat `json:"payment_method_stats,omitempty"`
}

// SquadMetrics agrega as métricas dos integrantes atuais de um squad
type SquadMetrics struct {
	Squad         Squad             `json:"squad"`
	Vendedores    []VendedorMetrics `json:"vendedores"`
	TotalVendas   int               `json:"total_vendas"`
	ValorTotal    float64           `json:"valor_total"`
	ValorEntrada  float64           `json:"valor_entrada"`
	TotalCalls    int               `json:"total_calls"`
	TotalLeads    int               `json:"total_leads"`
	TaxaConversao float64           `json:"taxa_conversao"`
}

// DashboardSnapshot é o resultado completo de um ciclo de atualização,
// servido ao painel público. Em caso de falha de busca o último snapshot
// bom continua sendo servido, com Connected=false e o erro preenchido.
type DashboardSnapshot struct {
	Month      string            `json:"month"` // Formato 2006-01
	Ranking    []VendedorMetrics `json:"ranking"`
	Squads     []SquadMetrics    `json:"squads"`
	Meta       *Meta             `json:"meta,omitempty"`
	LastUpdate time.Time         `json:"last_update"`
	Connected  bool              `json:"connected"`
	Error      string            `json:"error,omitempty"`
}
