package domain

import (
	"strings"
	"time"
)

// Canais de origem da venda
const (
	TipoVendaCall = "call"
	TipoVendaLead = "lead"
)

// MetodoPagamentoDelimiter separa múltiplos métodos registrados em uma venda
const MetodoPagamentoDelimiter = ","

// VendaIndividual representa uma venda registrada individualmente.
// Os valores monetários são mantidos como string para tolerar formatos
// regionais vindos do painel administrativo; a conversão acontece na
// agregação e nunca falha (valores ilegíveis contam como zero).
type VendaIndividual struct {
	ID              string    `json:"id"`
	VendedorID      string    `json:"vendedor_id"`
	Data            time.Time `json:"data"`
	ValorVenda      string    `json:"valor_venda"`
	ValorEntrada    string    `json:"valor_entrada"`
	MetodoPagamento string    `json:"metodo_pagamento"`
	TipoVenda       string    `json:"tipo_venda"`
	CreatedAt       time.Time `json:"created_at"`
}

// MetodosPagamento divide o campo metodo_pagamento nos métodos individuais
func (v VendaIndividual) MetodosPagamento() []string {
	parts := strings.Split(v.MetodoPagamento, MetodoPagamentoDelimiter)
	metodos := make([]string, 0, len(parts))
	for _, p := range parts {
		if m := strings.TrimSpace(p); m != "" {
			metodos = append(metodos, m)
		}
	}
	return metodos
}

// MetodoPagamentoOption é uma opção de método de pagamento aceita pelo painel
type MetodoPagamentoOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var MetodosPagamentoDisponiveis = []MetodoPagamentoOption{
	{Value: "pix", Label: "PIX"},
	{Value: "cartao_credito", Label: "Cartão de Crédito"},
	{Value: "cartao_debito", Label: "Cartão de Débito"},
	{Value: "boleto", Label: "Boleto"},
	{Value: "dinheiro", Label: "Dinheiro"},
	{Value: "transferencia", Label: "Transferência"},
}

// MetodoPagamentoLabel retorna o rótulo de exibição de um método; métodos
// desconhecidos são exibidos pelo próprio valor
func MetodoPagamentoLabel(value string) string {
	for _, m := range MetodosPagamentoDisponiveis {
		if m.Value == value {
			return m.Label
		}
	}
	return value
}
