package managing

import "errors"

// Erros de validação do painel administrativo
var (
	ErrIDObrigatorio         = errors.New("ID é obrigatório")
	ErrNomeObrigatorio       = errors.New("nome é obrigatório")
	ErrVendedorNaoEncontrado = errors.New("vendedor não encontrado")
	ErrSquadNaoEncontrado    = errors.New("squad não encontrado")
	ErrDataInvalida          = errors.New("data inválida")
	ErrContagemNegativa      = errors.New("valores negativos não são aceitos")
	ErrTipoVendaInvalido     = errors.New("tipo de venda inválido, use call ou lead")
)
