package utils

import (
	"strconv"
	"strings"
)

// ParseDecimal converte valores monetários vindos do painel ou de planilhas
// em float64. Aceita tanto o formato regional brasileiro ("1.234,56",
// "R$ 950,00") quanto o formato com ponto decimal ("1234.56"). Valores
// ilegíveis viram 0 para o painel nunca parar de renderizar.
func ParseDecimal(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	// Remove símbolo de moeda e espaços internos
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// O separador mais à direita é o decimal, o outro é milhar
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return value
}
