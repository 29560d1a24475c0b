package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais no padrão brasileiro (R$ 1.234,56)
func FormatBRL(value float64) string {
	return brPrinter.Sprintf("R$ %v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
