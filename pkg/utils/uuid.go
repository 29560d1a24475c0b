package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alfabeto usado nos IDs públicos (vendedores, squads, vendas).
const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto de 6 caracteres.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
