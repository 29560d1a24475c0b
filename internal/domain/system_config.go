package domain

import "time"

// SystemConfig é a configuração visual do sistema (linha única no banco)
type SystemConfig struct {
	ID            string    `json:"id"`
	NomeSistema   string    `json:"nome_sistema"`
	CorPrimaria   string    `json:"cor_primaria"`
	CorSecundaria string    `json:"cor_secundaria"`
	LogoURL       *string   `json:"logo_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSystemConfig retorna a configuração usada antes do primeiro registro
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		NomeSistema:   "NextApps",
		CorPrimaria:   "#22C55E",
		CorSecundaria: "#3B82F6",
	}
}
