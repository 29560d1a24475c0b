package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
)

const (
	systemConfigTable = "system_config sc"
)

type SystemConfigRepository interface {
	GetSystemConfig() (*domain.SystemConfig, error)
	SaveSystemConfig(config *domain.SystemConfig) (*domain.SystemConfig, error)
}

type systemConfigRepository struct {
	conn *postgres.Connection
}

func NewSystemConfigRepository(conn *postgres.Connection) SystemConfigRepository {
	return &systemConfigRepository{
		conn: conn,
	}
}

// GetSystemConfig retorna a linha única de configuração, ou nil quando o
// sistema ainda não foi configurado
func (r *systemConfigRepository) GetSystemConfig() (*domain.SystemConfig, error) {
	query, args, err := squirrel.
		Select("sc.id, sc.nome_sistema, sc.cor_primaria, sc.cor_secundaria, sc.logo_url, sc.created_at, sc.updated_at").
		From(systemConfigTable).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	config := &domain.SystemConfig{}
	err = row.Scan(
		&config.ID,
		&config.NomeSistema,
		&config.CorPrimaria,
		&config.CorSecundaria,
		&config.LogoURL,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração: %w", err)
	}

	return config, nil
}

func (r *systemConfigRepository) SaveSystemConfig(config *domain.SystemConfig) (*domain.SystemConfig, error) {
	existing, err := r.GetSystemConfig()
	if err != nil {
		return nil, err
	}

	if existing == nil {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da configuração: %w", err)
		}
		config.ID = id

		query, args, err := squirrel.
			Insert("system_config").
			Columns("id", "nome_sistema", "cor_primaria", "cor_secundaria", "logo_url").
			Values(config.ID, config.NomeSistema, config.CorPrimaria, config.CorSecundaria, config.LogoURL).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		err = r.conn.QueryRow(query, args...).Scan(&config.CreatedAt, &config.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao inserir configuração: %w", err)
		}

		return config, nil
	}

	config.ID = existing.ID

	query, args, err := squirrel.
		Update("system_config").
		Set("nome_sistema", config.NomeSistema).
		Set("cor_primaria", config.CorPrimaria).
		Set("cor_secundaria", config.CorSecundaria).
		Set("logo_url", config.LogoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": existing.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar configuração: %w", err)
	}

	return config, nil
}
