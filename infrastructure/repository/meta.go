package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
)

const (
	metasTable = "metas m"
)

type MetaRepository interface {
	GetMetaByMonth(month time.Time) (*domain.Meta, error)
	SaveOrUpdateMeta(meta *domain.Meta) (*domain.Meta, error)
}

type metaRepository struct {
	conn *postgres.Connection
}

func NewMetaRepository(conn *postgres.Connection) MetaRepository {
	return &metaRepository{
		conn: conn,
	}
}

func (r *metaRepository) GetMetaByMonth(month time.Time) (*domain.Meta, error) {
	mes := domain.FirstDayOfMonth(month)

	query, args, err := squirrel.
		Select("m.id, m.mes, m.valor_entrada_meta, m.valor_vendas_meta, m.vendas_meta, m.calls_meta, m.leads_meta, m.created_at, m.updated_at").
		From(metasTable).
		Where(squirrel.Eq{"m.mes": mes.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	meta := &domain.Meta{}
	err = row.Scan(
		&meta.ID,
		&meta.Mes,
		&meta.ValorEntradaMeta,
		&meta.ValorVendasMeta,
		&meta.VendasMeta,
		&meta.CallsMeta,
		&meta.LeadsMeta,
		&meta.CreatedAt,
		&meta.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return meta, nil
}

// SaveOrUpdateMeta insere ou atualiza a meta do mês (chave natural = mes)
func (r *metaRepository) SaveOrUpdateMeta(meta *domain.Meta) (*domain.Meta, error) {
	if meta.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da meta: %w", err)
		}
		meta.ID = id
	}

	meta.Mes = domain.FirstDayOfMonth(meta.Mes)

	query, args, err := squirrel.StatementBuilder.
		Insert("metas").
		Columns("id", "mes", "valor_entrada_meta", "valor_vendas_meta", "vendas_meta", "calls_meta", "leads_meta").
		Values(
			meta.ID,
			meta.Mes.Format(time.DateOnly),
			meta.ValorEntradaMeta,
			meta.ValorVendasMeta,
			meta.VendasMeta,
			meta.CallsMeta,
			meta.LeadsMeta,
		).
		Suffix(`
			ON CONFLICT (mes) DO UPDATE SET
				valor_entrada_meta = EXCLUDED.valor_entrada_meta,
				valor_vendas_meta = EXCLUDED.valor_vendas_meta,
				vendas_meta = EXCLUDED.vendas_meta,
				calls_meta = EXCLUDED.calls_meta,
				leads_meta = EXCLUDED.leads_meta,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&meta.ID, &meta.CreatedAt, &meta.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar upsert da meta: %w", err)
	}

	return meta, nil
}
