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
	dadosDiariosTable = "dados_diarios dd"
)

type DailyEntryRepository interface {
	GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyEntry, error)
	UpsertDailyEntry(entry *domain.DailyEntry) (*domain.DailyEntry, error)
	DeleteDailyEntry(id string) error
}

type dailyEntryRepository struct {
	conn *postgres.Connection
}

func NewDailyEntryRepository(conn *postgres.Connection) DailyEntryRepository {
	return &dailyEntryRepository{
		conn: conn,
	}
}

// GetByDateRange busca os lançamentos diários com data dentro do intervalo
// inclusivo informado (primeiro e último dia entram no resultado)
func (r *dailyEntryRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.DailyEntry, error) {
	query, args, err := squirrel.
		Select("dd.id, dd.vendedor_id, dd.data, dd.calls, dd.leads_atendidos, dd.created_at, dd.updated_at").
		From(dadosDiariosTable).
		Where(squirrel.GtOrEq{"dd.data": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"dd.data": endDate.Format(time.DateOnly)}).
		OrderBy("dd.data ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DailyEntry, 0)
	for rows.Next() {
		entry := &domain.DailyEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.VendedorID,
			&entry.Data,
			&entry.Calls,
			&entry.LeadsAtendidos,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento diário: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// UpsertDailyEntry insere ou atualiza o lançamento do par (vendedor, data),
// a chave natural da tabela
func (r *dailyEntryRepository) UpsertDailyEntry(entry *domain.DailyEntry) (*domain.DailyEntry, error) {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do lançamento: %w", err)
		}
		entry.ID = id
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("dados_diarios").
		Columns("id", "vendedor_id", "data", "calls", "leads_atendidos").
		Values(
			entry.ID,
			entry.VendedorID,
			entry.Data.Format(time.DateOnly),
			entry.Calls,
			entry.LeadsAtendidos,
		).
		Suffix(`
			ON CONFLICT (vendedor_id, data) DO UPDATE SET
				calls = EXCLUDED.calls,
				leads_atendidos = EXCLUDED.leads_atendidos,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("erro ao executar upsert do lançamento diário: %w", err)
	}

	return entry, nil
}

func (r *dailyEntryRepository) DeleteDailyEntry(id string) error {
	query, args, err := squirrel.
		Delete("dados_diarios").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir lançamento diário: %w", err)
	}

	return nil
}
