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
	squadsTable = "squads s"
)

type SquadRepository interface {
	ListSquads() ([]*domain.Squad, error)
	GetSquadByID(id string) (*domain.Squad, error)
	CreateSquad(squad *domain.Squad) (*domain.Squad, error)
	UpdateSquad(squad *domain.Squad) error
	DeleteSquad(id string) error
}

type squadRepository struct {
	conn *postgres.Connection
}

func NewSquadRepository(conn *postgres.Connection) SquadRepository {
	return &squadRepository{
		conn: conn,
	}
}

func (r *squadRepository) ListSquads() ([]*domain.Squad, error) {
	query, args, err := squirrel.
		Select("s.id, s.nome, s.cor, s.foto_url, s.created_at, s.updated_at").
		From(squadsTable).
		OrderBy("s.nome ASC").
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

	squads := make([]*domain.Squad, 0)
	for rows.Next() {
		squad, err := r.scanSquad(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear squad: %w", err)
		}
		squads = append(squads, squad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return squads, nil
}

func (r *squadRepository) GetSquadByID(id string) (*domain.Squad, error) {
	query, args, err := squirrel.
		Select("s.id, s.nome, s.cor, s.foto_url, s.created_at, s.updated_at").
		From(squadsTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	squad := &domain.Squad{}
	var cor sql.NullString
	err = row.Scan(&squad.ID, &squad.Nome, &cor, &squad.FotoURL, &squad.CreatedAt, &squad.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear squad: %w", err)
	}

	squad.Cor = corOuPadrao(cor)

	return squad, nil
}

func (r *squadRepository) CreateSquad(squad *domain.Squad) (*domain.Squad, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do squad: %w", err)
	}
	squad.ID = id

	if squad.Cor == "" {
		squad.Cor = domain.CorPadraoSquad
	}

	query, args, err := squirrel.
		Insert("squads").
		Columns("id", "nome", "cor", "foto_url").
		Values(squad.ID, squad.Nome, squad.Cor, squad.FotoURL).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&squad.CreatedAt, &squad.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir squad: %w", err)
	}

	return squad, nil
}

func (r *squadRepository) UpdateSquad(squad *domain.Squad) error {
	queryBuilder := squirrel.
		Update("squads").
		Set("foto_url", squad.FotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": squad.ID})

	if squad.Nome != "" {
		queryBuilder = queryBuilder.Set("nome", squad.Nome)
	}

	if squad.Cor != "" {
		queryBuilder = queryBuilder.Set("cor", squad.Cor)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar squad: %w", err)
	}

	return nil
}

func (r *squadRepository) DeleteSquad(id string) error {
	query, args, err := squirrel.
		Delete("squads").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir squad: %w", err)
	}

	return nil
}

func (r *squadRepository) scanSquad(rows *sql.Rows) (*domain.Squad, error) {
	squad := &domain.Squad{}
	var cor sql.NullString

	err := rows.Scan(
		&squad.ID,
		&squad.Nome,
		&cor,
		&squad.FotoURL,
		&squad.CreatedAt,
		&squad.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	squad.Cor = corOuPadrao(cor)

	return squad, nil
}

func corOuPadrao(cor sql.NullString) string {
	if cor.Valid && cor.String != "" {
		return cor.String
	}
	return domain.CorPadraoSquad
}
