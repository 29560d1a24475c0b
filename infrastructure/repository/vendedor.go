// Package repository contém as implementações dos repositórios para acesso aos dados
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
	vendedoresTable = "vendedores v"
)

type VendedorRepository interface {
	ListVendedores() ([]*domain.Vendedor, error)
	GetVendedorByID(id string) (*domain.Vendedor, error)
	CreateVendedor(vendedor *domain.Vendedor) (*domain.Vendedor, error)
	UpdateVendedor(vendedor *domain.Vendedor) error
	DeleteVendedor(id string) error
	AssignSquad(vendedorID string, squadID *string) error
	ClearSquad(squadID string) error
}

type vendedorRepository struct {
	conn *postgres.Connection
}

func NewVendedorRepository(conn *postgres.Connection) VendedorRepository {
	return &vendedorRepository{
		conn: conn,
	}
}

func (r *vendedorRepository) ListVendedores() ([]*domain.Vendedor, error) {
	query, args, err := squirrel.
		Select("v.id, v.nome, v.cargo, v.foto_url, v.squad_id, v.created_at, v.updated_at").
		From(vendedoresTable).
		OrderBy("v.created_at ASC").
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

	vendedores := make([]*domain.Vendedor, 0)
	for rows.Next() {
		vendedor, err := r.scanVendedor(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		vendedores = append(vendedores, vendedor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendedores, nil
}

func (r *vendedorRepository) GetVendedorByID(id string) (*domain.Vendedor, error) {
	query, args, err := squirrel.
		Select("v.id, v.nome, v.cargo, v.foto_url, v.squad_id, v.created_at, v.updated_at").
		From(vendedoresTable).
		Where(squirrel.Eq{"v.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	vendedor := &domain.Vendedor{}
	var cargo sql.NullString
	err = row.Scan(
		&vendedor.ID,
		&vendedor.Nome,
		&cargo,
		&vendedor.FotoURL,
		&vendedor.SquadID,
		&vendedor.CreatedAt,
		&vendedor.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
	}

	vendedor.Cargo = cargoOuPadrao(cargo)

	return vendedor, nil
}

func (r *vendedorRepository) CreateVendedor(vendedor *domain.Vendedor) (*domain.Vendedor, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do vendedor: %w", err)
	}
	vendedor.ID = id

	if vendedor.Cargo == "" {
		vendedor.Cargo = domain.CargoPadrao
	}

	query, args, err := squirrel.
		Insert("vendedores").
		Columns("id", "nome", "cargo", "foto_url", "squad_id").
		Values(vendedor.ID, vendedor.Nome, vendedor.Cargo, vendedor.FotoURL, vendedor.SquadID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&vendedor.CreatedAt, &vendedor.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir vendedor: %w", err)
	}

	return vendedor, nil
}

func (r *vendedorRepository) UpdateVendedor(vendedor *domain.Vendedor) error {
	queryBuilder := squirrel.
		Update("vendedores").
		Set("squad_id", vendedor.SquadID).
		Set("foto_url", vendedor.FotoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vendedor.ID})

	if vendedor.Nome != "" {
		queryBuilder = queryBuilder.Set("nome", vendedor.Nome)
	}

	if vendedor.Cargo != "" {
		queryBuilder = queryBuilder.Set("cargo", vendedor.Cargo)
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar vendedor: %w", err)
	}

	return nil
}

func (r *vendedorRepository) DeleteVendedor(id string) error {
	query, args, err := squirrel.
		Delete("vendedores").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir vendedor: %w", err)
	}

	return nil
}

func (r *vendedorRepository) AssignSquad(vendedorID string, squadID *string) error {
	query, args, err := squirrel.
		Update("vendedores").
		Set("squad_id", squadID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": vendedorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao vincular vendedor ao squad: %w", err)
	}

	return nil
}

// ClearSquad remove o vínculo de todos os vendedores de um squad. Usado
// antes da exclusão do squad para não deixar referência pendente.
func (r *vendedorRepository) ClearSquad(squadID string) error {
	query, args, err := squirrel.
		Update("vendedores").
		Set("squad_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"squad_id": squadID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desvincular vendedores do squad: %w", err)
	}

	return nil
}

func (r *vendedorRepository) scanVendedor(rows *sql.Rows) (*domain.Vendedor, error) {
	vendedor := &domain.Vendedor{}
	var cargo sql.NullString

	err := rows.Scan(
		&vendedor.ID,
		&vendedor.Nome,
		&cargo,
		&vendedor.FotoURL,
		&vendedor.SquadID,
		&vendedor.CreatedAt,
		&vendedor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	vendedor.Cargo = cargoOuPadrao(cargo)

	return vendedor, nil
}

// cargoOuPadrao aplica o valor padrão na borda da persistência, para a
// agregação nunca lidar com cargo vazio
func cargoOuPadrao(cargo sql.NullString) string {
	if cargo.Valid && cargo.String != "" {
		return cargo.String
	}
	return domain.CargoPadrao
}
