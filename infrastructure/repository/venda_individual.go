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
	vendasIndividuaisTable = "vendas_individuais vi"
)

type VendaIndividualRepository interface {
	GetByDateRange(startDate, endDate time.Time) ([]*domain.VendaIndividual, error)
	GetByVendedorAndDateRange(vendedorID string, startDate, endDate time.Time) ([]*domain.VendaIndividual, error)
	CreateVenda(venda *domain.VendaIndividual) (*domain.VendaIndividual, error)
	UpdateVenda(venda *domain.VendaIndividual) error
	DeleteVenda(id string) error
}

type vendaIndividualRepository struct {
	conn *postgres.Connection
}

func NewVendaIndividualRepository(conn *postgres.Connection) VendaIndividualRepository {
	return &vendaIndividualRepository{
		conn: conn,
	}
}

func (r *vendaIndividualRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.VendaIndividual, error) {
	return r.queryVendas(squirrel.
		Select("vi.id, vi.vendedor_id, vi.data, vi.valor_venda, vi.valor_entrada, vi.metodo_pagamento, vi.tipo_venda, vi.created_at").
		From(vendasIndividuaisTable).
		Where(squirrel.GtOrEq{"vi.data": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"vi.data": endDate.Format(time.DateOnly)}).
		OrderBy("vi.data DESC, vi.created_at DESC"))
}

func (r *vendaIndividualRepository) GetByVendedorAndDateRange(vendedorID string, startDate, endDate time.Time) ([]*domain.VendaIndividual, error) {
	return r.queryVendas(squirrel.
		Select("vi.id, vi.vendedor_id, vi.data, vi.valor_venda, vi.valor_entrada, vi.metodo_pagamento, vi.tipo_venda, vi.created_at").
		From(vendasIndividuaisTable).
		Where(squirrel.Eq{"vi.vendedor_id": vendedorID}).
		Where(squirrel.GtOrEq{"vi.data": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"vi.data": endDate.Format(time.DateOnly)}).
		OrderBy("vi.data DESC, vi.created_at DESC"))
}

func (r *vendaIndividualRepository) queryVendas(queryBuilder squirrel.SelectBuilder) ([]*domain.VendaIndividual, error) {
	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendas := make([]*domain.VendaIndividual, 0)
	for rows.Next() {
		venda, err := r.scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda individual: %w", err)
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendas, nil
}

func (r *vendaIndividualRepository) CreateVenda(venda *domain.VendaIndividual) (*domain.VendaIndividual, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da venda: %w", err)
	}
	venda.ID = id

	query, args, err := squirrel.
		Insert("vendas_individuais").
		Columns("id", "vendedor_id", "data", "valor_venda", "valor_entrada", "metodo_pagamento", "tipo_venda").
		Values(
			venda.ID,
			venda.VendedorID,
			venda.Data.Format(time.DateOnly),
			venda.ValorVenda,
			venda.ValorEntrada,
			venda.MetodoPagamento,
			venda.TipoVenda,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&venda.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir venda individual: %w", err)
	}

	return venda, nil
}

func (r *vendaIndividualRepository) UpdateVenda(venda *domain.VendaIndividual) error {
	queryBuilder := squirrel.
		Update("vendas_individuais").
		Where(squirrel.Eq{"id": venda.ID})

	if venda.ValorVenda != "" {
		queryBuilder = queryBuilder.Set("valor_venda", venda.ValorVenda)
	}

	if venda.ValorEntrada != "" {
		queryBuilder = queryBuilder.Set("valor_entrada", venda.ValorEntrada)
	}

	if venda.MetodoPagamento != "" {
		queryBuilder = queryBuilder.Set("metodo_pagamento", venda.MetodoPagamento)
	}

	if venda.TipoVenda != "" {
		queryBuilder = queryBuilder.Set("tipo_venda", venda.TipoVenda)
	}

	if !venda.Data.IsZero() {
		queryBuilder = queryBuilder.Set("data", venda.Data.Format(time.DateOnly))
	}

	query, args, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda individual: %w", err)
	}

	return nil
}

func (r *vendaIndividualRepository) DeleteVenda(id string) error {
	query, args, err := squirrel.
		Delete("vendas_individuais").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de exclusão: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda individual: %w", err)
	}

	return nil
}

func (r *vendaIndividualRepository) scanVenda(rows *sql.Rows) (*domain.VendaIndividual, error) {
	venda := &domain.VendaIndividual{}
	var valorVenda, valorEntrada sql.NullString

	err := rows.Scan(
		&venda.ID,
		&venda.VendedorID,
		&venda.Data,
		&valorVenda,
		&valorEntrada,
		&venda.MetodoPagamento,
		&venda.TipoVenda,
		&venda.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	venda.ValorVenda = valorVenda.String
	venda.ValorEntrada = valorEntrada.String

	return venda, nil
}
