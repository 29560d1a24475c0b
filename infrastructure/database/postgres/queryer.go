package postgres

import (
	"context"
	"database/sql"
)

// Queryer abstrai a conexão para os repositórios, permitindo trocar a
// implementação (pool real ou fake) nos testes.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
