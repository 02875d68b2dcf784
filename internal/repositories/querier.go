package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// database - минимальный контракт пула: запросы плюс транзакции.
// Ему удовлетворяют *pgxpool.Pool и мок-пул в тестах.
type database interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
