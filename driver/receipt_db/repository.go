package receipt_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool used by the drivers. pgxmock pools
// satisfy it in tests.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type ReceiptDBRepository struct {
	pool PgxIface
}

func NewReceiptDBRepository(pool PgxIface) *ReceiptDBRepository {
	return &ReceiptDBRepository{pool: pool}
}

// Ping checks that the database is reachable.
func (r *ReceiptDBRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
