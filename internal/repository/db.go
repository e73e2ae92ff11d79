package repository

import (
	"context"

	"github.com/chanseok/rememberme/integration/database/pg"
)

// Queries implements Querier with SQL over pgx.
type Queries struct {
	db pg.DBTX
}

var _ Querier = (*Queries)(nil)

// New returns Queries running on db, usually a *pgxpool.Pool.
// A transaction stored in the context with pg.WithTx takes precedence.
func New(db pg.DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) conn(ctx context.Context) pg.DBTX {
	return pg.Conn(ctx, q.db)
}
