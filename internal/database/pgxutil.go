package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/xlab/closer"
)

// pgxUtil wraps the pool and runs squirrel builders through scany.
type pgxUtil struct {
	pool *pgxpool.Pool
}

// NewPGX connects to url and binds the pool teardown to closer.
func NewPGX(ctx context.Context, url string) (PGX, error) {
	if url == "" {
		return nil, fmt.Errorf("postgres url is not set")
	}

	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	p := &pgxUtil{pool: pool}
	closer.Bind(p.Close)

	return p, nil
}

func (p *pgxUtil) ExecRaw(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, arguments...)
}

func (p *pgxUtil) Exec(ctx context.Context, sqlizer sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ToSql: %w", err)
	}

	return p.pool.Exec(ctx, query, args...)
}

// Get scans a single row. No rows returns pgx.ErrNoRows.
func (p *pgxUtil) Get(ctx context.Context, dst interface{}, sqlizer sq.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return pgxscan.Get(ctx, p.pool, dst, query, args...)
}

// Close is safe to call more than once.
func (p *pgxUtil) Close() {
	p.pool.Close()
}
