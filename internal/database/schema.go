package database

import (
	"context"
	"fmt"
)

const schema = `
create table if not exists ` + FavoritesTable + ` (
	storage_key text primary key,
	ids         bigint[] not null default '{}',
	updated_at  timestamptz not null default now()
)`

// EnsureSchema creates the tables used by the repositories if they are missing.
func EnsureSchema(ctx context.Context, q Queryable) error {
	if _, err := q.ExecRaw(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
