// Package sqlite keeps favorite sets in a local SQLite file, the on-disk analogue of
// the browser storage the front-ends used.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

const favoritesTable = "favorites"

const schema = `
CREATE TABLE IF NOT EXISTS ` + favoritesTable + ` (
	storage_key TEXT PRIMARY KEY,
	ids         TEXT NOT NULL DEFAULT '[]',
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Open opens (creating if needed) the database file at path and applies the schema.
func Open(ctx context.Context, path string, logger *zap.SugaredLogger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %q: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// single writer keeps saves ordered
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	closer.Bind(func() {
		if err := db.Close(); err != nil {
			logger.Errorw("Failed closing sqlite database", "err", err)
		}
	})

	logger.Debugw("Opened sqlite database", "path", path)

	return db, nil
}
