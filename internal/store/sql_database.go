// Package store implements the persistence layer: a thin wrapper around
// database/sql supporting PostgreSQL and SQLite backends, and the owner-scoped
// repositories built on top of it.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/mkarpov/linkvault/internal/config"
	"github.com/mkarpov/linkvault/internal/logger"
)

// DB wraps the shared *sql.DB handle together with the logger used for
// connection-level diagnostics.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured DSN. A
// "postgres://" (or "postgresql://") URI selects the pgx-backed PostgreSQL
// driver; any other value is treated as a SQLite file path, matching the
// storage engine of the original deployment.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// isUniqueViolation reports whether err is a unique-constraint violation from
// either supported backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
