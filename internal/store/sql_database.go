// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/migrations"
	"github.com/jmoiron/sqlx"
)

// Dialect names the SQL flavour behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is an SQL connection pool shared by the SQL repositories.
// It carries the dialect-specific placeholder format and error classifier.
type DB struct {
	*sqlx.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sqlx.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the SQL flavour of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB.DB, string(db.dialect))
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("error pinging %s database: %w", db.dialect, err)
	}

	return nil
}

func (db *DB) Close(_ context.Context) error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error closing %s database: %w", db.dialect, err)
	}
	db.logger.Info().Str("dialect", string(db.dialect)).Msg("database connection closed")

	return nil
}

func configurePool(conn *sqlx.DB, cfg config.DB) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxIdleTime > 0 {
		conn.SetConnMaxIdleTime(cfg.MaxIdleTime)
	}
}

// timestamp returns the current time in UTC at microsecond precision,
// the finest precision every supported backend round-trips.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
