// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
)

// Backend identifies a persistence implementation.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
	BackendMongo    Backend = "mongodb"
)

// BackendFromDSN selects a backend by the scheme of dsn.
func BackendFromDSN(dsn string) (Backend, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(lower, "sqlite://"), strings.HasPrefix(lower, "sqlite3://"), strings.HasPrefix(lower, "file:"):
		return BackendSQLite, nil
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return BackendMongo, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// Storages bundles the repositories of one backend with its connection.
// It is created once at startup and closed on shutdown.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	conn           Connection
}

// NewStorages connects to the backend named by cfg.DSN, applies SQL
// migrations when relevant and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	backend, err := BackendFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}
	log.Info().Str("backend", string(backend)).Msg("initializing storages")

	switch backend {
	case BackendMongo:
		m, err := NewConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return NewMongoStorages(m, log), nil
	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return migrateSQLStorages(ctx, db, log)
	default:
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return migrateSQLStorages(ctx, db, log)
	}
}

// NewSQLStorages wires the SQL repositories over an already migrated db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
		conn:           db,
	}
}

// NewMongoStorages wires the MongoDB repositories.
func NewMongoStorages(m *MongoDB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewMongoUserRepository(m, log),
		TaskRepository: NewMongoTaskRepository(m, log),
		conn:           m,
	}
}

func migrateSQLStorages(ctx context.Context, db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close(ctx)
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

func (s *Storages) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *Storages) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// redactDSN hides everything after the scheme so credentials never reach logs.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://..."
	}

	return "..."
}
