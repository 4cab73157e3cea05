// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs hands out predefined identifiers in order.
type fixedIDs struct {
	ids []string
	i   int
}

func (f *fixedIDs) Generate() string {
	id := f.ids[f.i%len(f.ids)]
	f.i++
	return id
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(sqlx.NewDb(conn, "pgx"), DialectPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T, ids ...string) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewUserRepository(db, logger.Nop()).(*userRepository)
	if len(ids) > 0 {
		repo.ids = &fixedIDs{ids: ids}
	}

	return repo, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	userRowColumns       = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
	userPublicRowColumns = []string{"id", "name", "email", "created_at", "updated_at"}
)

func TestUserRepository_CreateUser(t *testing.T) {
	const insertUser = `INSERT INTO users (id,name,email,password_hash,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)`

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate email", execErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEmailAlreadyExists},
		{name: "driver failure", execErr: errors.New("connection reset"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, "user-1")

			exec := mock.ExpectExec(regexp.QuoteMeta(insertUser)).
				WithArgs("user-1", "Ann", "ann@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg())
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			user, err := repo.CreateUser(testContext(), models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-1", user.UserID)
				assert.False(t, user.CreatedAt.IsZero())
				assert.Equal(t, user.CreatedAt, user.UpdatedAt)
				assert.Equal(t, time.UTC, user.CreatedAt.Location())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	const selectUser = `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1 LIMIT 1`
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
			WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow("user-1", "Ann", "ann@example.com", "hash", now, now))

		user, err := repo.FindUserByEmail(testContext(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.User{
			UserID: "user-1", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash",
			CreatedAt: now, UpdatedAt: now,
		}, user)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByEmail(testContext(), "ghost@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
			WithArgs("ann@example.com").
			WillReturnError(errors.New("boom"))

		_, err := repo.FindUserByEmail(testContext(), "ann@example.com")
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestUserRepository_UpdateUser(t *testing.T) {
	const (
		updateUser = `UPDATE users SET name = $1, updated_at = $2 WHERE id = $3`
		selectUser = `SELECT id, name, email, created_at, updated_at FROM users WHERE id = $1 LIMIT 1`
	)
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Annie"

	t.Run("success returns fresh row", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateUser)).
			WithArgs("Annie", sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(userPublicRowColumns).AddRow("user-1", "Annie", "ann@example.com", now, now))

		user, err := repo.UpdateUser(testContext(), models.UserUpdate{UserID: "user-1", Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Annie", user.Name)
		assert.Empty(t, user.PasswordHash)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(updateUser)).
			WithArgs("Annie", sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateUser(testContext(), models.UserUpdate{UserID: "user-1", Name: &name})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		email := "taken@example.com"
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email = $1, updated_at = $2 WHERE id = $3`)).
			WithArgs(email, sqlmock.AnyArg(), "user-1").
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.UpdateUser(testContext(), models.UserUpdate{UserID: "user-1", Email: &email})
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
	})

	t.Run("empty update only reads", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectUser)).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(userPublicRowColumns).AddRow("user-1", "Ann", "ann@example.com", now, now))

		user, err := repo.UpdateUser(testContext(), models.UserUpdate{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
