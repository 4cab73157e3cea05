// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/al90012/primetrade-ai-assignment/models"
)

const (
	usersTable = "users"
	tasksTable = "tasks"
)

var (
	userColumns       = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
	userPublicColumns = []string{"id", "name", "email", "created_at", "updated_at"}
	taskColumns       = []string{"id", "title", "description", "status", "user_id", "created_at", "updated_at"}
)

// likeEscaper escapes LIKE metacharacters so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userPublicColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate, now time.Time) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		query = query.Set("password_hash", *update.PasswordHash)
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": update.UserID}).
		ToSql()
}

func buildInsertTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	return b.Insert(tasksTable).
		Columns(taskColumns...).
		Values(task.TaskID, task.Title, task.Description, string(task.Status), task.UserID, task.CreatedAt, task.UpdatedAt).
		ToSql()
}

// buildListTasksQuery selects the owner's tasks newest first. Search is a
// case-insensitive substring match on title OR description, ANDed with the
// exact status filter.
func buildListTasksQuery(b sq.StatementBuilderType, dialect Dialect, filter models.TaskFilter) (string, []any, error) {
	query := b.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		lower := lowerFunc(dialect)
		query = query.Where(sq.Or{
			sq.Expr(lower+`(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(lower+`(description) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	return query.OrderBy("created_at DESC", "id DESC").ToSql()
}

// lowerFunc names the SQL function that folds case the same way as
// strings.ToLower. On SQLite that is ulower, registered by the driver.
func lowerFunc(dialect Dialect) string {
	if dialect == DialectSQLite {
		return "ulower"
	}

	return "LOWER"
}

func buildSelectTaskQuery(b sq.StatementBuilderType, userID, taskID string) (string, []any, error) {
	return b.Select(taskColumns...).
		From(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		Limit(1).
		ToSql()
}

func buildUpdateTaskQuery(b sq.StatementBuilderType, update models.TaskUpdate, now time.Time) (string, []any, error) {
	query := b.Update(tasksTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Status != nil {
		query = query.Set("status", string(*update.Status))
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": update.TaskID, "user_id": update.UserID}).
		ToSql()
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, userID, taskID string) (string, []any, error) {
	return b.Delete(tasksTable).
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		ToSql()
}
