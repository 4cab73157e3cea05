// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/al90012/primetrade-ai-assignment/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user. UserID and timestamps are assigned by
	// the repository. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user including its password hash.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user without its password hash.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the
	// updated user without its password hash.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// TaskRepository persists tasks. Every read and write is scoped to an owner;
// a task owned by someone else behaves exactly like a missing one.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	FindTask(ctx context.Context, userID, taskID string) (models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

// Connection is the lifecycle of a persistence backend.
type Connection interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
