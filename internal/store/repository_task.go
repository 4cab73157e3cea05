// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/utils"
	"github.com/al90012/primetrade-ai-assignment/models"
)

type taskRepository struct {
	db     *DB
	ids    IDGenerator
	logger *logger.Logger
}

func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	now := timestamp()
	task.TaskID = r.ids.Generate()
	task.CreatedAt = now
	task.UpdatedAt = now

	query, args, err := buildInsertTaskQuery(r.db.builder, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error inserting task")
		if r.db.errorClassificator.Classify(err) == ForeignKeyViolation {
			return models.Task{}, ErrUserNotFound
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(r.db.builder, r.db.Dialect(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tasks := make([]models.Task, 0)
	if err = r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error selecting tasks")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (r *taskRepository) FindTask(ctx context.Context, userID, taskID string) (models.Task, error) {
	query, args, err := buildSelectTaskQuery(r.db.builder, userID, taskID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var task models.Task
	if err = r.db.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.FindTask").Msg("error selecting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if update.IsEmpty() {
		return r.FindTask(ctx, update.UserID, update.TaskID)
	}

	query, args, err := buildUpdateTaskQuery(r.db.builder, update, timestamp())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingTask(ctx, "*taskRepository.UpdateTask", query, args); err != nil {
		return models.Task{}, err
	}

	return r.FindTask(ctx, update.UserID, update.TaskID)
}

func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID string) error {
	query, args, err := buildDeleteTaskQuery(r.db.builder, userID, taskID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingTask(ctx, "*taskRepository.DeleteTask", query, args)
}

// execAffectingTask runs a write scoped to one owned task and reports
// ErrTaskNotFound when no row matched.
func (r *taskRepository) execAffectingTask(ctx context.Context, funcName, query string, args []any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing task write")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
