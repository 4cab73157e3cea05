// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/models"
)

// taskService scopes every task operation to the acting user. Request
// validation is layered on top by [TaskValidationService].
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// ListTasks returns the acting user's tasks, newest first. A status outside
// the known set matches nothing.
func (s *taskService) ListTasks(ctx context.Context, identity models.Identity, search string, status models.TaskStatus) ([]models.Task, error) {
	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	if status != "" && !status.IsValid() {
		logger.FromContext(ctx).Debug().Str("status", string(status)).Msg("unknown status filter")
		return []models.Task{}, nil
	}

	tasks, err := s.taskRepository.ListTasks(ctx, models.TaskFilter{
		UserID: identity.UserID,
		Search: search,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, identity models.Identity, taskID string) (models.Task, error) {
	if identity.IsZero() {
		return models.Task{}, ErrUnauthenticated
	}

	task, err := s.taskRepository.FindTask(ctx, identity.UserID, taskID)
	if err != nil {
		return models.Task{}, taskError("error getting task", err)
	}

	return task, nil
}

// CreateTask stores a task owned by the acting user. The title is stored
// trimmed and an empty status defaults to pending.
func (s *taskService) CreateTask(ctx context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error) {
	if identity.IsZero() {
		return models.Task{}, ErrUnauthenticated
	}

	status := req.Status
	if status == "" {
		status = models.TaskStatusPending
	}

	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      status,
		UserID:      identity.UserID,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Task{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Task{}, fmt.Errorf("error creating task: %w", err)
	}
	logger.FromContext(ctx).Debug().Str("task_id", task.TaskID).Msg("task created")

	return task, nil
}

// UpdateTask overwrites the supplied fields of the acting user's task.
// Nil fields are left unchanged.
func (s *taskService) UpdateTask(ctx context.Context, identity models.Identity, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	if identity.IsZero() {
		return models.Task{}, ErrUnauthenticated
	}

	title := req.Title
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		title = &trimmed
	}

	task, err := s.taskRepository.UpdateTask(ctx, models.TaskUpdate{
		TaskID:      taskID,
		UserID:      identity.UserID,
		Title:       title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return models.Task{}, taskError("error updating task", err)
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, identity models.Identity, taskID string) error {
	if identity.IsZero() {
		return ErrUnauthenticated
	}

	if err := s.taskRepository.DeleteTask(ctx, identity.UserID, taskID); err != nil {
		return taskError("error deleting task", err)
	}
	logger.FromContext(ctx).Debug().Str("task_id", taskID).Msg("task deleted")

	return nil
}

func taskError(msg string, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return fmt.Errorf("%s: %w", msg, err)
}
