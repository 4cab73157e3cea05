// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/mock"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTaskService returns the validating service stack used in production.
func newTestTaskService(t *testing.T) (TaskService, *mock.MockTaskRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tasks := mock.NewMockTaskRepository(ctrl)

	svc := NewTaskValidationService(validators.NewRequestValidator()).
		Wrap(NewTaskService(tasks, logger.Nop()))

	return svc, tasks
}

func TestTaskService_ListTasks(t *testing.T) {
	t.Run("filter carries owner search and status", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		want := []models.Task{{TaskID: "t1", UserID: "user-1"}}
		tasks.EXPECT().
			ListTasks(gomock.Any(), models.TaskFilter{UserID: "user-1", Search: "report", Status: models.TaskStatusPending}).
			Return(want, nil)

		got, err := svc.ListTasks(context.Background(), jo, "report", models.TaskStatusPending)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown status matches nothing", func(t *testing.T) {
		svc, _ := newTestTaskService(t)

		got, err := svc.ListTasks(context.Background(), jo, "", "archived")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().ListTasks(gomock.Any(), gomock.Any()).Return(nil, errStorage)

		_, err := svc.ListTasks(context.Background(), jo, "", "")
		require.ErrorIs(t, err, errStorage)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc, _ := newTestTaskService(t)

		_, err := svc.ListTasks(context.Background(), models.Identity{}, "", "")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("owner forced and status defaulted", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().
			CreateTask(gomock.Any(), models.Task{Title: "Write report", Description: "Q3", Status: models.TaskStatusPending, UserID: "user-1"}).
			DoAndReturn(func(_ context.Context, task models.Task) (models.Task, error) {
				task.TaskID = "t1"
				return task, nil
			})

		task, err := svc.CreateTask(context.Background(), jo, models.CreateTaskRequest{Title: " Write report ", Description: "Q3"})
		require.NoError(t, err)
		assert.Equal(t, "t1", task.TaskID)
		assert.Equal(t, "user-1", task.UserID)
	})

	t.Run("explicit status kept", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().
			CreateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task models.Task) (models.Task, error) {
				assert.Equal(t, models.TaskStatusInProgress, task.Status)
				return task, nil
			})

		_, err := svc.CreateTask(context.Background(), jo, models.CreateTaskRequest{Title: "x", Status: models.TaskStatusInProgress})
		require.NoError(t, err)
	})

	tests := []struct {
		name string
		req  models.CreateTaskRequest
		want []string
	}{
		{name: "missing title", req: models.CreateTaskRequest{}, want: []string{validators.MsgTitleRequired}},
		{name: "blank title", req: models.CreateTaskRequest{Title: "   "}, want: []string{validators.MsgTitleRequired}},
		{name: "bad status", req: models.CreateTaskRequest{Title: "x", Status: "done"}, want: []string{validators.MsgInvalidStatus}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestTaskService(t)

			_, err := svc.CreateTask(context.Background(), jo, tt.req)

			var validationErr *validators.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, validationErr.Errors)
		})
	}
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	svc, tasks := newTestTaskService(t)
	tasks.EXPECT().FindTask(gomock.Any(), "user-1", "t9").Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.GetTask(context.Background(), jo, "t9")
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Run("only supplied fields reach the store", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		status := models.TaskStatusCompleted
		tasks.EXPECT().
			UpdateTask(gomock.Any(), models.TaskUpdate{TaskID: "t1", UserID: "user-1", Status: &status}).
			Return(models.Task{TaskID: "t1", Title: "Write report", Status: status}, nil)

		task, err := svc.UpdateTask(context.Background(), jo, "t1", models.UpdateTaskRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "Write report", task.Title)
	})

	t.Run("empty description clears", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().
			UpdateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
				require.NotNil(t, update.Description)
				assert.Empty(t, *update.Description)
				assert.Nil(t, update.Title)
				return models.Task{TaskID: "t1"}, nil
			})

		_, err := svc.UpdateTask(context.Background(), jo, "t1", models.UpdateTaskRequest{Description: ptr("")})
		require.NoError(t, err)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().
			UpdateTask(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
				assert.Equal(t, "New", *update.Title)
				return models.Task{TaskID: "t1", Title: *update.Title}, nil
			})

		_, err := svc.UpdateTask(context.Background(), jo, "t1", models.UpdateTaskRequest{Title: ptr("  New ")})
		require.NoError(t, err)
	})

	t.Run("blank title and bad status rejected", func(t *testing.T) {
		svc, _ := newTestTaskService(t)
		bad := models.TaskStatus("")

		_, err := svc.UpdateTask(context.Background(), jo, "t1", models.UpdateTaskRequest{Title: ptr(" "), Status: &bad})

		var validationErr *validators.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{validators.MsgTitleRequired, validators.MsgInvalidStatus}, validationErr.Errors)
	})

	t.Run("foreign task", func(t *testing.T) {
		svc, tasks := newTestTaskService(t)
		tasks.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, store.ErrTaskNotFound)

		_, err := svc.UpdateTask(context.Background(), jo, "t1", models.UpdateTaskRequest{Title: ptr("x")})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc, tasks := newTestTaskService(t)
	gomock.InOrder(
		tasks.EXPECT().DeleteTask(gomock.Any(), "user-1", "t1").Return(nil),
		tasks.EXPECT().DeleteTask(gomock.Any(), "user-1", "t1").Return(store.ErrTaskNotFound),
	)

	require.NoError(t, svc.DeleteTask(context.Background(), jo, "t1"))
	require.ErrorIs(t, svc.DeleteTask(context.Background(), jo, "t1"), ErrTaskNotFound)
}
