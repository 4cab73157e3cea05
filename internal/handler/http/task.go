// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/al90012/primetrade-ai-assignment/internal/app"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/go-chi/chi/v5"
)

const taskIDParam = "id"

// listTasks answers GET /api/tasks?search=&status=.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	tasks, err := h.services.TaskService.ListTasks(r.Context(), identity,
		query.Get("search"), models.TaskStatus(query.Get("status")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTasksFetched, tasks)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), identity, chi.URLParam(r, taskIDParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTaskFetched, task)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), identity, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusCreated, app.MsgTaskCreated, task)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), identity, chi.URLParam(r, taskIDParam), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTaskUpdated, task)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identityOrReject(w, r)
	if !ok {
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), identity, chi.URLParam(r, taskIDParam)); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgTaskDeleted, nullData)
}
