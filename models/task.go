// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether s is one of the known statuses.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work owned by exactly one user.
// UserID is set at creation and never changes afterwards.
type Task struct {
	TaskID      string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	UserID      string     `json:"user_id" db:"user_id"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// TaskFilter narrows a task listing. UserID is mandatory; Search is a
// case-insensitive substring matched against title or description; Status
// is an exact match. Empty Search or Status means "no filter".
type TaskFilter struct {
	UserID string
	Search string
	Status TaskStatus
}

// TaskUpdate carries a partial task update scoped to an owner.
// Nil fields are left unchanged; a non-nil empty Description clears it.
type TaskUpdate struct {
	TaskID      string
	UserID      string
	Title       *string
	Description *string
	Status      *TaskStatus
}

// IsEmpty reports whether the update carries no changes.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}
